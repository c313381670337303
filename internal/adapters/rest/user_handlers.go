package rest

import (
	"encoding/json"
	"net/http"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
	"wareland-api/internal/core/port/usecases_port"
	"wareland-api/internal/core/usecase"
)

type UserHandlers struct {
	getProfileUC    usecases_port.GetProfileUseCasePort
	updateProfileUC usecases_port.UpdateProfileUseCasePort
}

func NewUserHandlers(getProfileUC usecases_port.GetProfileUseCasePort, updateProfileUC usecases_port.UpdateProfileUseCasePort) *UserHandlers {
	return &UserHandlers{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
	}
}

// GetMe handles GET /api/users/me
func (h *UserHandlers) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetMe"})
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	user, err := h.getProfileUC.Execute(r.Context(), identity.Subject)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "", toSellerResponse(usecase.ToSeller(user)))
}

// UpdateMe handles PUT /api/users/me
func (h *UserHandlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateMe"})
	identity, _ := contextkeys.IdentityFromContext(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode profile request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Body request tidak valid")
		return
	}
	if violations := ValidateRequest(req); violations != nil {
		respondFailure(w, http.StatusBadRequest, "Validasi gagal", violations)
		return
	}

	user, err := h.updateProfileUC.Execute(r.Context(), identity.Subject, domain.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "Profil berhasil diperbarui", toSellerResponse(usecase.ToSeller(user)))
}
