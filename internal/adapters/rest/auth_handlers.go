package rest

import (
	"encoding/json"
	"net/http"
	"strings"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
	"wareland-api/internal/core/port/usecases_port"
	"wareland-api/internal/core/usecase"
)

type AuthHandlers struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
	logoutUC   usecases_port.LogoutUserUseCasePort
}

func NewAuthHandlers(registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
	logoutUC usecases_port.LogoutUserUseCasePort) *AuthHandlers {
	return &AuthHandlers{
		registerUC: registerUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode register request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Body request tidak valid")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if violations := ValidateRequest(req); violations != nil {
		logger.Warn("Register request failed validation", port.Fields{"violations": len(violations)})
		respondFailure(w, http.StatusBadRequest, "Validasi gagal", violations)
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"username": req.Username})
	handlerLogger.Info("Processing register request", nil)

	user, token, err := h.registerUC.Execute(r.Context(), &domain.User{
		Username:    req.Username,
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Role:        req.Role,
	}, req.Password)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("User registered successfully", port.Fields{"user_id": user.ID})
	respondSuccess(w, http.StatusCreated, "Registrasi berhasil", AuthResponse{
		Token: token,
		User:  toSellerResponse(usecase.ToSeller(user)),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Body request tidak valid")
		return
	}
	if violations := ValidateRequest(req); violations != nil {
		respondFailure(w, http.StatusBadRequest, "Validasi gagal", violations)
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"username": req.Username})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	respondSuccess(w, http.StatusOK, "Login berhasil", AuthResponse{
		Token: token,
		User:  toSellerResponse(usecase.ToSeller(user)),
	})
}

// Logout handles POST /api/auth/logout. The route requires an identity,
// so the bearer token is known to be present and valid here.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Logout"})

	token, ok := bearerToken(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, MessageUnauthorized)
		return
	}

	if err := h.logoutUC.Execute(r.Context(), token); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	respondSuccess(w, http.StatusOK, "Logout berhasil", nil)
}
