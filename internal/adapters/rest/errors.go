package rest

import (
	"errors"
	"net/http"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

const internalErrorMessage = "Terjadi kesalahan pada server"

// writeUseCaseError maps domain error kinds to HTTP statuses. Anything that is
// not a business error is logged and hidden behind a generic 500.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var businessErr *domain.BusinessError
	if !errors.As(err, &businessErr) {
		logger.Error("Use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredential):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrResourceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}

	logger.Warn("Request rejected by business rule", port.Fields{"status": status, "reason": businessErr.Message})
	WriteJSONError(w, status, businessErr.Message)
}
