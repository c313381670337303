package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type UpdateProfileUseCase struct {
	userRepo  port.UserRepositoryPort
	hasher    port.PasswordHasherPort
	publisher port.AuthEventsPublisherPort
}

func NewUpdateProfileUseCase(userRepo port.UserRepositoryPort, hasher port.PasswordHasherPort, publisher port.AuthEventsPublisherPort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		publisher: publisher,
	}
}

// Execute applies the non-empty fields of update. A password change needs the
// current password.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, username string, update domain.ProfileUpdate) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"username": username,
	})
	ucLogger.Info("Use case started", nil)

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if user == nil {
		ucLogger.Warn("User from a valid token no longer exists", nil)
		return nil, domain.NewResourceNotFound("User tidak ditemukan")
	}

	updated := *user

	if name := strings.TrimSpace(update.Name); name != "" {
		updated.Name = name
	}
	if phone := strings.TrimSpace(update.PhoneNumber); phone != "" {
		updated.PhoneNumber = phone
	}
	if email := strings.TrimSpace(update.Email); email != "" && !strings.EqualFold(email, user.Email) {
		owner, err := uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			ucLogger.Error("Repository failed while checking email", err, nil)
			return nil, fmt.Errorf("internal server error: %w", err)
		}
		if owner != nil && owner.ID != user.ID {
			ucLogger.Warn("Profile update rejected: email already in use", nil)
			return nil, domain.NewConflict("Email sudah digunakan")
		}
		updated.Email = email
	}

	if update.NewPassword != "" {
		if update.OldPassword == "" {
			return nil, domain.NewBadRequest("Password lama wajib diisi")
		}
		if !uc.hasher.Compare(user.PasswordHash, update.OldPassword) {
			ucLogger.Warn("Profile update rejected: old password mismatch", nil)
			return nil, domain.NewInvalidCredential("Password lama salah")
		}
		hash, err := uc.hasher.Hash(update.NewPassword)
		if err != nil {
			ucLogger.Error("Failed to hash password", err, nil)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updated.PasswordHash = hash
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, &updated); err != nil {
		ucLogger.Error("Repository failed to update user", err, nil)
		return nil, err
	}

	publishAuthEvent(ctx, uc.publisher, ucLogger, port.EventUserProfileUpdated, updated.Username)

	ucLogger.Info("Use case finished successfully", nil)
	return &updated, nil
}
