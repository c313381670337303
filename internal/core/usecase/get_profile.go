package usecase

import (
	"context"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type GetProfileUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetProfileUseCase(userRepo port.UserRepositoryPort) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, username string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetProfile",
		"username": username,
	})
	ucLogger.Info("Use case started", nil)

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if user == nil {
		ucLogger.Warn("User from a valid token no longer exists", nil)
		return nil, domain.NewResourceNotFound("User tidak ditemukan")
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
