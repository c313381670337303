package usecase

import (
	"context"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type RegisterUserUseCase struct {
	userRepo  port.UserRepositoryPort
	hasher    port.PasswordHasherPort
	tokens    port.TokenProviderPort
	publisher port.AuthEventsPublisherPort
}

func NewRegisterUserUseCase(userRepo port.UserRepositoryPort, hasher port.PasswordHasherPort, tokens port.TokenProviderPort, publisher port.AuthEventsPublisherPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
	}
}

// Execute stores a new account and returns it with a freshly issued token.
// The request is already shape-validated by the transport layer.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, user *domain.User, password string) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"username": user.Username,
	})

	ucLogger.Info("Use case started: attempting to register user", nil)

	existing, err := uc.userRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		ucLogger.Error("Repository failed while checking for existing username", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if existing != nil {
		ucLogger.Warn("Registration failed: username already taken", nil)
		return nil, "", domain.NewConflict("Username sudah digunakan")
	}

	existing, err = uc.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		ucLogger.Error("Repository failed while checking for existing email", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if existing != nil {
		ucLogger.Warn("Registration failed: email already in use", nil)
		return nil, "", domain.NewConflict("Email sudah digunakan")
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		ucLogger.Error("Failed to hash password", err, nil)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	created := *user
	created.PasswordHash = hash
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Role == "" {
		created.Role = domain.RoleBuyer
	}

	if err := uc.userRepo.Create(ctx, &created); err != nil {
		ucLogger.Error("Repository failed to create user", err, nil)
		return nil, "", err
	}

	token, err := uc.tokens.Issue(ctx, created.Username)
	if err != nil {
		ucLogger.Error("Failed to issue token after successful registration", err, nil)
		return nil, "", err
	}

	publishAuthEvent(ctx, uc.publisher, ucLogger, port.EventUserRegistered, created.Username)

	ucLogger.Info("Use case finished: user registered successfully", port.Fields{"user_id": created.ID})
	return &created, token, nil
}
