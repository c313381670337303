package usecase

import (
	"context"
	"fmt"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

const invalidCredentialsMessage = "Username atau password salah"

type LoginUserUseCase struct {
	userRepo  port.UserRepositoryPort
	hasher    port.PasswordHasherPort
	tokens    port.TokenProviderPort
	publisher port.AuthEventsPublisherPort
}

func NewLoginUserUseCase(userRepo port.UserRepositoryPort, hasher port.PasswordHasherPort, tokens port.TokenProviderPort, publisher port.AuthEventsPublisherPort) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, username, password string) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"username": username,
	})
	ucLogger.Info("Use case started: attempting to login user", nil)

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		ucLogger.Error("Repository failed to find user by username", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	// unknown user and wrong password look the same to the caller
	if user == nil {
		ucLogger.Warn("Login failed: user not found", nil)
		return nil, "", domain.NewInvalidCredential(invalidCredentialsMessage)
	}
	if !uc.hasher.Compare(user.PasswordHash, password) {
		ucLogger.Warn("Login failed: invalid credentials", nil)
		return nil, "", domain.NewInvalidCredential(invalidCredentialsMessage)
	}

	token, err := uc.tokens.Issue(ctx, user.Username)
	if err != nil {
		ucLogger.Error("Failed to issue token after successful login", err, nil)
		return nil, "", err
	}

	publishAuthEvent(ctx, uc.publisher, ucLogger, port.EventUserLoggedIn, user.Username)

	ucLogger.Info("Use case finished: user logged in successfully", nil)
	return user, token, nil
}
