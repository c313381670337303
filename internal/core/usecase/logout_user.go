package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type LogoutUserUseCase struct {
	tokens    port.TokenProviderPort
	revoked   port.RevokedTokenStorePort
	publisher port.AuthEventsPublisherPort
}

func NewLogoutUserUseCase(tokens port.TokenProviderPort, revoked port.RevokedTokenStorePort, publisher port.AuthEventsPublisherPort) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokens:    tokens,
		revoked:   revoked,
		publisher: publisher,
	}
}

// Execute puts the token on the revocation list. Revoking twice is not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LogoutUser",
	})
	ucLogger.Info("Use case started", nil)

	if !uc.tokens.Validate(ctx, token) {
		ucLogger.Warn("Logout rejected: token is not valid", nil)
		return domain.NewInvalidCredential("Token tidak valid")
	}

	subject, err := uc.tokens.SubjectOf(ctx, token)
	if err != nil {
		ucLogger.Error("Failed to read token subject", err, nil)
		return fmt.Errorf("failed to read token subject: %w", err)
	}
	expiresAt, err := uc.tokens.ExpiresAt(ctx, token)
	if err != nil {
		ucLogger.Error("Failed to read token expiry", err, nil)
		return fmt.Errorf("failed to read token expiry: %w", err)
	}

	ucLogger = ucLogger.WithFields(port.Fields{"username": subject})

	err = uc.revoked.Revoke(ctx, domain.RevokedToken{
		Token:     token,
		ExpiresAt: expiresAt,
		RevokedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrRevokedTokenExists) {
			ucLogger.Info("Token was already revoked", nil)
			return nil
		}
		ucLogger.Error("Failed to revoke token", err, nil)
		return err
	}

	publishAuthEvent(ctx, uc.publisher, ucLogger, port.EventUserLoggedOut, subject)

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
