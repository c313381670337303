package usecase

import (
	"context"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/port"
)

type PruneRevokedTokensUseCase struct {
	revoked port.RevokedTokenStorePort
}

func NewPruneRevokedTokensUseCase(revoked port.RevokedTokenStorePort) *PruneRevokedTokensUseCase {
	return &PruneRevokedTokensUseCase{revoked: revoked}
}

// Execute drops revocation entries whose token has expired anyway.
func (uc *PruneRevokedTokensUseCase) Execute(ctx context.Context) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "PruneRevokedTokens",
	})

	removed, err := uc.revoked.PruneExpired(ctx, time.Now().UTC())
	if err != nil {
		ucLogger.Error("Failed to prune revoked tokens", err, nil)
		return 0, err
	}

	ucLogger.Debug("Revoked tokens pruned", port.Fields{"removed": removed})
	return removed, nil
}
