package postgres

import (
	"context"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RevokedTokenStore is the durable revocation list.
type RevokedTokenStore struct {
	pool *pgxpool.Pool
}

func NewRevokedTokenStore(pool *pgxpool.Pool) (*RevokedTokenStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &RevokedTokenStore{pool: pool}, nil
}

func (s *RevokedTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token = $1)`, token).Scan(&exists)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to check revoked token", err, port.Fields{"component": "RevokedTokenStore"})
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return exists, nil
}

// Revoke inserts the token; a second insert of the same token reports ErrRevokedTokenExists.
func (s *RevokedTokenStore) Revoke(ctx context.Context, token domain.RevokedToken) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "RevokedTokenStore",
		"method":    "Revoke",
	})

	query := `INSERT INTO revoked_tokens (token, expires_at, revoked_at) VALUES ($1, $2, $3) ON CONFLICT (token) DO NOTHING`
	tag, err := s.pool.Exec(ctx, query, token.Token, token.ExpiresAt, token.RevokedAt)
	if err != nil {
		repoLogger.Error("Failed to revoke token", err, nil)
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRevokedTokenExists
	}
	return nil
}

func (s *RevokedTokenStore) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to prune revoked tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
