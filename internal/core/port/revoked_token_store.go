package port

import (
	"context"
	"time"
	"wareland-api/internal/core/domain"
)

// RevokedTokenStorePort is the revocation list consulted by the auth filter.
type RevokedTokenStorePort interface {
	Exists(ctx context.Context, token string) (bool, error)
	// Revoke returns domain.ErrRevokedTokenExists when the token is already listed.
	Revoke(ctx context.Context, token domain.RevokedToken) error
	// PruneExpired removes entries whose token expired before now and reports how many went.
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}
