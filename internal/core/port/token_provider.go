package port

import (
	"context"
	"time"
)

// TokenProviderPort issues and checks bearer tokens.
type TokenProviderPort interface {
	Issue(ctx context.Context, subject string) (string, error)
	// Validate is coarse on purpose: any failure reads as false.
	Validate(ctx context.Context, token string) bool
	// SubjectOf must only be called on a token that passed Validate.
	SubjectOf(ctx context.Context, token string) (string, error)
	ExpiresAt(ctx context.Context, token string) (time.Time, error)
}
