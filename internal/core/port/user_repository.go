package port

import (
	"context"
	"wareland-api/internal/core/domain"
)

// UserRepositoryPort stores accounts. Lookups return (nil, nil) when nothing matches.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
