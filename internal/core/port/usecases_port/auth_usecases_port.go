package usecases_port

import (
	"context"
	"wareland-api/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, user *domain.User, password string) (*domain.User, string, error) // returns the issued JWT
}

type LoginUserUseCasePort interface {
	Execute(ctx context.Context, username, password string) (*domain.User, string, error)
}

type LogoutUserUseCasePort interface {
	Execute(ctx context.Context, token string) error
}

type GetProfileUseCasePort interface {
	Execute(ctx context.Context, username string) (*domain.User, error)
}

type UpdateProfileUseCasePort interface {
	Execute(ctx context.Context, username string, update domain.ProfileUpdate) (*domain.User, error)
}

type PruneRevokedTokensUseCasePort interface {
	Execute(ctx context.Context) (int64, error)
}
