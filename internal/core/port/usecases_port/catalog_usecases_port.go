package usecases_port

import (
	"context"
	"wareland-api/internal/core/domain"
)

type ListPropertiesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.CatalogEntry, error)
}

type SearchPropertiesUseCasePort interface {
	Execute(ctx context.Context, criteria *domain.SearchCriteria) ([]domain.CatalogEntry, error)
}

type GetPropertyDetailUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.CatalogEntry, error) // nil, nil when the property does not exist
}
