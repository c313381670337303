package port

import (
	"context"
	"wareland-api/internal/core/domain"
)

// PropertyStorePort is the read side of the property catalog.
type PropertyStorePort interface {
	FindAll(ctx context.Context) ([]domain.Property, error)
	// FindByID returns (nil, nil) when no property has the given id.
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	FindByFilter(ctx context.Context, filter domain.CatalogFilter) ([]domain.Property, error)
	// SearchByKeyword returns an empty slice for a blank keyword.
	SearchByKeyword(ctx context.Context, keyword string) ([]domain.Property, error)
}
