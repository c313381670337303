package usecase

import (
	"context"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type SearchPropertiesUseCase struct {
	store port.PropertyStorePort
}

func NewSearchPropertiesUseCase(store port.PropertyStorePort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{store: store}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, criteria *domain.SearchCriteria) ([]domain.CatalogEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	filter := domain.BuildCatalogFilter(criteria)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"keyword":  filter.Keyword,
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.store.FindByFilter(ctx, filter)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return nil, err
	}

	entries := toCatalogEntries(properties)
	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(entries)})
	return entries, nil
}
