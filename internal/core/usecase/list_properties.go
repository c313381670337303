package usecase

import (
	"context"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type ListPropertiesUseCase struct {
	store port.PropertyStorePort
}

func NewListPropertiesUseCase(store port.PropertyStorePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{store: store}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]domain.CatalogEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListProperties",
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.store.FindAll(ctx)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return nil, err
	}

	entries := toCatalogEntries(properties)
	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(entries)})
	return entries, nil
}
