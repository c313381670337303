package usecase

import (
	"context"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type GetPropertyDetailUseCase struct {
	store port.PropertyStorePort
}

func NewGetPropertyDetailUseCase(store port.PropertyStorePort) *GetPropertyDetailUseCase {
	return &GetPropertyDetailUseCase{store: store}
}

// Execute returns (nil, nil) for an unknown id; absence is not an error here.
func (uc *GetPropertyDetailUseCase) Execute(ctx context.Context, id int64) (*domain.CatalogEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetail",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.store.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Info("Property not found", nil)
		return nil, nil
	}

	ucLogger.Info("Use case finished successfully", nil)
	return ToCatalogEntry(property), nil
}
