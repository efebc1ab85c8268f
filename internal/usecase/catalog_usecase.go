package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// CatalogUsecase serves product listings to shoppers.
type CatalogUsecase interface {
	// ListProducts merges catalog results with matching store products. A
	// failing catalog yields the store products only.
	ListProducts(ctx context.Context, query service.CatalogQuery) ([]*entity.Product, error)
	// GetProduct looks the id up in the catalog, then in the store products.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}

// SettingsUsecase edits the catalog endpoint overrides.
type SettingsUsecase interface {
	GetCatalogSettings(ctx context.Context) (*entity.CatalogSettings, error)
	UpdateCatalogSettings(ctx context.Context, settings *entity.CatalogSettings) (*entity.CatalogSettings, error)
	ResetCatalogSettings(ctx context.Context) error
}
