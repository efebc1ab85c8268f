package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogQuery mirrors GET /products?limit=&category=&q=.
type CatalogQuery struct {
	Limit    int
	Category string
	Search   string
}

// CatalogClient reads the third-party product catalog.
type CatalogClient interface {
	// ListProducts returns products matching the query.
	ListProducts(ctx context.Context, query CatalogQuery) ([]*entity.Product, error)

	// GetProduct returns one product, or repository.ErrProductNotFound.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}
