package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a store-managed product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows store product listings.
type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ProductRepository persists products managed through the admin panel.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// List returns products matching the filter. Search is matched on title,
	// description and brand.
	List(ctx context.Context, filter *ProductFilter) ([]*entity.Product, error)
}
