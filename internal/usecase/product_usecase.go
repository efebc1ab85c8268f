package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ProductInput is the body of POST and PUT /admin/products.
type ProductInput struct {
	Title              string   `json:"title" validate:"required,max=200"`
	Description        string   `json:"description" validate:"max=4000"`
	Category           string   `json:"category" validate:"max=80"`
	Brand              string   `json:"brand" validate:"max=80"`
	Price              float64  `json:"price" validate:"gte=0"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	Stock              int      `json:"stock" validate:"gte=0"`
	Images             []string `json:"images" validate:"dive,url"`
}

// ProductUsecase manages store products from the admin panel.
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *ProductInput) (*entity.Product, error)
	// DeleteProduct removes the product and its images.
	DeleteProduct(ctx context.Context, id string) error
	// UploadImage stores an image and its thumbnail and records both on the product.
	UploadImage(ctx context.Context, id string, r io.Reader) (*entity.Product, error)
}
