package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository for store-managed products.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(toProductModel(product)).Error; err != nil {
		return translateError(errors.Wrap(err, "failed to create product"))
	}

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	m := toProductModel(product)
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", product.ID).
		Select("title", "description", "category", "brand", "price", "discount_percentage",
			"rating", "stock", "thumbnail", "images", "updated_at").
		Updates(m)
	if result.Error != nil {
		return translateError(errors.Wrap(result.Error, "failed to update product"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return translateError(errors.Wrap(result.Error, "failed to delete product"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var m model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, translateError(errors.Wrap(err, "failed to find product"))
	}

	return toProductDomain(&m), nil
}

func (repo *productRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?", like, like, like)
	}

	var models []*model.ProductModel
	err := query.Order("created_at DESC").
		Limit(repository.ClampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&models).Error
	if err != nil {
		return nil, translateError(errors.Wrap(err, "failed to list products"))
	}

	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products, nil
}
