package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	products repository.ProductRepository
	images   service.ImageStore
	now      func() time.Time
	logger   *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Products repository.ProductRepository
	Images   service.ImageStore
	Logger   *slog.Logger
}

// NewProductService creates the admin product management usecase.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		products: params.Products,
		images:   params.Images,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func imagePrefix(productID string) string {
	return "products/" + productID
}

func (s *productService) ListProducts(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	if filter == nil {
		filter = &repository.ProductFilter{}
	}
	filter.Limit = repository.ClampLimit(filter.Limit)
	filter.Offset = max(filter.Offset, 0)

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return nonNil(products), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Title = strings.TrimSpace(input.Title)
	product.Description = strings.TrimSpace(input.Description)
	product.Category = strings.TrimSpace(input.Category)
	product.Brand = strings.TrimSpace(input.Brand)
	product.Price = input.Price
	product.DiscountPercentage = input.DiscountPercentage
	product.Stock = input.Stock
	if input.Images != nil {
		product.Images = input.Images
	}
}

func (s *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	now := s.now()
	product := &entity.Product{
		ID:        uuid.NewString(),
		Source:    entity.ProductSourceStore,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductInput(product, input)

	if err := s.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	s.log(ctx).Info("Product created", slog.String("product_id", product.ID))

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input)
	product.UpdatedAt = s.now()

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	if err := s.images.DeleteAll(ctx, imagePrefix(id)); err != nil {
		s.log(ctx).Warn("Failed to delete product images", slog.String("product_id", id), slog.Any("error", err))
	}

	return nil
}

func (s *productService) UploadImage(ctx context.Context, id string, r io.Reader) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.images.Upload(ctx, imagePrefix(id), r)
	if err != nil {
		return nil, err
	}

	product.Thumbnail = stored.ThumbnailURL
	if !slices.Contains(product.Images, stored.URL) {
		product.Images = append(product.Images, stored.URL)
	}
	product.UpdatedAt = s.now()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to record product image")
	}

	s.log(ctx).Info("Product image uploaded",
		slog.String("product_id", id),
		slog.Int64("size", stored.Size),
	)

	return product, nil
}

