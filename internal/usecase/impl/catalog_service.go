package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// storeProductScan bounds how many store products are merged into a listing.
const storeProductScan = 100

type catalogService struct {
	client   service.CatalogClient
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService merges the remote catalog with store-managed products.
func NewCatalogService(client service.CatalogClient, products repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		client:   client,
		products: products,
		logger:   logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *catalogService) ListProducts(ctx context.Context, query service.CatalogQuery) ([]*entity.Product, error) {
	products, err := s.client.ListProducts(ctx, query)
	if err != nil {
		s.log(ctx).Warn("Catalog unavailable, listing store products only",
			slog.String("category", query.Category),
			slog.String("search", query.Search),
			slog.Any("error", err),
		)
		products = nil
	}

	own, err := s.products.List(ctx, &repository.ProductFilter{
		Category: query.Category,
		Search:   query.Search,
		Limit:    storeProductScan,
	})
	if err != nil {
		s.log(ctx).Warn("Failed to list store products", slog.Any("error", err))

		return nonNil(products), nil
	}

	for _, p := range own {
		if p.Matches(query.Category, query.Search) {
			products = append(products, p)
		}
	}

	return nonNil(products), nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, catalogErr := s.client.GetProduct(ctx, id)
	if catalogErr == nil {
		return product, nil
	}

	product, err := s.products.FindByID(ctx, id)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to find store product")
	}

	if errors.Is(catalogErr, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}

	s.log(ctx).Warn("Catalog lookup failed", slog.String("product_id", id), slog.Any("error", catalogErr))

	return nil, domainerrors.ErrCatalogUnavailable.WrapMessage(catalogErr.Error())
}

func nonNil(products []*entity.Product) []*entity.Product {
	if products == nil {
		return []*entity.Product{}
	}

	return products
}

type settingsService struct {
	settings repository.SettingsRepository
	logger   *slog.Logger
}

// NewSettingsService exposes the catalog overrides to admins.
func NewSettingsService(settings repository.SettingsRepository, logger *slog.Logger) usecase.SettingsUsecase {
	return &settingsService{settings: settings, logger: logger}
}

func (s *settingsService) GetCatalogSettings(ctx context.Context) (*entity.CatalogSettings, error) {
	return s.settings.GetCatalogSettings(ctx)
}

func (s *settingsService) UpdateCatalogSettings(ctx context.Context, settings *entity.CatalogSettings) (*entity.CatalogSettings, error) {
	if settings.DefaultLimit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("defaultLimit must not be negative")
	}

	if err := s.settings.SaveCatalogSettings(ctx, settings); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Catalog settings updated",
		slog.String("base_url", settings.BaseURL),
		slog.Int("default_limit", settings.DefaultLimit),
	)

	return s.settings.GetCatalogSettings(ctx)
}

func (s *settingsService) ResetCatalogSettings(ctx context.Context) error {
	return s.settings.ResetCatalogSettings(ctx)
}
