package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/store"
	"storefront/internal/usecase"
)

type wishlistService struct {
	registry *store.Registry
	catalog  usecase.CatalogUsecase
	now      func() time.Time
	logger   *slog.Logger
}

// NewWishlistService creates the wishlist usecase.
func NewWishlistService(registry *store.Registry, catalog usecase.CatalogUsecase, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		registry: registry,
		catalog:  catalog,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, clientID string) (*entity.Wishlist, error) {
	wishlist, err := s.registry.Wishlist(clientID).Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &wishlist, nil
}

// AddToWishlist is idempotent: the store always appends, so membership is checked first.
func (s *wishlistService) AddToWishlist(ctx context.Context, clientID, productID string) (*entity.Wishlist, error) {
	wishlistStore := s.registry.Wishlist(clientID)

	current, err := wishlistStore.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if current.Contains(productID) {
		return &current, nil
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	wishlist, added, err := wishlistStore.AddIfAbsent(ctx, entity.NewWishlistEntry(product, s.now()))
	if err != nil {
		return nil, err
	}
	if !added {
		return &wishlist, nil
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Wishlist entry added",
		slog.String("client_id", clientID),
		slog.String("product_id", productID),
	)

	return &wishlist, nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, clientID, productID string) (*entity.Wishlist, error) {
	wishlist, err := s.registry.Wishlist(clientID).Remove(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &wishlist, nil
}

func (s *wishlistService) ClearWishlist(ctx context.Context, clientID string) (*entity.Wishlist, error) {
	wishlist, err := s.registry.Wishlist(clientID).Clear(ctx)
	if err != nil {
		return nil, err
	}

	return &wishlist, nil
}
