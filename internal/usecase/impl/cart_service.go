// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// policyFromConfig maps the checkout section onto the pricing policy.
func policyFromConfig(cfg *config.Config) pricing.Policy {
	if cfg == nil || cfg.Checkout == nil {
		return pricing.DefaultPolicy()
	}

	return pricing.Policy{
		FlatShipping:          cfg.Checkout.ShippingFlatFee,
		TaxRate:               cfg.Checkout.TaxRate,
		FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
	}
}

type cartService struct {
	registry *store.Registry
	catalog  usecase.CatalogUsecase
	policy   pricing.Policy
	now      func() time.Time
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Registry *store.Registry
	Catalog  usecase.CatalogUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCartService creates the cart usecase.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		registry: params.Registry,
		catalog:  params.Catalog,
		policy:   policyFromConfig(params.Config),
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *cartService) view(cart entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Cart:      cart,
		Totals:    s.policy.ForCart(cart.Items),
		ItemCount: cart.ItemCount(),
	}
}

func (s *cartService) GetCart(ctx context.Context, clientID string) (*usecase.CartView, error) {
	cart, err := s.registry.Cart(clientID).Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) AddItem(ctx context.Context, clientID string, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productId is required")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := entity.NewLineItem(product, input.Quantity, input.Variant, s.now())
	cart, err := s.registry.Cart(clientID).Add(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Debug("Cart item added",
		slog.String("client_id", clientID),
		slog.String("product_id", productID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return s.view(cart), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, clientID string, key entity.LineKey, n int) (*usecase.CartView, error) {
	if n < 1 {
		return s.RemoveItem(ctx, clientID, key)
	}

	cartStore := s.registry.Cart(clientID)
	current, err := cartStore.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if current.IndexOf(key) < 0 {
		return nil, domainerrors.ErrLineNotFound
	}

	cart, err := cartStore.UpdateQuantity(ctx, key, n)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, clientID string, key entity.LineKey) (*usecase.CartView, error) {
	cart, err := s.registry.Cart(clientID).Remove(ctx, key)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, clientID string) (*usecase.CartView, error) {
	cart, err := s.registry.Cart(clientID).Clear(ctx)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

func (s *cartService) WatchCart(clientID string) (<-chan *usecase.CartView, func()) {
	snapshots, cancel := s.registry.Cart(clientID).Subscribe()

	views := make(chan *usecase.CartView, 1)
	go func() {
		defer close(views)
		for cart := range snapshots {
			select {
			case <-views:
			default:
			}
			views <- s.view(cart)
		}
	}()

	return views, cancel
}
