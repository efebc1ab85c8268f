package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// CartView is the cart with its canonical totals.
type CartView struct {
	Cart      entity.Cart    `json:"cart"`
	Totals    pricing.Totals `json:"totals"`
	ItemCount int            `json:"itemCount"`
}

// AddCartItemInput is the body of POST /cart/items.
type AddCartItemInput struct {
	ProductID string         `json:"productId" validate:"required"`
	Quantity  int            `json:"quantity" validate:"gte=0,lte=99"`
	Variant   entity.Variant `json:"variant"`
}

// CartUsecase manages the cart of one client.
type CartUsecase interface {
	GetCart(ctx context.Context, clientID string) (*CartView, error)
	// AddItem snapshots the product into the cart; a repeated add increments the line by one.
	AddItem(ctx context.Context, clientID string, input *AddCartItemInput) (*CartView, error)
	// UpdateQuantity sets the quantity of a line; n < 1 removes the line.
	UpdateQuantity(ctx context.Context, clientID string, key entity.LineKey, n int) (*CartView, error)
	RemoveItem(ctx context.Context, clientID string, key entity.LineKey) (*CartView, error)
	ClearCart(ctx context.Context, clientID string) (*CartView, error)
	// WatchCart streams a view after every mutation until cancel is called.
	WatchCart(clientID string) (<-chan *CartView, func())
}
