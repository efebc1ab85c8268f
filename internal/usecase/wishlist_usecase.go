package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase manages the saved products of one client.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, clientID string) (*entity.Wishlist, error)
	// AddToWishlist saves the product unless it is already saved.
	AddToWishlist(ctx context.Context, clientID, productID string) (*entity.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, clientID, productID string) (*entity.Wishlist, error)
	ClearWishlist(ctx context.Context, clientID string) (*entity.Wishlist, error)
}
