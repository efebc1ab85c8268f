package entity

import (
	"slices"
	"time"
)

// WishlistEntry is a saved product snapshot.
type WishlistEntry struct {
	ProductID          string    `json:"productId"`
	Title              string    `json:"title"`
	Price              float64   `json:"price"`
	DiscountPercentage float64   `json:"discountPercentage"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	Category           string    `json:"category,omitempty"`
	AddedAt            time.Time `json:"addedAt"`
}

// NewWishlistEntry snapshots a product for the wishlist.
func NewWishlistEntry(product *Product, now time.Time) WishlistEntry {
	return WishlistEntry{
		ProductID:          product.ID,
		Title:              product.Title,
		Price:              product.Price,
		DiscountPercentage: product.DiscountPercentage,
		ImageURL:           product.ImageURL(),
		Category:           product.Category,
		AddedAt:            now,
	}
}

// Wishlist is the collection of saved products owned by one client.
type Wishlist struct {
	ClientID  string          `json:"clientId"`
	Entries   []WishlistEntry `json:"entries"`
	UpdatedAt time.Time       `json:"updatedAt,omitzero"`
}

// Contains reports whether the product is saved.
func (w *Wishlist) Contains(productID string) bool {
	return slices.ContainsFunc(w.Entries, func(e WishlistEntry) bool {
		return e.ProductID == productID
	})
}

// Clone returns a copy that shares no slices with w.
func (w Wishlist) Clone() Wishlist {
	w.Entries = slices.Clone(w.Entries)
	if w.Entries == nil {
		w.Entries = []WishlistEntry{}
	}

	return w
}
