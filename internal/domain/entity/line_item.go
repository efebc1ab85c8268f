package entity

import (
	"strings"
	"time"
)

// Variant carries the optional size and colour of a line.
type Variant struct {
	Size  string `json:"size,omitempty" firestore:"size,omitempty"`
	Color string `json:"color,omitempty" firestore:"color,omitempty"`
}

// IsZero reports whether no variant attribute is set.
func (v Variant) IsZero() bool {
	return v.Size == "" && v.Color == ""
}

// Normalize trims the attributes so equal variants compare equal.
func (v Variant) Normalize() Variant {
	return Variant{
		Size:  strings.TrimSpace(v.Size),
		Color: strings.ToLower(strings.TrimSpace(v.Color)),
	}
}

// String renders the variant for labels, e.g. "size M, color red".
func (v Variant) String() string {
	parts := make([]string, 0, 2)
	if v.Size != "" {
		parts = append(parts, "size "+v.Size)
	}
	if v.Color != "" {
		parts = append(parts, "color "+v.Color)
	}

	return strings.Join(parts, ", ")
}

// LineKey identifies a cart line. Two sizes of the same product are two lines.
type LineKey struct {
	ProductID string
	Variant   Variant
}

// NewLineKey builds a normalized key.
func NewLineKey(productID string, variant Variant) LineKey {
	return LineKey{ProductID: strings.TrimSpace(productID), Variant: variant.Normalize()}
}

// LineItem is one product entry in the cart with its quantity.
type LineItem struct {
	ProductID          string    `json:"productId"`
	Title              string    `json:"title"`
	UnitPrice          float64   `json:"unitPrice"`
	DiscountPercentage float64   `json:"discountPercentage"`
	Quantity           int       `json:"quantity"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	Variant            Variant   `json:"variant,omitzero"`
	AddedAt            time.Time `json:"addedAt"`
}

// Key returns the uniqueness key of the line.
func (li *LineItem) Key() LineKey {
	return NewLineKey(li.ProductID, li.Variant)
}

// LineTotal is the undiscounted price of the line.
func (li *LineItem) LineTotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// NewLineItem snapshots a product into a cart line.
func NewLineItem(product *Product, quantity int, variant Variant, now time.Time) LineItem {
	return LineItem{
		ProductID:          product.ID,
		Title:              product.Title,
		UnitPrice:          product.Price,
		DiscountPercentage: product.DiscountPercentage,
		Quantity:           quantity,
		ImageURL:           product.ImageURL(),
		Variant:            variant.Normalize(),
		AddedAt:            now,
	}
}
