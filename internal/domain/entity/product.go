// Package entity contains the core business objects of the storefront.
package entity

import (
	"strings"
	"time"
)

// ProductSource tells where a product listing comes from.
type ProductSource string

const (
	// ProductSourceCatalog marks products served by the third-party catalog API.
	ProductSourceCatalog ProductSource = "catalog"
	// ProductSourceStore marks products managed through the admin panel.
	ProductSourceStore ProductSource = "store"
)

// Product is a sellable item as shown in listings and detail pages.
type Product struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	Category           string        `json:"category,omitempty"`
	Brand              string        `json:"brand,omitempty"`
	Price              float64       `json:"price"`
	DiscountPercentage float64       `json:"discountPercentage"`
	Rating             float64       `json:"rating,omitempty"`
	Stock              int           `json:"stock"`
	Thumbnail          string        `json:"thumbnail,omitempty"`
	Images             []string      `json:"images,omitempty"`
	Source             ProductSource `json:"source"`
	CreatedAt          time.Time     `json:"createdAt,omitzero"`
	UpdatedAt          time.Time     `json:"updatedAt,omitzero"`
}

// ImageURL returns the best image to show for the product.
func (p *Product) ImageURL() string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}

	return ""
}

// Matches reports whether the product passes a category and free-text filter.
// Empty filters match everything.
func (p *Product) Matches(category, search string) bool {
	if category != "" && !strings.EqualFold(p.Category, category) {
		return false
	}
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}
