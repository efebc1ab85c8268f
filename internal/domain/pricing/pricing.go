// Package pricing implements the storefront's single checkout total algorithm.
//
// Every view that shows money for a cart (the cart page, the checkout quote and
// the order written at submission) goes through Calculate, so the numbers a
// customer sees are the numbers that get stored:
//
//	subtotal = Σ unitPrice × quantity         (no discount applied)
//	shipping = FlatShipping when subtotal > 0 and below FreeShippingThreshold
//	tax      = round2(subtotal × TaxRate)
//	total    = max(0, subtotal + shipping + tax)
//
// Amounts are float64 dollars. Only tax is rounded; display rounding happens in
// the formatters.
package pricing

import (
	"math"

	"storefront/internal/domain/entity"
)

const (
	DefaultFlatShipping = 9.99
	DefaultTaxRate      = 0.10
)

// Policy holds the configurable inputs of the algorithm.
type Policy struct {
	FlatShipping float64
	TaxRate      float64
	// FreeShippingThreshold waives shipping when subtotal reaches it. Zero disables it.
	FreeShippingThreshold float64
}

// DefaultPolicy is the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		FlatShipping: DefaultFlatShipping,
		TaxRate:      DefaultTaxRate,
	}
}

// Line is the minimal input for one priced line.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Totals is the priced breakdown of a cart or order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculate prices lines under p.
func (p Policy) Calculate(lines []Line) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	shipping := 0.0
	if subtotal > 0 && (p.FreeShippingThreshold <= 0 || subtotal < p.FreeShippingThreshold) {
		shipping = p.FlatShipping
	}

	tax := Round2(subtotal * p.TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    math.Max(0, subtotal+shipping+tax),
	}
}

// ForCart prices the lines of a cart.
func (p Policy) ForCart(items []entity.LineItem) Totals {
	lines := make([]Line, 0, len(items))
	for i := range items {
		lines = append(lines, Line{UnitPrice: items[i].UnitPrice, Quantity: items[i].Quantity})
	}

	return p.Calculate(lines)
}

// ForOrder prices the items of an order.
func (p Policy) ForOrder(items []entity.OrderItem) Totals {
	lines := make([]Line, 0, len(items))
	for i := range items {
		lines = append(lines, Line{UnitPrice: items[i].UnitPrice, Quantity: items[i].Quantity})
	}

	return p.Calculate(lines)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
