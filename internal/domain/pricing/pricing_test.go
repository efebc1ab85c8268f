package pricing

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Calculate_ReferenceCart(t *testing.T) {
	totals := DefaultPolicy().Calculate([]Line{
		{UnitPrice: 20, Quantity: 2},
		{UnitPrice: 5, Quantity: 1},
	})

	assert.InDelta(t, 45.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 9.99, totals.Shipping, 1e-9)
	assert.InDelta(t, 4.50, totals.Tax, 1e-9)
	assert.InDelta(t, 59.49, totals.Total, 1e-9)
}

func TestPolicy_Calculate_EmptyCart(t *testing.T) {
	totals := DefaultPolicy().Calculate(nil)

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Shipping)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
}

func TestPolicy_Calculate_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
	}{
		{name: "single cheap line", lines: []Line{{UnitPrice: 0.99, Quantity: 1}}},
		{name: "fractional prices", lines: []Line{{UnitPrice: 19.99, Quantity: 3}, {UnitPrice: 4.45, Quantity: 7}}},
		{name: "many lines", lines: []Line{{UnitPrice: 1.1, Quantity: 10}, {UnitPrice: 2.2, Quantity: 5}, {UnitPrice: 1549.5, Quantity: 1}}},
		{name: "rounding boundary", lines: []Line{{UnitPrice: 0.05, Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := DefaultPolicy().Calculate(tt.lines)

			var want float64
			for _, l := range tt.lines {
				want += l.UnitPrice * float64(l.Quantity)
			}

			assert.InDelta(t, want, totals.Subtotal, 1e-9)
			assert.InDelta(t, Round2(want*0.10), totals.Tax, 1e-9)
			assert.InDelta(t, totals.Subtotal+totals.Shipping+totals.Tax, totals.Total, 1e-9)
		})
	}
}

func TestPolicy_Calculate_FreeShippingThreshold(t *testing.T) {
	policy := Policy{FlatShipping: 5.99, TaxRate: 0.10, FreeShippingThreshold: 50}

	below := policy.Calculate([]Line{{UnitPrice: 49.99, Quantity: 1}})
	assert.InDelta(t, 5.99, below.Shipping, 1e-9)

	at := policy.Calculate([]Line{{UnitPrice: 25, Quantity: 2}})
	assert.Zero(t, at.Shipping)
}

func TestPolicy_Calculate_TotalNeverNegative(t *testing.T) {
	totals := DefaultPolicy().Calculate([]Line{{UnitPrice: -100, Quantity: 1}})

	assert.Zero(t, totals.Shipping)
	assert.Equal(t, 0.0, totals.Total)
}

func TestPolicy_ForCart(t *testing.T) {
	items := []entity.LineItem{
		{ProductID: "1", UnitPrice: 20, Quantity: 2, DiscountPercentage: 12.5},
		{ProductID: "2", UnitPrice: 5, Quantity: 1},
	}

	totals := DefaultPolicy().ForCart(items)

	assert.InDelta(t, 45.00, totals.Subtotal, 1e-9, "discount percentage is display only")
	assert.InDelta(t, 59.49, totals.Total, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 4.5, Round2(4.5), 1e-12)
	assert.InDelta(t, 0.01, Round2(0.005), 1e-12)
	assert.InDelta(t, 1.23, Round2(1.234), 1e-12)
	assert.InDelta(t, -1.23, Round2(-1.234), 1e-12)
}
