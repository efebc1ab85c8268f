package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// CheckoutQuote is the priced cart shown on the checkout page. Totals is nil
// when the cart is empty.
type CheckoutQuote struct {
	Empty             bool                    `json:"empty"`
	Items             []entity.LineItem       `json:"items"`
	ItemCount         int                     `json:"itemCount"`
	Totals            *pricing.Totals         `json:"totals,omitempty"`
	DefaultAddress    *entity.ShippingAddress `json:"defaultAddress,omitempty"`
	EstimatedDelivery time.Time               `json:"estimatedDelivery,omitzero"`
}

// SubmitOrderInput carries one checkout attempt.
type SubmitOrderInput struct {
	ClientID        string                  `json:"-"`
	Principal       *entity.Principal       `json:"-"`
	IdempotencyKey  string                  `json:"-"`
	ShippingAddress *entity.ShippingAddress `json:"shippingAddress" validate:"omitempty"`
	SaveAddress     bool                    `json:"saveAddress"`
	PaymentMethod   entity.PaymentMethod    `json:"paymentMethod" validate:"omitempty,oneof=card paypal cash_on_delivery"`
	Notes           string                  `json:"notes" validate:"max=500"`
	// ReturnPath is where sign-in sends the user back to; defaults to /checkout.
	ReturnPath string `json:"returnPath"`
}

// SubmitOrderResult is the outcome of a successful submission.
type SubmitOrderResult struct {
	Order         *entity.Order `json:"order"`
	Replayed      bool          `json:"replayed"`
	Redirect      string        `json:"redirect"`
	RedirectAfter time.Duration `json:"-"`
}

// CheckoutUsecase turns a cart into an order.
type CheckoutUsecase interface {
	Quote(ctx context.Context, clientID string, principal *entity.Principal) (*CheckoutQuote, error)
	// SubmitOrder creates exactly one order per idempotency key and clears the cart.
	SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*SubmitOrderResult, error)
}
