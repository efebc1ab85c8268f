package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusPending only appears on legacy records; new orders start as processing.
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s may be written to an order.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an admin may move an order from s to next.
// Re-applying the current status is allowed and treated as a no-op by callers.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}

	switch s {
	case OrderStatusPending, OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusDelivered || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered || next == OrderStatusCancelled
	default:
		return false
	}
}

// PaymentStatus tracks payment collection for an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// PaymentMethod is the method chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required,max=120"`
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2,omitempty" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state,omitempty" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=60"`
	Phone      string `json:"phone,omitempty" validate:"max=30"`
}

// OrderItem is the immutable snapshot of a cart line inside an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Variant   Variant `json:"variant,omitzero"`
}

// LineTotal is the price of the item line.
func (i *OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Order is the durable record of a completed checkout.
type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	UserEmail         string          `json:"userEmail"`
	UserName          string          `json:"userName"`
	Items             []OrderItem     `json:"items"`
	Subtotal          float64         `json:"subtotal"`
	Shipping          float64         `json:"shipping"`
	Tax               float64         `json:"tax"`
	Total             float64         `json:"total"`
	Status            OrderStatus     `json:"status"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	Notes             string          `json:"notes,omitempty"`
	IdempotencyKey    string          `json:"-"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ItemCount is the total quantity ordered.
func (o *Order) ItemCount() int {
	count := 0
	for i := range o.Items {
		count += o.Items[i].Quantity
	}

	return count
}

// BelongsTo reports whether the order was placed by uid.
func (o *Order) BelongsTo(uid string) bool {
	return uid != "" && o.UserID == uid
}

// orderNamespace scopes order ids derived from idempotency keys.
var orderNamespace = uuid.MustParse("6f1d8a3e-2b7c-4d9e-a5f0-3c8b1e7d2a94")

// OrderIDFor derives the order id for a checkout attempt. The same user and
// idempotency key always yield the same id, which lets storage reject repeats.
func OrderIDFor(userID, idempotencyKey string) string {
	return uuid.NewSHA1(orderNamespace, []byte(userID+":"+idempotencyKey)).String()
}
