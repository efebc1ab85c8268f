package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. The id is derived from the idempotency key,
// so a repeated insert collides on the primary key.
type OrderModel struct {
	ID                string                                   `gorm:"type:varchar(36);primaryKey"`
	UserID            string                                   `gorm:"type:varchar(128);not null;index:idx_orders_user_created,priority:1"`
	UserEmail         string                                   `gorm:"type:varchar(255)"`
	UserName          string                                   `gorm:"type:varchar(255)"`
	Items             datatypes.JSON                           `gorm:"type:jsonb;not null"`
	Subtotal          float64                                  `gorm:"type:double precision;not null"`
	Shipping          float64                                  `gorm:"type:double precision;not null"`
	Tax               float64                                  `gorm:"type:double precision;not null"`
	Total             float64                                  `gorm:"type:double precision;not null"`
	Status            string                                   `gorm:"type:varchar(20);not null;index"`
	PaymentMethod     string                                   `gorm:"type:varchar(30);not null"`
	PaymentStatus     string                                   `gorm:"type:varchar(20);not null"`
	ShippingAddress   datatypes.JSONType[ShippingAddressModel] `gorm:"type:jsonb"`
	TrackingNumber    string                                   `gorm:"type:varchar(100)"`
	EstimatedDelivery time.Time
	Notes             string    `gorm:"type:text"`
	IdempotencyKey    string    `gorm:"type:varchar(128)"`
	CreatedAt         time.Time `gorm:"not null;index;index:idx_orders_user_created,priority:2"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is one element of the orders.items JSON array.
type OrderItemModel struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// ShippingAddressModel is stored as JSON on orders and customers.
type ShippingAddressModel struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}
