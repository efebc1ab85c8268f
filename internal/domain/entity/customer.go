package entity

import "time"

// CustomerAggregate summarises a customer's order history.
type CustomerAggregate struct {
	Orders      int64      `json:"orders"`
	TotalSpent  float64    `json:"totalSpent"`
	LastOrderAt *time.Time `json:"lastOrder,omitempty"`
}

// Apply folds one order into the aggregate.
func (a *CustomerAggregate) Apply(order *Order) {
	a.Orders++
	a.TotalSpent += order.Total
	if a.LastOrderAt == nil || order.CreatedAt.After(*a.LastOrderAt) {
		at := order.CreatedAt
		a.LastOrderAt = &at
	}
}

// Customer is the profile stored under users/{uid}.
type Customer struct {
	UID            string            `json:"uid"`
	Email          string            `json:"email"`
	DisplayName    string            `json:"displayName"`
	IsAdmin        bool              `json:"isAdmin"`
	DefaultAddress *ShippingAddress  `json:"defaultAddress,omitempty"`
	Aggregate      CustomerAggregate `json:"aggregate"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
