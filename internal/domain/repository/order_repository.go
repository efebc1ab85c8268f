// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order with the same id was already created.
	ErrDuplicateOrder = errors.New("order already exists")
)

// DefaultPageSize is used when a filter carries no limit.
const DefaultPageSize = 20

// MaxPageSize caps list queries.
const MaxPageSize = 100

// OrderFilter narrows order listings. Results are ordered by createdAt, newest first.
type OrderFilter struct {
	UserID string
	Status entity.OrderStatus
	Range  entity.DateRange
	Limit  int
	Offset int
}

// PageLimit returns the effective limit.
func (f *OrderFilter) PageLimit() int {
	return ClampLimit(f.Limit)
}

// ClampLimit applies the default and maximum page sizes.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}

	return min(limit, MaxPageSize)
}

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	// Create stores a new order under order.ID. It returns ErrDuplicateOrder
	// when that id already exists.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order, or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter *OrderFilter) ([]*entity.Order, error)

	// UpdateStatus sets the status and, when non-empty, the tracking number.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, trackingNumber string, at time.Time) error

	// Stats computes dashboard aggregates for orders created inside the range.
	Stats(ctx context.Context, dateRange entity.DateRange) (*entity.DashboardStats, error)

	// AggregateForUser recomputes a customer's summary from their orders.
	AggregateForUser(ctx context.Context, userID string) (*entity.CustomerAggregate, error)
}
