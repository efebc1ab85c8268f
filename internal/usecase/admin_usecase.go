package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// UpdateOrderStatusInput is the body of PATCH /admin/orders/:id/status.
type UpdateOrderStatusInput struct {
	Status         entity.OrderStatus `json:"status" validate:"required"`
	TrackingNumber string             `json:"trackingNumber" validate:"max=64"`
}

// CustomerDetail is a customer profile with their latest orders.
type CustomerDetail struct {
	Customer     *entity.Customer `json:"customer"`
	RecentOrders []*entity.Order  `json:"recentOrders"`
}

// RecentOrderCount is how many orders GetCustomer returns.
const RecentOrderCount = 5

// AdminUsecase backs the admin panel. Callers must have checked IsAdmin.
type AdminUsecase interface {
	DashboardStats(ctx context.Context, dateRange entity.DateRange) (*entity.DashboardStats, error)
	ListOrders(ctx context.Context, filter *repository.OrderFilter) ([]*entity.Order, error)
	// UpdateOrderStatus validates the transition and publishes order.status_changed.
	UpdateOrderStatus(ctx context.Context, orderID string, input *UpdateOrderStatusInput) (*entity.Order, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, uid string) (*CustomerDetail, error)
	// RebuildCustomerAggregate recomputes the summary from the orders collection.
	RebuildCustomerAggregate(ctx context.Context, uid string) (*entity.CustomerAggregate, error)
	GrantAdmin(ctx context.Context, email string) (*entity.Principal, error)
	RevokeAdmin(ctx context.Context, email string) (*entity.Principal, error)
}
