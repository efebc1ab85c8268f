package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// OrderUsecase serves a customer's own orders and their documents.
type OrderUsecase interface {
	ListMyOrders(ctx context.Context, principal *entity.Principal, limit, offset int) ([]*entity.Order, error)
	// GetOrder returns the order when the principal owns it or is an admin.
	GetOrder(ctx context.Context, principal *entity.Principal, orderID string) (*entity.Order, error)
	OrderQRCode(ctx context.Context, principal *entity.Principal, orderID string) ([]byte, error)
	OrderInvoice(ctx context.Context, principal *entity.Principal, orderID string) ([]byte, error)
}

// OrderEventUsecase reacts to order events delivered to the worker.
type OrderEventUsecase interface {
	// HandleOrderEvent sends the emails and push notifications for the event.
	// Errors wrapped with domainerrors.NewRetryableError should be redelivered.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
