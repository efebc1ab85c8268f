package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
)

const defaultAdminTopic = "admin-orders"

type orderEventService struct {
	orders     repository.OrderRepository
	mailer     service.Mailer
	notifier   service.NotificationService
	qrcode     service.QRCodeService
	adminTopic string
	logger     *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	Orders   repository.OrderRepository
	Mailer   service.Mailer
	Notifier service.NotificationService
	QRCode   service.QRCodeService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewOrderEventService creates the usecase run by the order worker for each
// delivered event.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	adminTopic := defaultAdminTopic
	if params.Config != nil && params.Config.Notifications != nil && params.Config.Notifications.AdminTopic != "" {
		adminTopic = params.Config.Notifications.AdminTopic
	}

	return &orderEventService{
		orders:     params.Orders,
		mailer:     params.Mailer,
		notifier:   params.Notifier,
		qrcode:     params.QRCode,
		adminTopic: adminTopic,
		logger:     params.Logger,
	}
}

func (s *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CustomerTopic is the notification topic a customer's devices subscribe to.
func CustomerTopic(uid string) string {
	return "orders-" + uid
}

// HandleOrderEvent returns a retryable error only when redelivery can help.
func (s *orderEventService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event == nil || event.OrderID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event has no order id")
	}

	logger := s.log(ctx).With(
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	switch event.Type {
	case service.OrderEventCreated, service.OrderEventStatusChanged:
	default:
		logger.Warn("Ignoring unknown order event type")

		return nil
	}

	order, err := s.orders.FindByID(ctx, event.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		logger.Warn("Order for event not found, acknowledging")

		return nil
	}
	if err != nil {
		return domainerrors.NewRetryableError(errors.Wrap(err, "failed to load order"))
	}

	if event.Type == service.OrderEventCreated {
		return s.handleCreated(ctx, logger, order)
	}

	return s.handleStatusChanged(ctx, logger, order, event)
}

func (s *orderEventService) handleCreated(ctx context.Context, logger *slog.Logger, order *entity.Order) error {
	email := orderConfirmationEmail(order, s.qrcode.OrderURL(order.ID))
	if err := s.mailer.Send(ctx, email); err != nil {
		return domainerrors.NewRetryableError(errors.Wrap(err, "failed to send order confirmation"))
	}

	title := "New order #" + util.ShortID(order.ID)
	body := order.UserName + " placed an order of " + util.FormatCurrency(order.Total)
	if err := s.notifier.SendToTopic(ctx, s.adminTopic, title, body, notificationData(order)); err != nil {
		logger.Error("Failed to notify admins", slog.Any("error", err))
	}

	logger.Info("Order created event handled")

	return nil
}

func (s *orderEventService) handleStatusChanged(ctx context.Context, logger *slog.Logger, order *entity.Order, event *service.OrderEvent) error {
	// The event carries the status the admin set; the document may already
	// have moved on if events arrive late.
	if status := entity.OrderStatus(event.Status); status.IsValid() {
		order.Status = status
	}
	if event.TrackingNumber != "" {
		order.TrackingNumber = event.TrackingNumber
	}

	if err := s.mailer.Send(ctx, orderStatusEmail(order, s.qrcode.OrderURL(order.ID))); err != nil {
		return domainerrors.NewRetryableError(errors.Wrap(err, "failed to send status email"))
	}

	title := "Order #" + util.ShortID(order.ID)
	body := "Your order is now " + order.Status.String()
	if err := s.notifier.SendToTopic(ctx, CustomerTopic(order.UserID), title, body, notificationData(order)); err != nil {
		logger.Error("Failed to notify customer", slog.Any("error", err))
	}

	logger.Info("Order status event handled", slog.String("status", order.Status.String()))

	return nil
}

func notificationData(order *entity.Order) map[string]string {
	return map[string]string{
		"orderId": order.ID,
		"status":  order.Status.String(),
	}
}
