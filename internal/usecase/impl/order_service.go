package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	orders   repository.OrderRepository
	qrcode   service.QRCodeService
	renderer service.InvoiceRenderer
	logger   *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Orders   repository.OrderRepository
	QRCode   service.QRCodeService
	Renderer service.InvoiceRenderer
	Logger   *slog.Logger
}

// NewOrderService creates the customer-facing order usecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders:   params.Orders,
		qrcode:   params.QRCode,
		renderer: params.Renderer,
		logger:   params.Logger,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *orderService) ListMyOrders(ctx context.Context, principal *entity.Principal, limit, offset int) ([]*entity.Order, error) {
	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	orders, err := s.orders.List(ctx, &repository.OrderFilter{
		UserID: principal.UID,
		Limit:  limit,
		Offset: max(offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}

// GetOrder hides orders the principal may not see behind the same not-found
// error as missing ones, so ids cannot be probed.
func (s *orderService) GetOrder(ctx context.Context, principal *entity.Principal, orderID string) (*entity.Order, error) {
	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	if !principal.CanAccessOrder(order) {
		s.log(ctx).Warn("Order access denied",
			slog.String("order_id", orderID),
			slog.String("uid", principal.UID),
		)

		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (s *orderService) OrderQRCode(ctx context.Context, principal *entity.Principal, orderID string) ([]byte, error) {
	order, err := s.GetOrder(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func (s *orderService) OrderInvoice(ctx context.Context, principal *entity.Principal, orderID string) ([]byte, error) {
	order, err := s.GetOrder(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	qr, err := s.qrcode.GenerateOrderQR(order.ID)
	if err != nil {
		// The invoice is still useful without the code.
		s.log(ctx).Warn("Failed to generate invoice QR code", slog.String("order_id", order.ID), slog.Any("error", err))
		qr = nil
	}

	pdf, err := s.renderer.RenderInvoice(order, qr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invoice")
	}

	return pdf, nil
}
