package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type adminService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	identity  service.IdentityProvider
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Identity  service.IdentityProvider
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAdminService creates the back-office usecase. Callers are expected to be
// administrators; the HTTP layer enforces it before any method is reached.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		orders:    params.Orders,
		customers: params.Customers,
		identity:  params.Identity,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (s *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *adminService) DashboardStats(ctx context.Context, dateRange entity.DateRange) (*entity.DashboardStats, error) {
	if !dateRange.From.IsZero() && !dateRange.To.IsZero() && dateRange.To.Before(dateRange.From) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("range end is before its start")
	}

	stats, err := s.orders.Stats(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate order stats")
	}
	stats.Range = dateRange
	stats.FinalizeAverage()

	return stats, nil
}

func (s *adminService) ListOrders(ctx context.Context, filter *repository.OrderFilter) ([]*entity.Order, error) {
	if filter == nil {
		filter = &repository.OrderFilter{}
	}
	if filter.Status != "" && !filter.Status.IsValid() && filter.Status != entity.OrderStatusPending {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(filter.Status.String())
	}
	filter.Offset = max(filter.Offset, 0)

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, orderID string, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	next := entity.OrderStatus(strings.ToLower(strings.TrimSpace(string(input.Status))))
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(input.Status))
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	tracking := strings.TrimSpace(input.TrackingNumber)
	if order.Status == next && (tracking == "" || tracking == order.TrackingNumber) {
		return order, nil
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(order.Status.String() + " -> " + next.String())
	}
	if tracking == "" {
		tracking = order.TrackingNumber
	}

	now := s.now()
	if err := s.orders.UpdateStatus(ctx, orderID, next, tracking, now); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	previous := order.Status
	order.Status = next
	order.TrackingNumber = tracking
	order.UpdatedAt = now

	s.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	if previous != next {
		s.publishStatusChanged(ctx, order, previous)
	}

	return order, nil
}

func (s *adminService) publishStatusChanged(ctx context.Context, order *entity.Order, previous entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.NewString(),
		Type:           service.OrderEventStatusChanged,
		OrderID:        order.ID,
		UserID:         order.UserID,
		UserEmail:      order.UserEmail,
		UserName:       order.UserName,
		Status:         order.Status.String(),
		PreviousStatus: previous.String(),
		TrackingNumber: order.TrackingNumber,
		Total:          order.Total,
		OccurredAt:     order.UpdatedAt,
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func (s *adminService) ListCustomers(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	customers, err := s.customers.List(ctx, repository.ClampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}
	if customers == nil {
		customers = []*entity.Customer{}
	}

	return customers, nil
}

func (s *adminService) GetCustomer(ctx context.Context, uid string) (*usecase.CustomerDetail, error) {
	customer, err := s.customers.FindByID(ctx, uid)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer")
	}

	recent, err := s.orders.List(ctx, &repository.OrderFilter{UserID: uid, Limit: usecase.RecentOrderCount})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}
	if recent == nil {
		recent = []*entity.Order{}
	}

	return &usecase.CustomerDetail{Customer: customer, RecentOrders: recent}, nil
}

func (s *adminService) RebuildCustomerAggregate(ctx context.Context, uid string) (*entity.CustomerAggregate, error) {
	if _, err := s.customers.FindByID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	aggregate, err := s.orders.AggregateForUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate customer orders")
	}

	if err := s.customers.SetAggregate(ctx, uid, aggregate); err != nil {
		return nil, errors.Wrap(err, "failed to store customer aggregate")
	}

	s.log(ctx).Info("Customer aggregate rebuilt",
		slog.String("uid", uid),
		slog.Int64("orders", aggregate.Orders),
		slog.Float64("total_spent", aggregate.TotalSpent),
	)

	return aggregate, nil
}

func (s *adminService) GrantAdmin(ctx context.Context, email string) (*entity.Principal, error) {
	return s.setAdmin(ctx, email, true)
}

func (s *adminService) RevokeAdmin(ctx context.Context, email string) (*entity.Principal, error) {
	return s.setAdmin(ctx, email, false)
}

func (s *adminService) setAdmin(ctx context.Context, email string, admin bool) (*entity.Principal, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	principal, err := s.identity.SetAdmin(ctx, email, admin)
	if err != nil {
		return nil, err
	}

	if err := s.customers.SetAdmin(ctx, principal.UID, admin); err != nil {
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(err, "failed to mirror admin flag")
		}

		now := s.now()
		customer := &entity.Customer{
			UID:         principal.UID,
			Email:       principal.Email,
			DisplayName: principal.DisplayName,
			IsAdmin:     admin,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.customers.Upsert(ctx, customer); err != nil {
			return nil, errors.Wrap(err, "failed to create customer profile")
		}
	}

	s.log(ctx).Info("Admin claim updated", slog.String("uid", principal.UID), slog.Bool("admin", admin))

	return principal, nil
}
