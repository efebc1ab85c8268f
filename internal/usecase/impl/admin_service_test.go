package impl

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	orders    *mockRepo.MockOrderRepository
	customers *mockRepo.MockCustomerRepository
	identity  *mockSvc.MockIdentityProvider
	publisher *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	orders := mockRepo.NewMockOrderRepository(t)
	customers := mockRepo.NewMockCustomerRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewAdminService(AdminServiceParams{
		Orders:    orders,
		Customers: customers,
		Identity:  identity,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	srv.(*adminService).now = func() time.Time { return testNow }

	return adminServiceFixtures{
		service:   srv,
		orders:    orders,
		customers: customers,
		identity:  identity,
		publisher: publisher,
	}
}

func TestAdminService_DashboardStats(t *testing.T) {
	fx := createTestAdminService(t)
	dateRange := entity.DateRange{From: testNow.AddDate(0, -1, 0), To: testNow}

	fx.orders.EXPECT().Stats(mock.Anything, dateRange).Return(&entity.DashboardStats{
		TotalOrders:  4,
		TotalRevenue: 200,
		StatusCounts: entity.StatusCounts{Processing: 2, Pending: 1, Cancelled: 1},
	}, nil)

	stats, err := fx.service.DashboardStats(t.Context(), dateRange)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, stats.AverageOrderValue, 1e-9)
	assert.Equal(t, dateRange, stats.Range)
	assert.Equal(t, int64(1), stats.StatusCounts.Pending)
}

func TestAdminService_DashboardStats_NoOrders(t *testing.T) {
	fx := createTestAdminService(t)

	fx.orders.EXPECT().Stats(mock.Anything, entity.DateRange{}).Return(&entity.DashboardStats{}, nil)

	stats, err := fx.service.DashboardStats(t.Context(), entity.DateRange{})
	require.NoError(t, err)
	assert.Zero(t, stats.AverageOrderValue)
}

func TestAdminService_DashboardStats_InvertedRange(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.DashboardStats(t.Context(), entity.DateRange{From: testNow, To: testNow.Add(-time.Hour)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_UpdateOrderStatus_PublishesChange(t *testing.T) {
	fx := createTestAdminService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entity.OrderStatusShipped, "1Z999", testNow).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventStatusChanged &&
				e.Status == "shipped" && e.PreviousStatus == "processing" && e.TrackingNumber == "1Z999"
		})).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(t.Context(), "order-1", &usecase.UpdateOrderStatusInput{
		Status:         "Shipped",
		TrackingNumber: "1Z999",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	assert.Equal(t, testNow, order.UpdatedAt)
}

func TestAdminService_UpdateOrderStatus_SameStatusIsNoop(t *testing.T) {
	fx := createTestAdminService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)

	order, err := fx.service.UpdateOrderStatus(t.Context(), "order-1", &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusProcessing})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestAdminService_UpdateOrderStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		next    entity.OrderStatus
		want    *domainerrors.BaseError
	}{
		{name: "unknown status", current: entity.OrderStatusProcessing, next: "lost", want: domainerrors.ErrInvalidOrderStatus},
		{name: "pending cannot be set", current: entity.OrderStatusProcessing, next: entity.OrderStatusPending, want: domainerrors.ErrInvalidOrderStatus},
		{name: "delivered is terminal", current: entity.OrderStatusDelivered, next: entity.OrderStatusShipped, want: domainerrors.ErrInvalidStatusTransition},
		{name: "cancelled is terminal", current: entity.OrderStatusCancelled, next: entity.OrderStatusProcessing, want: domainerrors.ErrInvalidStatusTransition},
		{name: "shipped cannot go back", current: entity.OrderStatusShipped, next: entity.OrderStatusProcessing, want: domainerrors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			order := testOrder()
			order.Status = tt.current
			fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(order, nil).Maybe()

			_, err := fx.service.UpdateOrderStatus(t.Context(), "order-1", &usecase.UpdateOrderStatusInput{Status: tt.next})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAdminService_GetCustomer(t *testing.T) {
	fx := createTestAdminService(t)
	customer := &entity.Customer{UID: "user-1", Aggregate: entity.CustomerAggregate{Orders: 7, TotalSpent: 321.5}}

	fx.customers.EXPECT().FindByID(mock.Anything, "user-1").Return(customer, nil)
	fx.orders.EXPECT().
		List(mock.Anything, &repository.OrderFilter{UserID: "user-1", Limit: usecase.RecentOrderCount}).
		Return([]*entity.Order{testOrder()}, nil)

	detail, err := fx.service.GetCustomer(t.Context(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), detail.Customer.Aggregate.Orders)
	assert.Len(t, detail.RecentOrders, 1)

	fx.customers.EXPECT().FindByID(mock.Anything, "ghost").Return(nil, repository.ErrCustomerNotFound)
	_, err = fx.service.GetCustomer(t.Context(), "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestAdminService_ListCustomers_ClampsPage(t *testing.T) {
	fx := createTestAdminService(t)

	fx.customers.EXPECT().List(mock.Anything, repository.MaxPageSize, 0).Return(nil, nil)

	customers, err := fx.service.ListCustomers(t.Context(), 10_000, -1)
	require.NoError(t, err)
	assert.NotNil(t, customers)
}

func TestAdminService_RebuildCustomerAggregate(t *testing.T) {
	fx := createTestAdminService(t)
	last := testNow
	aggregate := &entity.CustomerAggregate{Orders: 3, TotalSpent: 99.5, LastOrderAt: &last}

	fx.customers.EXPECT().FindByID(mock.Anything, "user-1").Return(&entity.Customer{UID: "user-1"}, nil)
	fx.orders.EXPECT().AggregateForUser(mock.Anything, "user-1").Return(aggregate, nil)
	fx.customers.EXPECT().SetAggregate(mock.Anything, "user-1", aggregate).Return(nil)

	got, err := fx.service.RebuildCustomerAggregate(t.Context(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, aggregate, got)
}

func TestAdminService_GrantAdmin(t *testing.T) {
	fx := createTestAdminService(t)
	principal := &entity.Principal{UID: "user-9", Email: "ops@example.com", Admin: true}

	fx.identity.EXPECT().SetAdmin(mock.Anything, "ops@example.com", true).Return(principal, nil)
	fx.customers.EXPECT().SetAdmin(mock.Anything, "user-9", true).Return(repository.ErrCustomerNotFound)
	fx.customers.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool { return c.UID == "user-9" && c.IsAdmin })).
		Return(nil)

	got, err := fx.service.GrantAdmin(t.Context(), " OPS@example.com ")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin())
}

func TestAdminService_RevokeAdmin(t *testing.T) {
	fx := createTestAdminService(t)
	principal := &entity.Principal{UID: "user-9", Email: "ops@example.com"}

	fx.identity.EXPECT().SetAdmin(mock.Anything, "ops@example.com", false).Return(principal, nil)
	fx.customers.EXPECT().SetAdmin(mock.Anything, "user-9", false).Return(nil)

	got, err := fx.service.RevokeAdmin(t.Context(), "ops@example.com")
	require.NoError(t, err)
	assert.False(t, got.IsAdmin())

	_, err = fx.service.RevokeAdmin(t.Context(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
