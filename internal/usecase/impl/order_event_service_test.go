package impl

import (
	"strings"
	"testing"

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

// orderEventServiceFixtures holds all test dependencies for the worker usecase.
type orderEventServiceFixtures struct {
	service  usecase.OrderEventUsecase
	orders   *mockRepo.MockOrderRepository
	mailer   *mockSvc.MockMailer
	notifier *mockSvc.MockNotificationService
	qrcode   *mockSvc.MockQRCodeService
}

func createTestOrderEventService(t *testing.T) orderEventServiceFixtures {
	orders := mockRepo.NewMockOrderRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	notifier := mockSvc.NewMockNotificationService(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	return orderEventServiceFixtures{
		service: NewOrderEventService(OrderEventServiceParams{
			Orders:   orders,
			Mailer:   mailer,
			Notifier: notifier,
			QRCode:   qrcode,
			Config:   newTestConfig(),
			Logger:   newDiscardLogger(),
		}),
		orders:   orders,
		mailer:   mailer,
		notifier: notifier,
		qrcode:   qrcode,
	}
}

func createdEvent() *service.OrderEvent {
	return &service.OrderEvent{EventID: "evt-1", Type: service.OrderEventCreated, OrderID: "order-1", UserID: "user-1"}
}

func TestOrderEventService_Created(t *testing.T) {
	fx := createTestOrderEventService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().OrderURL("order-1").Return("https://shop.example.com/orders/order-1")
	fx.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(e *service.Email) bool {
			return e.ToAddress == "ada@example.com" && e.HTML != ""
		})).
		Return(nil)
	fx.notifier.EXPECT().
		SendToTopic(mock.Anything, "admin-orders", mock.Anything, mock.Anything, map[string]string{"orderId": "order-1", "status": "processing"}).
		Return(nil)

	require.NoError(t, fx.service.HandleOrderEvent(t.Context(), createdEvent()))
}

func TestOrderEventService_EmailFailureIsRetryable(t *testing.T) {
	fx := createTestOrderEventService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().OrderURL("order-1").Return("https://shop.example.com/orders/order-1")
	fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("sendgrid 503"))

	err := fx.service.HandleOrderEvent(t.Context(), createdEvent())
	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestOrderEventService_NotificationFailureIsAcknowledged(t *testing.T) {
	fx := createTestOrderEventService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().OrderURL("order-1").Return("https://shop.example.com/orders/order-1")
	fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	fx.notifier.EXPECT().SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("fcm down"))

	require.NoError(t, fx.service.HandleOrderEvent(t.Context(), createdEvent()))
}

func TestOrderEventService_StatusChanged(t *testing.T) {
	fx := createTestOrderEventService(t)
	event := &service.OrderEvent{
		EventID:        "evt-2",
		Type:           service.OrderEventStatusChanged,
		OrderID:        "order-1",
		UserID:         "user-1",
		Status:         "shipped",
		PreviousStatus: "processing",
		TrackingNumber: "1Z999",
	}

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().OrderURL("order-1").Return("https://shop.example.com/orders/order-1")
	fx.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(e *service.Email) bool {
			return strings.HasSuffix(e.Subject, " is shipped") && strings.Contains(e.PlainText, "1Z999")
		})).
		Return(nil)
	fx.notifier.EXPECT().
		SendToTopic(mock.Anything, CustomerTopic("user-1"), mock.Anything, "Your order is now shipped", mock.Anything).
		Return(nil)

	require.NoError(t, fx.service.HandleOrderEvent(t.Context(), event))
}

func TestOrderEventService_AcknowledgedCases(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderEventService(t)
		fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(nil, repository.ErrOrderNotFound)

		require.NoError(t, fx.service.HandleOrderEvent(t.Context(), createdEvent()))
	})

	t.Run("unknown type", func(t *testing.T) {
		fx := createTestOrderEventService(t)
		event := createdEvent()
		event.Type = "order.refunded"

		require.NoError(t, fx.service.HandleOrderEvent(t.Context(), event))
	})

	t.Run("malformed event", func(t *testing.T) {
		fx := createTestOrderEventService(t)

		err := fx.service.HandleOrderEvent(t.Context(), &service.OrderEvent{Type: service.OrderEventCreated})
		require.Error(t, err)
		assert.False(t, domainerrors.IsRetryable(err))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestOrderEventService_StoreFailureIsRetryable(t *testing.T) {
	fx := createTestOrderEventService(t)
	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(nil, repository.ErrStoreUnavailable)

	err := fx.service.HandleOrderEvent(t.Context(), createdEvent())
	assert.True(t, domainerrors.IsRetryable(err))
}
