package impl

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service  usecase.OrderUsecase
	orders   *mockRepo.MockOrderRepository
	qrcode   *mockSvc.MockQRCodeService
	renderer *mockSvc.MockInvoiceRenderer
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orders := mockRepo.NewMockOrderRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	renderer := mockSvc.NewMockInvoiceRenderer(t)

	return orderServiceFixtures{
		service: NewOrderService(OrderServiceParams{
			Orders:   orders,
			QRCode:   qrcode,
			Renderer: renderer,
			Logger:   newDiscardLogger(),
		}),
		orders:   orders,
		qrcode:   qrcode,
		renderer: renderer,
	}
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:        "order-1",
		UserID:    "user-1",
		UserEmail: "ada@example.com",
		UserName:  "Ada",
		Items:     []entity.OrderItem{{ProductID: "p-20", Name: "Product p-20", UnitPrice: 20, Quantity: 2}},
		Subtotal:  40,
		Shipping:  9.99,
		Tax:       4,
		Total:     53.99,
		Status:    entity.OrderStatusProcessing,
		CreatedAt: testNow,
	}
}

func TestOrderService_ListMyOrders_ScopesToPrincipal(t *testing.T) {
	fx := createTestOrderService(t)

	fx.orders.EXPECT().
		List(mock.Anything, &repository.OrderFilter{UserID: "user-1", Limit: 10}).
		Return(nil, nil)

	orders, err := fx.service.ListMyOrders(t.Context(), testPrincipal(), 10, -5)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	_, err = fx.service.ListMyOrders(t.Context(), nil, 10, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestOrderService_GetOrder_Access(t *testing.T) {
	tests := []struct {
		name      string
		principal *entity.Principal
		wantErr   error
	}{
		{name: "owner", principal: testPrincipal()},
		{name: "admin", principal: &entity.Principal{UID: "admin-1", Admin: true}},
		{name: "someone else", principal: &entity.Principal{UID: "user-2"}, wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)

			order, err := fx.service.GetOrder(t.Context(), tt.principal, "order-1")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "order-1", order.ID)
		})
	}
}

func TestOrderService_GetOrder_Missing(t *testing.T) {
	fx := createTestOrderService(t)
	fx.orders.EXPECT().FindByID(mock.Anything, "nope").Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(t.Context(), testPrincipal(), "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_OrderInvoice_EmbedsQRCode(t *testing.T) {
	fx := createTestOrderService(t)
	qr := []byte("png-bytes")

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().GenerateOrderQR("order-1").Return(qr, nil)
	fx.renderer.EXPECT().
		RenderInvoice(mock.MatchedBy(func(o *entity.Order) bool { return o.ID == "order-1" }), qr).
		Return([]byte("%PDF-1.3"), nil)

	pdf, err := fx.service.OrderInvoice(t.Context(), testPrincipal(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
}

func TestOrderService_OrderInvoice_WithoutQRCode(t *testing.T) {
	fx := createTestOrderService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().GenerateOrderQR("order-1").Return(nil, errors.New("encoder failed"))
	fx.renderer.EXPECT().RenderInvoice(mock.Anything, []byte(nil)).Return([]byte("%PDF-1.3"), nil)

	_, err := fx.service.OrderInvoice(t.Context(), testPrincipal(), "order-1")
	require.NoError(t, err)
}

func TestOrderService_OrderQRCode(t *testing.T) {
	fx := createTestOrderService(t)

	fx.orders.EXPECT().FindByID(mock.Anything, "order-1").Return(testOrder(), nil)
	fx.qrcode.EXPECT().GenerateOrderQR("order-1").Return([]byte("png"), nil)

	png, err := fx.service.OrderQRCode(t.Context(), testPrincipal(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
