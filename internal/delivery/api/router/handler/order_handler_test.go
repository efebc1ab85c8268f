package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	e := newTestEcho()
	g := e.Group("/orders", withPrincipal(testPrincipal()))
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
	g.GET("/:id/invoice.pdf", h.Invoice)
	g.GET("/:id/qr.png", h.QRCode)

	return e, orderUC
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("passes pagination through", func(t *testing.T) {
		e, orderUC := createTestOrderHandler(t)

		orderUC.EXPECT().
			ListMyOrders(mock.Anything, testPrincipal(), 10, 20).
			Return([]*entity.Order{{ID: "order-1"}}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?limit=10&offset=20", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeData[[]entity.Order](t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, "order-1", orders[0].ID)
	})

	t.Run("non numeric limit", func(t *testing.T) {
		e, _ := createTestOrderHandler(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	e, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().GetOrder(mock.Anything, testPrincipal(), "order-9").Return(nil, domainerrors.ErrOrderNotFound).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_Documents(t *testing.T) {
	e, orderUC := createTestOrderHandler(t)

	orderUC.EXPECT().OrderInvoice(mock.Anything, testPrincipal(), "order-1").Return([]byte("%PDF-1.3"), nil).Once()
	orderUC.EXPECT().OrderQRCode(mock.Anything, testPrincipal(), "order-1").Return([]byte("\x89PNG"), nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-1/invoice.pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "invoice-order-1.pdf")
	assert.Equal(t, "%PDF-1.3", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-1/qr.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
