package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutHandler(t *testing.T, principal *entity.Principal) (*echo.Echo, *mockUsecase.MockCheckoutUsecase) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})

	e := newTestEcho()
	g := e.Group("/checkout", withClientID, withPrincipal(principal))
	g.GET("", h.Quote)
	g.POST("/orders", h.SubmitOrder)

	return e, checkoutUC
}

func submitRequest(body, idempotencyKey string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/checkout/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if idempotencyKey != "" {
		req.Header.Set(HeaderIdempotencyKey, idempotencyKey)
	}

	return req
}

func TestCheckoutHandler_SubmitOrder(t *testing.T) {
	t.Run("creates the order", func(t *testing.T) {
		principal := testPrincipal()
		e, checkoutUC := createTestCheckoutHandler(t, principal)

		checkoutUC.EXPECT().
			SubmitOrder(mock.Anything, mock.MatchedBy(func(in *usecase.SubmitOrderInput) bool {
				return in.ClientID == testClientID &&
					in.Principal == principal &&
					in.IdempotencyKey == "key-1" &&
					in.PaymentMethod == entity.PaymentMethodPayPal &&
					in.SaveAddress
			})).
			Return(&usecase.SubmitOrderResult{
				Order:         &entity.Order{ID: "order-1", Total: 59.49},
				Redirect:      "/orders/order-1",
				RedirectAfter: 3 * time.Second,
			}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{"paymentMethod":"paypal","saveAddress":true}`, "key-1"))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decodeData[map[string]any](t, rec)
		assert.Equal(t, "/orders/order-1", got["redirect"])
		assert.EqualValues(t, 3000, got["redirectAfterMs"])
		assert.Equal(t, false, got["replayed"])
	})

	t.Run("replayed submission answers 200", func(t *testing.T) {
		e, checkoutUC := createTestCheckoutHandler(t, testPrincipal())

		checkoutUC.EXPECT().
			SubmitOrder(mock.Anything, mock.Anything).
			Return(&usecase.SubmitOrderResult{
				Order:    &entity.Order{ID: "order-1"},
				Replayed: true,
				Redirect: "/orders/order-1",
			}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{}`, "key-1"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous caller gets the login redirect", func(t *testing.T) {
		e, checkoutUC := createTestCheckoutHandler(t, nil)

		checkoutUC.EXPECT().
			SubmitOrder(mock.Anything, mock.MatchedBy(func(in *usecase.SubmitOrderInput) bool {
				return in.Principal == nil
			})).
			Return(nil, domainerrors.NewRedirectError(domainerrors.ErrAuthenticationRequired, "/login?redirect=%2Fcheckout")).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{}`, ""))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrAuthenticationRequired.ErrorCode(), env.Error.Code)
		assert.Equal(t, "/login?redirect=%2Fcheckout", env.Error.Redirect)
	})

	t.Run("empty cart redirects to the cart", func(t *testing.T) {
		e, checkoutUC := createTestCheckoutHandler(t, testPrincipal())

		checkoutUC.EXPECT().
			SubmitOrder(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewRedirectError(domainerrors.ErrCartEmpty, "/cart")).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{}`, ""))

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrCartEmpty.HTTPCode(), rec.Code)
		assert.Equal(t, "/cart", env.Error.Redirect)
	})

	t.Run("invalid payment method is rejected before the usecase", func(t *testing.T) {
		e, _ := createTestCheckoutHandler(t, testPrincipal())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{"paymentMethod":"barter"}`, ""))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		assert.Contains(t, env.Error.Details, "paymentMethod")
	})

	t.Run("oversized idempotency key is rejected before the usecase", func(t *testing.T) {
		e, _ := createTestCheckoutHandler(t, testPrincipal())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{}`, strings.Repeat("é", maxIdempotencyKeyLength+1)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		assert.Contains(t, env.Error.Details, HeaderIdempotencyKey)
	})

	t.Run("multibyte idempotency key at the limit is kept whole", func(t *testing.T) {
		e, checkoutUC := createTestCheckoutHandler(t, testPrincipal())
		key := strings.Repeat("é", maxIdempotencyKeyLength)

		checkoutUC.EXPECT().
			SubmitOrder(mock.Anything, mock.MatchedBy(func(in *usecase.SubmitOrderInput) bool {
				return in.IdempotencyKey == key
			})).
			Return(&usecase.SubmitOrderResult{Order: &entity.Order{ID: "order-1"}, Redirect: "/orders/order-1"}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{}`, key))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := createTestCheckoutHandler(t, testPrincipal())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{"saveAddress":`, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("order failure hides internal details", func(t *testing.T) {
		e, checkoutUC := createTestCheckoutHandler(t, testPrincipal())

		checkoutUC.EXPECT().
			SubmitOrder(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrOrderNetwork).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, submitRequest(`{}`, ""))

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrOrderNetwork.HTTPCode(), rec.Code)
		assert.Equal(t, "Network error. Please check your connection and try again.", env.Error.Message)
	})
}

func TestCheckoutHandler_Quote(t *testing.T) {
	e, checkoutUC := createTestCheckoutHandler(t, nil)

	checkoutUC.EXPECT().
		Quote(mock.Anything, testClientID, (*entity.Principal)(nil)).
		RunAndReturn(func(_ context.Context, _ string, _ *entity.Principal) (*usecase.CheckoutQuote, error) {
			return &usecase.CheckoutQuote{
				Items:     []entity.LineItem{{ProductID: "p1", UnitPrice: 20, Quantity: 2}},
				ItemCount: 2,
				Totals:    &pricing.Totals{Subtotal: 40, Shipping: 9.99, Tax: 4, Total: 53.99},
			}, nil
		}).
		Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	quote := decodeData[usecase.CheckoutQuote](t, rec)
	assert.False(t, quote.Empty)
	require.NotNil(t, quote.Totals)
	assert.InDelta(t, 53.99, quote.Totals.Total, 1e-9)
}
