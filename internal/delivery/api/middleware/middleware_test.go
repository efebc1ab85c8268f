package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Error)

	return body.Error
}

func principalHandler(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return c.String(http.StatusOK, "anonymous")
	}

	return c.String(http.StatusOK, principal.UID)
}

func TestAuthMiddleware(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{Sessions: sessions})

	e := newTestEcho()
	e.GET("/private", principalHandler, m.Authenticate)
	e.GET("/optional", principalHandler, m.OptionalAuth)
	e.GET("/admin", principalHandler, m.Authenticate, m.RequireAdmin)

	customer := &entity.Principal{UID: "user-1"}
	admin := &entity.Principal{UID: "admin-1", Admin: true}
	sessions.EXPECT().Authenticate(mock.Anything, "customer-token").Return(customer, nil).Maybe()
	sessions.EXPECT().Authenticate(mock.Anything, "admin-token").Return(admin, nil).Maybe()
	sessions.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken).Maybe()

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{name: "missing header", path: "/private", wantStatus: http.StatusUnauthorized, wantCode: "AUTHENTICATION_REQUIRED"},
		{name: "not a bearer token", path: "/private", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "AUTHENTICATION_REQUIRED"},
		{name: "invalid token", path: "/private", header: "Bearer expired", wantStatus: http.StatusUnauthorized, wantCode: domainerrors.ErrInvalidToken.ErrorCode()},
		{name: "valid token", path: "/private", header: "Bearer customer-token", wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "optional without token", path: "/optional", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "optional ignores a bad token", path: "/optional", header: "Bearer expired", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "optional with token", path: "/optional", header: "Bearer customer-token", wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "admin route as customer", path: "/admin", header: "Bearer customer-token", wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "admin route as admin", path: "/admin", header: "Bearer admin-token", wantStatus: http.StatusOK, wantBody: "admin-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestClientID(t *testing.T) {
	e := newTestEcho()
	e.GET("/cart", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetClientID(c))
	}, ClientID)

	t.Run("keeps the supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(deliverycontext.HeaderXClientID, "client-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-1", rec.Body.String())
		assert.Equal(t, "client-1", rec.Header().Get(deliverycontext.HeaderXClientID))
	})

	t.Run("accepts the query parameter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart?clientId=client-2", nil))

		assert.Equal(t, "client-2", rec.Body.String())
	})

	t.Run("issues an id when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

		issued := rec.Header().Get(deliverycontext.HeaderXClientID)
		assert.Len(t, issued, 36)
		assert.Equal(t, issued, rec.Body.String())
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2}})
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, limiter.Limit)

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"), "budgets are per IP")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"), "tokens refill over time")
}

func TestErrorMiddleware(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	e := newTestEcho()
	e.GET("/redirect", func(echo.Context) error {
		return errors.WithStack(domainerrors.NewRedirectError(domainerrors.ErrAuthenticationRequired, "/login?redirect=%2Fcheckout"))
	})
	e.GET("/validation", func(c echo.Context) error {
		return c.Validate(&payload{Email: "nope"})
	})
	e.GET("/boom", func(echo.Context) error {
		return errors.New("database password is hunter2")
	})

	t.Run("redirect errors keep their target", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/redirect", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login?redirect=%2Fcheckout", decodeError(t, rec).Redirect)
	})

	t.Run("validation errors list the fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validation", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", info.Code)
		assert.Equal(t, map[string]any{"email": "email"}, info.Details)
	})

	t.Run("unknown errors stay opaque", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
	})
}
