package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, _ := createTestLogger(t)
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, seen, deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	logger, _ := createTestLogger(t)
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "short id is kept", header: "req-123", keep: true},
		{name: "oversized id is replaced", header: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.NotEmpty(t, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLog   bool
		wantLevel string
		wantCode  string
	}{
		{
			name:    "success is quiet outside debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: false,
		},
		{
			name:      "success is logged in debug",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog:   true,
			wantLevel: "level=INFO",
			wantCode:  "status=200",
		},
		{
			name:      "client error is a warning",
			handler:   func(echo.Context) error { return domainerrors.ErrCartEmpty },
			wantLog:   true,
			wantLevel: "level=WARN",
			wantCode:  "status=409",
		},
		{
			name:      "unknown error is an error",
			handler:   func(echo.Context) error { return assert.AnError },
			wantLog:   true,
			wantLevel: "level=ERROR",
			wantCode:  "status=500",
		},
		{
			name:      "echo http error keeps its code",
			handler:   func(echo.Context) error { return echo.ErrNotFound },
			wantLog:   true,
			wantLevel: "level=WARN",
			wantCode:  "status=404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := createTestLogger(t)
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(logger, cfg)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/orders", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			deliverycontext.SetClientID(c, "client-1")

			_ = mw.Handle(tt.handler)(c)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantCode)
			assert.Contains(t, out, "client_id=client-1")
		})
	}
}
