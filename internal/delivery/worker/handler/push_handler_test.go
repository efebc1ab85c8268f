package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockOrderEventUsecase) {
	orderEvents := mockUsecase.NewMockOrderEventUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderEvents: orderEvents,
	})

	return h, orderEvents
}

func testOrderEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.OrderEventCreated,
		OrderID:    "order-1",
		UserID:     "user-1",
		UserEmail:  "ada@example.com",
		Status:     "processing",
		Total:      59.49,
		OccurredAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func pushRequest(t *testing.T, event *service.OrderEvent) *http.Request {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, event.OccurredAt)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("delivers the event with its request id", func(t *testing.T) {
		h, orderEvents := createTestPushHandler(t, &config.Config{})

		orderEvents.EXPECT().
			HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
				return e.OrderID == "order-1" && e.Type == service.OrderEventCreated
			})).
			RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
				assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
				assert.NotNil(t, deliverycontext.GetLogger(ctx))

				return nil
			}).
			Once()

		rec := servePush(h, pushRequest(t, testOrderEvent()))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name       string
		handleErr  error
		wantStatus int
	}{
		{name: "retryable failure asks for redelivery", handleErr: domainerrors.NewRetryableError(errors.New("sendgrid 502")), wantStatus: http.StatusServiceUnavailable},
		{name: "invalid event is rejected", handleErr: domainerrors.ErrValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "permanent failure is acknowledged", handleErr: errors.New("template broken"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderEvents := createTestPushHandler(t, &config.Config{})

			orderEvents.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(tt.handleErr).Once()

			rec := servePush(h, pushRequest(t, testOrderEvent()))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := createTestPushHandler(t, &config.Config{})

		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := servePush(h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	event := testOrderEvent()
	msg, err := pubsub.NewPushMessage(event, event.OccurredAt)
	require.NoError(t, err)

	msg.Message.Attributes[pubsub.AttributeRequestID] = "from-attributes"
	assert.Equal(t, "from-attributes", extractRequestID(context.Background(), msg, event))

	delete(msg.Message.Attributes, pubsub.AttributeRequestID)
	assert.Equal(t, "req-1", extractRequestID(context.Background(), msg, event))

	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")
	assert.Equal(t, "from-header", extractRequestID(ctx, msg, event))

	assert.Len(t, extractRequestID(context.Background(), msg, event), 36)
}

func TestPushHandler_VerifyToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)

		rec := servePush(h, pushRequest(t, testOrderEvent()))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token from another issuer", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		req := pushRequest(t, testOrderEvent())
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, servePush(h, req).Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, orderEvents := createTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		orderEvents.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		req := pushRequest(t, testOrderEvent())
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusOK, servePush(h, req).Code)
	})
}
