package pubsub

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.OrderEventCreated,
		OrderID:    "order-1",
		UserID:     "uid-1",
		UserEmail:  "ada@example.com",
		Status:     "processing",
		Total:      120.99,
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushMessageRoundTrip(t *testing.T) {
	event := newTestEvent()

	msg, err := NewPushMessage(event, time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.Equal(t, "2026-03-01T10:00:01Z", msg.Message.PublishTime)
	assert.Equal(t, map[string]string{
		AttributeOrderID:   "order-1",
		AttributeEventType: "order.created",
		AttributeRequestID: "req-1",
	}, msg.Message.Attributes)

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestDecodeEventFallsBackToAttributeRequestID(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	msg, err := NewPushMessage(event, time.Now())
	require.NoError(t, err)
	msg.Message.Attributes[AttributeRequestID] = "from-attr"

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "from-attr", decoded.RequestID)
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.DecodeEvent()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("posts push envelope", func(t *testing.T) {
		var received PushMessage
		var requestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID = r.Header.Get("X-Request-Id")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		publisher := NewLocalHTTPPublisher(server.URL, logger)
		require.NoError(t, publisher.PublishOrderEvent(t.Context(), newTestEvent()))

		assert.Equal(t, "req-1", requestID)
		assert.Equal(t, localSubscription, received.Subscription)
		decoded, err := received.DecodeEvent()
		require.NoError(t, err)
		assert.Equal(t, "order-1", decoded.OrderID)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		publisher := NewLocalHTTPPublisher(server.URL, logger)
		err := publisher.PublishOrderEvent(t.Context(), newTestEvent())
		assert.ErrorContains(t, err, "503")
	})
}
