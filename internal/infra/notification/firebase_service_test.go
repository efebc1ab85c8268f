package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.sent = append(r.sent, message)

	return "projects/p/messages/1", nil
}

func createTestFirebaseService(t *testing.T) (*firebaseService, *recordingSender) {
	t.Helper()

	sender := &recordingSender{}

	return &firebaseService{
		client: sender,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, sender
}

func TestSendToTopic(t *testing.T) {
	svc, sender := createTestFirebaseService(t)

	err := svc.SendToTopic(t.Context(), "admin-orders", "New order", "Ada placed $120.99", map[string]string{"orderId": "o-1"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "admin-orders", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "New order", msg.Notification.Title)
	assert.Equal(t, "o-1", msg.Data["orderId"])
}

func TestSendToTopicError(t *testing.T) {
	svc, sender := createTestFirebaseService(t)
	sender.err = errors.New("quota exceeded")

	err := svc.SendToTopic(t.Context(), "admin-orders", "t", "b", nil)
	assert.ErrorContains(t, err, "admin-orders")
	assert.ErrorContains(t, err, "quota exceeded")
}
