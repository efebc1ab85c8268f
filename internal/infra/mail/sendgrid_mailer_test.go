package mail

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSendClient struct {
	status  int
	body    string
	err     error
	message *mail.SGMailV3
}

func (f *fakeSendClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.message = email
	if f.err != nil {
		return nil, f.err
	}

	return &rest.Response{StatusCode: f.status, Body: f.body}, nil
}

func createTestMailer(t *testing.T, client *fakeSendClient) *sendGridMailer {
	t.Helper()

	return &sendGridMailer{
		client: client,
		from:   mail.NewEmail("Storefront", "orders@shop.example.com"),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSendGridMailerSend(t *testing.T) {
	client := &fakeSendClient{status: http.StatusAccepted}
	mailer := createTestMailer(t, client)

	err := mailer.Send(t.Context(), &service.Email{
		ToAddress: "ada@example.com",
		ToName:    "Ada",
		Subject:   "Order confirmed",
		PlainText: "Thanks",
		HTML:      "<p>Thanks</p>",
	})
	require.NoError(t, err)

	require.NotNil(t, client.message)
	assert.Equal(t, "Order confirmed", client.message.Subject)
	assert.Equal(t, "orders@shop.example.com", client.message.From.Address)
	require.Len(t, client.message.Personalizations, 1)
	assert.Equal(t, "ada@example.com", client.message.Personalizations[0].To[0].Address)
}

func TestSendGridMailerErrors(t *testing.T) {
	t.Run("status >= 400", func(t *testing.T) {
		mailer := createTestMailer(t, &fakeSendClient{status: http.StatusUnauthorized, body: "bad key"})

		err := mailer.Send(t.Context(), &service.Email{ToAddress: "ada@example.com", Subject: "s"})
		assert.ErrorContains(t, err, "status=401")
	})

	t.Run("empty recipient", func(t *testing.T) {
		client := &fakeSendClient{status: http.StatusAccepted}
		mailer := createTestMailer(t, client)

		err := mailer.Send(t.Context(), &service.Email{Subject: "s"})
		assert.Error(t, err)
		assert.Nil(t, client.message)
	})
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := NewMailer(&config.Config{SendGrid: &config.SendGridConfig{}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)

	_, err = NewMailer(&config.Config{SendGrid: &config.SendGridConfig{APIKey: "k"}}, logger)
	assert.Error(t, err, "from address is required")

	m, err = NewMailer(&config.Config{SendGrid: &config.SendGridConfig{APIKey: "k", FromEmail: "a@b.c"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &sendGridMailer{}, m)
}
