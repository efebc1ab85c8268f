// Package mail delivers transactional email.
package mail

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendClient is the part of *sendgrid.Client the mailer needs.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendGridMailer struct {
	client sendClient
	from   *mail.Email
	logger *slog.Logger
}

// NewSendGridMailer sends through the SendGrid v3 API.
func NewSendGridMailer(cfg *config.SendGridConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.FromEmail == "" {
		return nil, errors.New("sendgrid from address is required")
	}

	return &sendGridMailer{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
		logger: logger,
	}, nil
}

func (m *sendGridMailer) Send(ctx context.Context, email *service.Email) error {
	if email.ToAddress == "" {
		return errors.New("recipient address is empty")
	}

	message := mail.NewSingleEmail(
		m.from,
		email.Subject,
		mail.NewEmail(email.ToName, email.ToAddress),
		email.PlainText,
		email.HTML,
	)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sendgrid send error")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	m.logger.Info("Email sent",
		slog.Int("status", response.StatusCode),
		slog.String("to", email.ToAddress),
		slog.String("subject", email.Subject),
	)

	return nil
}

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer writes emails to the log. It is used when no API key is configured.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, email *service.Email) error {
	m.logger.Info("[LogMailer] Email not sent",
		slog.String("to", email.ToAddress),
		slog.String("subject", email.Subject),
		slog.String("text", email.PlainText),
	)

	return nil
}

// NewMailer picks SendGrid when an API key is configured.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SendGrid == nil || cfg.SendGrid.APIKey == "" {
		logger.Info("SendGrid not configured, using log mailer")

		return NewLogMailer(logger), nil
	}

	return NewSendGridMailer(cfg.SendGrid, logger)
}
