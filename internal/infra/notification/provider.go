package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/firebase"
)

// NewNotificationService returns the FCM sender when notifications are enabled.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if !cfg.Notifications.Enabled {
		logger.Info("Push notifications disabled, logging instead")

		return NewLogService(logger), nil
	}

	app, err := firebase.NewApp(cfg, logger)
	if err != nil {
		return nil, err
	}

	client, err := firebase.NewMessagingClient(ctx, app)
	if err != nil {
		return nil, err
	}

	return NewFirebaseService(client, logger), nil
}
