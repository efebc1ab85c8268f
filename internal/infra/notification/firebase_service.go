package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// topicSender is the part of *messaging.Client the service needs.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicSender
	logger *slog.Logger
}

// NewFirebaseService sends notifications through Firebase Cloud Messaging.
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.NotificationService {
	return &firebaseService{client: client, logger: logger}
}

// SendToTopic sends one message addressed to every device subscribed to topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

type logService struct {
	logger *slog.Logger
}

// NewLogService records notifications in the log instead of sending them.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendToTopic(_ context.Context, topic, title, body string, data map[string]string) error {
	s.logger.Info("[LogNotification] Notification not sent",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
