package pubsub

import "storefront/internal/domain/service"

// Message attributes carried next to the JSON payload. Subscriptions filter on event_type.
const (
	AttributeOrderID   = "order_id"
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)

func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		AttributeOrderID:   event.OrderID,
		AttributeEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[AttributeRequestID] = event.RequestID
	}

	return attributes
}
