package service

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published after an order is written and consumed by the order worker.
type OrderEvent struct {
	RequestID      string         `json:"request_id,omitempty"` // For distributed tracing
	EventID        string         `json:"event_id"`
	Type           OrderEventType `json:"type"`
	OrderID        string         `json:"order_id"`
	UserID         string         `json:"user_id"`
	UserEmail      string         `json:"user_email"`
	UserName       string         `json:"user_name,omitempty"`
	Status         string         `json:"status"`
	PreviousStatus string         `json:"previous_status,omitempty"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	Total          float64        `json:"total"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
