package service

import (
	"context"
)

// Alert event types carried on the queue.
const (
	EventAlertTriggered = "alert.triggered"
	EventAlertCancelled = "alert.cancelled"
	EventAlertResponse  = "alert.response"
)

// AlertEvent represents an alert lifecycle event to be processed by the
// push worker.
type AlertEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	EventType    string   `json:"event_type"`
	SessionID    string   `json:"session_id"`
	OriginatorID string   `json:"originator_id"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters int      `json:"radius_meters,omitempty"`
	Message      string   `json:"message,omitempty"`
	RecipientIDs []string `json:"recipient_ids,omitempty"` // Pre-filtered recipient user IDs
	ResponderID  string   `json:"responder_id,omitempty"`
	ActionID     string   `json:"action_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert lifecycle event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
