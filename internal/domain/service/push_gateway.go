// Package service defines the boundary interfaces consumed by the use cases.
package service

import (
	"context"
	"time"

	"sosradar/internal/domain/entity"
)

// AlertPayload is the provider-agnostic request to broadcast one SOS alert.
// Recipients carries the external ids selected by the local geo query; the
// gateway forwards the geofence parameters (origin and radius) in the
// notification's structured data block so clients can render them.
type AlertPayload struct {
	SessionID    string
	OriginatorID string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Message      string
	Recipients   []string
	CreatedAt    time.Time
}

// PushReceipt is the provider's acknowledgment of a dispatched alert.
// RecipientCount is the provider-reported delivery target count and defaults
// to zero when the provider omits it.
type PushReceipt struct {
	ProviderID     string
	RecipientCount int
}

// ClickEvent is a provider-reported interaction with a delivered alert.
// ActionID values outside the known response actions are ignored.
type ClickEvent struct {
	AlertType   string  `json:"alert_type"`
	SenderID    string  `json:"sender_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ActionID    string  `json:"action_id"`
	ResponderID string  `json:"responder_id"`
}

// PushGateway translates internal alert requests into the wire format of the
// external push provider. It owns no business state; it only performs
// request/response translation and timeout enforcement. Transport failures
// surface as ErrProviderUnavailable and provider rejections as
// ProviderRejectedError so callers can tell retryable from terminal.
type PushGateway interface {
	// SendAlert broadcasts an SOS alert to the payload's recipients.
	SendAlert(ctx context.Context, payload *AlertPayload) (*PushReceipt, error)

	// SendCancellation notifies the session's recipients that the alert was
	// withdrawn by its originator.
	SendCancellation(ctx context.Context, session *entity.AlertSession) error
}
