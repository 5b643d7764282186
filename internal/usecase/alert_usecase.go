package usecase

import (
	"context"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/service"
)

// TriggerAlertInput represents the input for raising an SOS alert
type TriggerAlertInput struct {
	UserID       string  `json:"user_id"`
	ExternalID   string  `json:"external_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	Message      string  `json:"message"`
}

// TriggerAlertOutput represents the result of a dispatched alert
type TriggerAlertOutput struct {
	SessionID      string `json:"session_id"`
	ProviderID     string `json:"provider_id"`
	RecipientCount int    `json:"recipient_count"`
	NearbyCount    int    `json:"nearby_count"`
}

// CancelAlertOutput represents the result of cancelling an alert
type CancelAlertOutput struct {
	SessionID        string `json:"session_id"`
	AlreadyCancelled bool   `json:"already_cancelled"`
}

// RecordResponseInput represents a responder's reaction to an alert. When
// SessionID is empty the session is resolved through OriginatorID, preferring
// the active session and falling back to the most recent one.
type RecordResponseInput struct {
	SessionID    string `json:"session_id"`
	OriginatorID string `json:"originator_id"`
	ResponderID  string `json:"responder_id"`
	ActionID     string `json:"action_id"`
}

// StatsOutput represents aggregate service counters
type StatsOutput struct {
	TotalUsers     int `json:"total_users"`
	TotalSessions  int `json:"total_sessions"`
	ActiveSessions int `json:"active_sessions"`
}

// AlertUsecase defines the interface for alert dispatch use cases
type AlertUsecase interface {
	// TriggerAlert runs the dispatch pipeline: resolve nearby users, send
	// the alert through the push provider, and open a session. No session
	// is created when the provider cannot be reached or rejects the send.
	TriggerAlert(ctx context.Context, input *TriggerAlertInput) (*TriggerAlertOutput, error)

	// CancelAlert cancels the user's active alert. The local transition
	// always happens; notifying recipients of the cancellation is
	// best-effort.
	CancelAlert(ctx context.Context, userID string) (*CancelAlertOutput, error)

	// RecordResponse records a responder's action against a session
	RecordResponse(ctx context.Context, input *RecordResponseInput) (*entity.AlertSession, error)

	// HandleClickEvent processes a provider click event. Events with an
	// unrecognized action id are ignored without error.
	HandleClickEvent(ctx context.Context, event *service.ClickEvent) error

	// GetHistory returns the user's past alert sessions, newest first
	GetHistory(ctx context.Context, userID string, limit int) ([]*entity.AlertSession, error)

	// Stats reports aggregate user and session counters
	Stats(ctx context.Context) (*StatsOutput, error)
}
