package entity

import (
	"fmt"
	"time"
)

// SessionState is the lifecycle state of an alert session.
// The only transition is Active -> Cancelled; Cancelled is terminal.
type SessionState string

const (
	SessionStateActive    SessionState = "active"
	SessionStateCancelled SessionState = "cancelled"
)

// ResponseAction is a recipient's reply to an alert.
type ResponseAction string

const (
	ResponseHelpComing ResponseAction = "help_coming"
	ResponseFalseAlarm ResponseAction = "false_alarm"
)

// ParseResponseAction maps a provider action id to a known response action.
// Unrecognized values are not an error; they are simply ignored by callers.
func ParseResponseAction(actionID string) (ResponseAction, bool) {
	switch ResponseAction(actionID) {
	case ResponseHelpComing:
		return ResponseHelpComing, true
	case ResponseFalseAlarm:
		return ResponseFalseAlarm, true
	default:
		return "", false
	}
}

// AlertRequest is a single SOS trigger. It exists only for the duration of
// a dispatch and is not persisted beyond the session it produces.
type AlertRequest struct {
	OriginatorID string    `json:"originator_id"`
	ExternalID   string    `json:"external_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResponderAction records one recipient's reply to an alert session.
// A responder may revise their reply; the last write per responder wins.
type ResponderAction struct {
	SessionID   string         `json:"session_id"`
	ResponderID string         `json:"responder_id"`
	Action      ResponseAction `json:"action"`
	RecordedAt  time.Time      `json:"recorded_at"`
}

// AlertSession is the lifecycle record of one originator's alert from
// trigger to cancellation.
type AlertSession struct {
	SessionID    string       `json:"session_id"`
	OriginatorID string       `json:"originator_id"`
	State        SessionState `json:"state"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	RadiusMeters int          `json:"radius_meters"`
	Message      string       `json:"message"`

	// Recipients holds the external ids targeted at dispatch time; they are
	// reused for the best-effort cancellation notice.
	Recipients []string `json:"recipients"`

	// RecipientCount is the provider-reported count at dispatch time and is
	// never retroactively recalculated.
	RecipientCount int `json:"recipient_count"`

	Responses   []ResponderAction `json:"responses,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
}

// NewSessionID derives a session identity from the originator and trigger time.
func NewSessionID(originatorID string, createdAt time.Time) string {
	return fmt.Sprintf("%s-%d", originatorID, createdAt.UnixNano())
}

// IsActive reports whether the session still represents a live alert.
func (s *AlertSession) IsActive() bool {
	return s.State == SessionStateActive
}
