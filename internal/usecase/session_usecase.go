package usecase

import (
	"context"
	"time"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/repository"
)

// SessionTracker owns the alert session state machine. Sessions move from
// active to cancelled exactly once; responses attach to a session in either
// state without changing it.
type SessionTracker interface {
	// Track stores a freshly dispatched session
	Track(ctx context.Context, session *entity.AlertSession) error

	// Cancel transitions the session to cancelled. Cancelling an already
	// cancelled session is a no-op; changed reports whether this call
	// performed the transition.
	Cancel(ctx context.Context, sessionID string, at time.Time) (session *entity.AlertSession, changed bool, err error)

	// RecordResponse attaches a responder action to the session. A later
	// action from the same responder replaces the earlier one. Responses
	// are accepted on cancelled sessions as well.
	RecordResponse(ctx context.Context, sessionID, responderID string, action entity.ResponseAction, at time.Time) (*entity.AlertSession, error)

	// Session returns the session with the given id
	Session(ctx context.Context, sessionID string) (*entity.AlertSession, error)

	// ActiveSession returns the originator's currently active session
	ActiveSession(ctx context.Context, originatorID string) (*entity.AlertSession, error)

	// History returns the originator's sessions newest first, at most limit
	History(ctx context.Context, originatorID string, limit int) ([]*entity.AlertSession, error)

	// Counts reports aggregate session counts
	Counts(ctx context.Context) (repository.SessionCounts, error)
}
