package repository

import (
	"context"

	"sosradar/internal/domain/entity"
	"sosradar/internal/errors"
)

var (
	// ErrSessionNotFound is returned when no session exists with the given id.
	ErrSessionNotFound = errors.New("alert session not found")

	// ErrNoActiveSession is returned when an originator has no Active session.
	ErrNoActiveSession = errors.New("no active alert session")
)

// SessionCounts aggregates session totals for reporting.
type SessionCounts struct {
	Total  int
	Active int
}

// SessionRepository stores alert sessions and their responder actions.
// Updates to a single session must be atomic; implementations serialize
// them via Mutate so read-modify-write cycles cannot interleave.
type SessionRepository interface {
	// Create persists a new session. The session id must be unique.
	Create(ctx context.Context, session *entity.AlertSession) error

	// FindByID retrieves a session by id.
	FindByID(ctx context.Context, sessionID string) (*entity.AlertSession, error)

	// FindActiveByOriginator retrieves the originator's Active session,
	// or ErrNoActiveSession when none exists.
	FindActiveByOriginator(ctx context.Context, originatorID string) (*entity.AlertSession, error)

	// FindByOriginator retrieves the originator's sessions, newest first,
	// capped at limit (0 means no cap).
	FindByOriginator(ctx context.Context, originatorID string, limit int) ([]*entity.AlertSession, error)

	// Mutate applies fn to the stored session under the store's lock and
	// returns a copy of the updated session. fn returning an error aborts
	// the update.
	Mutate(ctx context.Context, sessionID string, fn func(*entity.AlertSession) error) (*entity.AlertSession, error)

	// Counts returns aggregate session totals.
	Counts(ctx context.Context) (SessionCounts, error)
}
