package impl

import (
	"context"
	"time"

	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/repository"
	"sosradar/internal/errors"
	"sosradar/internal/usecase"
)

type sessionTracker struct {
	sessionRepo repository.SessionRepository
}

// NewSessionTracker creates a new session tracker instance
func NewSessionTracker(sessionRepo repository.SessionRepository) usecase.SessionTracker {
	return &sessionTracker{
		sessionRepo: sessionRepo,
	}
}

// Track stores a freshly dispatched session
func (t *sessionTracker) Track(ctx context.Context, session *entity.AlertSession) error {
	if err := t.sessionRepo.Create(ctx, session); err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	return nil
}

// Cancel transitions the session to cancelled. The cancelled state is
// terminal; cancelling again reports changed=false and leaves the original
// CancelledAt untouched.
func (t *sessionTracker) Cancel(ctx context.Context, sessionID string, at time.Time) (*entity.AlertSession, bool, error) {
	changed := false
	session, err := t.sessionRepo.Mutate(ctx, sessionID, func(s *entity.AlertSession) error {
		if s.State == entity.SessionStateCancelled {
			return nil
		}
		s.State = entity.SessionStateCancelled
		cancelledAt := at
		s.CancelledAt = &cancelledAt
		changed = true

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, false, domainerrors.ErrSessionNotFound
		}

		return nil, false, errors.Wrap(err, "failed to cancel session")
	}

	return session, changed, nil
}

// RecordResponse attaches a responder action to the session. Responses are
// self-loops on the state machine: they never change the session state and
// are accepted on cancelled sessions too. The latest action per responder
// wins.
func (t *sessionTracker) RecordResponse(ctx context.Context, sessionID, responderID string, action entity.ResponseAction, at time.Time) (*entity.AlertSession, error) {
	session, err := t.sessionRepo.Mutate(ctx, sessionID, func(s *entity.AlertSession) error {
		response := entity.ResponderAction{
			SessionID:   sessionID,
			ResponderID: responderID,
			Action:      action,
			RecordedAt:  at,
		}

		for i, existing := range s.Responses {
			if existing.ResponderID == responderID {
				s.Responses[i] = response

				return nil
			}
		}
		s.Responses = append(s.Responses, response)

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to record response")
	}

	return session, nil
}

// Session returns the session with the given id
func (t *sessionTracker) Session(ctx context.Context, sessionID string) (*entity.AlertSession, error) {
	session, err := t.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

// ActiveSession returns the originator's currently active session
func (t *sessionTracker) ActiveSession(ctx context.Context, originatorID string) (*entity.AlertSession, error) {
	session, err := t.sessionRepo.FindActiveByOriginator(ctx, originatorID)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return nil, domainerrors.ErrNoActiveSession
		}

		return nil, errors.Wrap(err, "failed to find active session")
	}

	return session, nil
}

// History returns the originator's sessions newest first
func (t *sessionTracker) History(ctx context.Context, originatorID string, limit int) ([]*entity.AlertSession, error) {
	sessions, err := t.sessionRepo.FindByOriginator(ctx, originatorID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

// Counts reports aggregate session counts
func (t *sessionTracker) Counts(ctx context.Context) (repository.SessionCounts, error) {
	return t.sessionRepo.Counts(ctx)
}
