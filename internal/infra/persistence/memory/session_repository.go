package memory

import (
	"context"
	"sort"
	"sync"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/repository"
)

// SessionRepository stores alert sessions keyed by session id.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.AlertSession
}

// NewSessionRepository creates an empty session store.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*entity.AlertSession),
	}
}

// Create stores a new session.
func (r *SessionRepository) Create(ctx context.Context, session *entity.AlertSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.SessionID] = cloneSession(session)
	return nil
}

// FindByID returns the session with the given id.
func (r *SessionRepository) FindByID(ctx context.Context, sessionID string) (*entity.AlertSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// FindActiveByOriginator returns the originator's active session, if any.
func (r *SessionRepository) FindActiveByOriginator(ctx context.Context, originatorID string) (*entity.AlertSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if session.OriginatorID == originatorID && session.State == entity.SessionStateActive {
			return cloneSession(session), nil
		}
	}
	return nil, repository.ErrNoActiveSession
}

// FindByOriginator returns the originator's sessions newest first, at most
// limit entries. A non-positive limit returns all of them.
func (r *SessionRepository) FindByOriginator(ctx context.Context, originatorID string, limit int) ([]*entity.AlertSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.AlertSession
	for _, session := range r.sessions {
		if session.OriginatorID == originatorID {
			out = append(out, cloneSession(session))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Mutate applies fn to the stored session under the store lock so concurrent
// state transitions cannot interleave. The mutated copy is returned; if fn
// returns an error the stored session is left untouched.
func (r *SessionRepository) Mutate(ctx context.Context, sessionID string, fn func(*entity.AlertSession) error) (*entity.AlertSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	working := cloneSession(session)
	if err := fn(working); err != nil {
		return nil, err
	}
	r.sessions[sessionID] = working
	return cloneSession(working), nil
}

// Counts reports aggregate session counts.
func (r *SessionRepository) Counts(ctx context.Context) (repository.SessionCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := repository.SessionCounts{Total: len(r.sessions)}
	for _, session := range r.sessions {
		if session.State == entity.SessionStateActive {
			counts.Active++
		}
	}
	return counts, nil
}

func cloneSession(session *entity.AlertSession) *entity.AlertSession {
	out := *session
	out.Recipients = append([]string(nil), session.Recipients...)
	out.Responses = append([]entity.ResponderAction(nil), session.Responses...)
	if session.CancelledAt != nil {
		cancelledAt := *session.CancelledAt
		out.CancelledAt = &cancelledAt
	}
	return &out
}
