// Package memory provides in-process repository implementations backed by
// mutex-guarded maps. They back the develop environment, where no database
// is configured, and serve as doubles in tests.
package memory

import (
	"context"
	"sync"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/repository"
)

// LocationRepository stores the latest known position per user.
type LocationRepository struct {
	mu        sync.RWMutex
	locations map[string]entity.UserLocation
}

// NewLocationRepository creates an empty location store.
func NewLocationRepository() *LocationRepository {
	return &LocationRepository{
		locations: make(map[string]entity.UserLocation),
	}
}

// Upsert records the user's position. Every write is applied as-is; each
// user is the single source of truth for their own record, so even a
// timestamp older than the stored one replaces it.
func (r *LocationRepository) Upsert(ctx context.Context, loc *entity.UserLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locations[loc.UserID] = *loc
	return nil
}

// FindByUserID returns the stored position for userID.
func (r *LocationRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locations[userID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	out := loc
	return &out, nil
}

// Snapshot returns a point-in-time copy of all stored positions.
func (r *LocationRepository) Snapshot(ctx context.Context) ([]entity.UserLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.UserLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		out = append(out, loc)
	}
	return out, nil
}

// Count returns the number of users with a known position.
func (r *LocationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.locations), nil
}
