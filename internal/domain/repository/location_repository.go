// Package repository defines the persistence interfaces of the domain.
package repository

import (
	"context"

	"sosradar/internal/domain/entity"
	"sosradar/internal/errors"
)

// ErrLocationNotFound is returned when no location is stored for a user.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository stores the latest known position per registered user.
// One record per user id, overwritten on each update; ordering between
// updates for the same user is decided by the caller-supplied timestamp,
// not arrival order.
type LocationRepository interface {
	// Upsert stores or replaces the user's location unconditionally. Each
	// user owns their own record, so the caller-supplied timestamp orders
	// writes and even an older timestamp is applied.
	Upsert(ctx context.Context, location *entity.UserLocation) error

	// FindByUserID retrieves a user's latest location.
	FindByUserID(ctx context.Context, userID string) (*entity.UserLocation, error)

	// Snapshot returns a point-in-time copy of all stored locations. The
	// copy is safe to scan while concurrent single-key updates proceed.
	Snapshot(ctx context.Context) ([]entity.UserLocation, error)

	// Count returns the number of registered users with a stored location.
	Count(ctx context.Context) (int, error)
}
