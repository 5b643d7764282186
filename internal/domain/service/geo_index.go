package service

import (
	"context"

	"sosradar/internal/domain/entity"
)

// NearbyUser pairs a stored location with its distance to the query point.
type NearbyUser struct {
	Location       entity.UserLocation
	DistanceMeters float64
}

// GeoIndex answers proximity queries over the set of known user locations.
// Distances are great-circle. The boundary is inclusive: a user exactly at
// radiusMeters is a match. The originator never appears in their own results.
type GeoIndex interface {
	// NearbyUsers returns users within radiusMeters of the given point,
	// excluding excludeUserID, ordered nearest first.
	NearbyUsers(ctx context.Context, lat, lon, radiusMeters float64, excludeUserID string) ([]NearbyUser, error)
}
