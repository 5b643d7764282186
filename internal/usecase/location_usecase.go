package usecase

import (
	"context"
	"time"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/service"
)

// UpdateLocationInput represents the input for reporting a user's position
type UpdateLocationInput struct {
	UserID     string    `json:"user_id"`
	ExternalID string    `json:"external_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DeviceType string    `json:"device_type"`
	Timestamp  time.Time `json:"timestamp"`
}

// NearbyQueryInput represents the input for a proximity query
type NearbyQueryInput struct {
	UserID       string  `json:"user_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// LocationUsecase defines the interface for location tracking use cases
type LocationUsecase interface {
	// UpdateLocation records a user's latest position. Stale updates
	// carrying an older timestamp than the stored position are dropped.
	UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*entity.UserLocation, error)

	// GetLocation returns the latest stored position for a user
	GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error)

	// NearbyUsers returns users within the query radius, nearest first,
	// excluding the querying user
	NearbyUsers(ctx context.Context, input *NearbyQueryInput) ([]service.NearbyUser, error)
}
