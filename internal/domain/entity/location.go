// Package entity contains the core business objects of the project.
package entity

import "time"

// UserLocation is the latest known geographic position of a registered user.
// User identities are opaque strings owned by the client; the service only
// requires them to be non-empty. ExternalID is the identity known to the
// push provider (equal to UserID for current clients).
type UserLocation struct {
	UserID     string    `json:"user_id"`
	ExternalID string    `json:"external_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DeviceType string    `json:"device_type"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidCoordinates reports whether the pair is a usable geographic position.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
