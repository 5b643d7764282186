// Package model holds the GORM table mappings of the persistence layer.
package model

import "time"

// UserLocationModel mirrors the 'user_locations' table. One row per user,
// replaced on every location update.
type UserLocationModel struct {
	UserID     string  `gorm:"type:varchar(255);primaryKey"`
	ExternalID string  `gorm:"type:varchar(255);not null"`
	Latitude   float64 `gorm:"not null;index:idx_user_locations_position"`
	Longitude  float64 `gorm:"not null;index:idx_user_locations_position"`
	DeviceType string  `gorm:"type:varchar(50)"`

	// The client supplies this timestamp and it must be stored as given,
	// so GORM's automatic tracking is turned off.
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
