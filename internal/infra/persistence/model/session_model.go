package model

import "time"

// AlertSessionModel mirrors the 'alert_sessions' table. Recipients and
// Responses are stored as JSONB columns; the row is small and always read
// whole, so there is no benefit in normalizing them out.
type AlertSessionModel struct {
	SessionID      string  `gorm:"type:varchar(255);primaryKey"`
	OriginatorID   string  `gorm:"type:varchar(255);not null;index"`
	State          string  `gorm:"type:varchar(20);not null"`
	Latitude       float64 `gorm:"not null"`
	Longitude      float64 `gorm:"not null"`
	RadiusMeters   int     `gorm:"not null"`
	Message        string  `gorm:"type:text"`
	Recipients     []byte  `gorm:"type:jsonb"`
	Responses      []byte  `gorm:"type:jsonb"`
	RecipientCount int     `gorm:"not null"`
	CreatedAt      time.Time
	CancelledAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertSessionModel) TableName() string {
	return "alert_sessions"
}
