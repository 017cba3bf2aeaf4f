package models

import "time"

// Theme is a catalog entry describing a workshop subject and its
// duration in hours.
type Theme struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	Description   *string `gorm:"type:text" json:"description"`
	DurationHours int     `gorm:"not null" json:"duration_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
