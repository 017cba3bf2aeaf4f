package models

import "time"

// Workshop is a scheduled offering, optionally linked to a Theme. The
// participant slices are populated from the join tables on read; they
// are not managed through GORM associations.
type Workshop struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	ThemeID     *uint   `json:"theme_id"`

	Theme *Theme `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`

	Instructors []Instructor `gorm:"-" json:"instructors"`
	Tutors      []Tutor      `gorm:"-" json:"tutors"`
	Students    []Student    `gorm:"-" json:"students"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
