package models

import "time"

type Instructor struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255;not null" json:"name"`
	Role  string  `gorm:"size:255;not null" json:"role"`
	Phone *string `gorm:"size:20" json:"phone"`
	Email string  `gorm:"size:255;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
