package models

import "time"

// Certificate records a completed workshop for a student. The composite
// unique index enforces at most one certificate per (student, workshop)
// pair at the storage level, closing the race between concurrent
// issuance requests.
type Certificate struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	StudentID  uint   `gorm:"not null;uniqueIndex:idx_certificate_pair" json:"student_id"`
	WorkshopID uint   `gorm:"not null;uniqueIndex:idx_certificate_pair" json:"workshop_id"`
	Code       string `gorm:"size:64;not null;unique" json:"code"`

	Student  Student  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`

	IssuedAt  time.Time `gorm:"not null" json:"issued_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
