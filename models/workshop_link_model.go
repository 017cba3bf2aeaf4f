package models

import "time"

// Join rows for the three workshop many-to-many relations. The composite
// unique indexes keep a participant from appearing twice in the same
// workshop even under concurrent writes.

type WorkshopInstructor struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	WorkshopID   uint `gorm:"not null;uniqueIndex:idx_workshop_instructor" json:"workshop_id"`
	InstructorID uint `gorm:"not null;uniqueIndex:idx_workshop_instructor" json:"instructor_id"`

	CreatedAt time.Time `json:"created_at"`
}

type WorkshopTutor struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	WorkshopID uint `gorm:"not null;uniqueIndex:idx_workshop_tutor" json:"workshop_id"`
	TutorID    uint `gorm:"not null;uniqueIndex:idx_workshop_tutor" json:"tutor_id"`

	CreatedAt time.Time `json:"created_at"`
}

type WorkshopStudent struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	WorkshopID uint `gorm:"not null;uniqueIndex:idx_workshop_student" json:"workshop_id"`
	StudentID  uint `gorm:"not null;uniqueIndex:idx_workshop_student" json:"student_id"`

	CreatedAt time.Time `json:"created_at"`
}
