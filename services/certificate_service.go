package services

import (
	"errors"
	"time"

	"github.com/ellp-project/workshop-backend/models"
	"github.com/ellp-project/workshop-backend/utils"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrNotEnrolled      = errors.New("student is not enrolled in this workshop")
	ErrAlreadyIssued    = errors.New("certificate has already been issued for this student and workshop")
)

// IssueCertificate creates a certificate for a student who completed a
// workshop. Enrollment must precede certification, and at most one
// certificate exists per (student, workshop) pair; the unique index on
// the pair backs the check against concurrent issuance.
func IssueCertificate(db *gorm.DB, studentID, workshopID uint) (*models.Certificate, error) {
	var student models.Student
	if err := db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var workshop models.Workshop
	if err := db.First(&workshop, workshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}

	var enrolled int64
	if err := db.Model(&models.WorkshopStudent{}).
		Where("student_id = ? AND workshop_id = ?", studentID, workshopID).
		Count(&enrolled).Error; err != nil {
		return nil, err
	}
	if enrolled == 0 {
		return nil, ErrNotEnrolled
	}

	var issued int64
	if err := db.Model(&models.Certificate{}).
		Where("student_id = ? AND workshop_id = ?", studentID, workshopID).
		Count(&issued).Error; err != nil {
		return nil, err
	}
	if issued > 0 {
		return nil, ErrAlreadyIssued
	}

	certificate := models.Certificate{
		StudentID:  studentID,
		WorkshopID: workshopID,
		Code:       utils.GenerateVerificationCode(),
		IssuedAt:   time.Now(),
	}
	if err := db.Create(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyIssued
		}
		return nil, err
	}

	return &certificate, nil
}
