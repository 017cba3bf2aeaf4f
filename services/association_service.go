package services

import (
	"github.com/ellp-project/workshop-backend/models"
	"gorm.io/gorm"
)

// WorkshopRelations is the desired final participant id set per relation
// kind. A nil or empty list clears the relation.
type WorkshopRelations struct {
	InstructorIDs []uint
	TutorIDs      []uint
	StudentIDs    []uint
}

// ReplaceWorkshopRelations reconciles the three join tables with the
// submitted lists: rows not in the desired set are deleted, missing rows
// are inserted. Callers run it inside a transaction together with the
// workshop row write so a mid-sequence failure never leaves partial
// associations behind.
func ReplaceWorkshopRelations(tx *gorm.DB, workshopID uint, rel WorkshopRelations) error {
	if err := replaceInstructors(tx, workshopID, rel.InstructorIDs); err != nil {
		return err
	}
	if err := replaceTutors(tx, workshopID, rel.TutorIDs); err != nil {
		return err
	}
	return replaceStudents(tx, workshopID, rel.StudentIDs)
}

func replaceInstructors(tx *gorm.DB, workshopID uint, ids []uint) error {
	desired := dedupeIDs(ids)

	del := tx.Where("workshop_id = ?", workshopID)
	if len(desired) > 0 {
		del = del.Where("instructor_id NOT IN ?", desired)
	}
	if err := del.Delete(&models.WorkshopInstructor{}).Error; err != nil {
		return err
	}
	if len(desired) == 0 {
		return nil
	}

	var existing []uint
	if err := tx.Model(&models.WorkshopInstructor{}).
		Where("workshop_id = ?", workshopID).
		Pluck("instructor_id", &existing).Error; err != nil {
		return err
	}

	rows := []models.WorkshopInstructor{}
	for _, id := range missingIDs(desired, existing) {
		rows = append(rows, models.WorkshopInstructor{WorkshopID: workshopID, InstructorID: id})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceTutors(tx *gorm.DB, workshopID uint, ids []uint) error {
	desired := dedupeIDs(ids)

	del := tx.Where("workshop_id = ?", workshopID)
	if len(desired) > 0 {
		del = del.Where("tutor_id NOT IN ?", desired)
	}
	if err := del.Delete(&models.WorkshopTutor{}).Error; err != nil {
		return err
	}
	if len(desired) == 0 {
		return nil
	}

	var existing []uint
	if err := tx.Model(&models.WorkshopTutor{}).
		Where("workshop_id = ?", workshopID).
		Pluck("tutor_id", &existing).Error; err != nil {
		return err
	}

	rows := []models.WorkshopTutor{}
	for _, id := range missingIDs(desired, existing) {
		rows = append(rows, models.WorkshopTutor{WorkshopID: workshopID, TutorID: id})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceStudents(tx *gorm.DB, workshopID uint, ids []uint) error {
	desired := dedupeIDs(ids)

	del := tx.Where("workshop_id = ?", workshopID)
	if len(desired) > 0 {
		del = del.Where("student_id NOT IN ?", desired)
	}
	if err := del.Delete(&models.WorkshopStudent{}).Error; err != nil {
		return err
	}
	if len(desired) == 0 {
		return nil
	}

	var existing []uint
	if err := tx.Model(&models.WorkshopStudent{}).
		Where("workshop_id = ?", workshopID).
		Pluck("student_id", &existing).Error; err != nil {
		return err
	}

	rows := []models.WorkshopStudent{}
	for _, id := range missingIDs(desired, existing) {
		rows = append(rows, models.WorkshopStudent{WorkshopID: workshopID, StudentID: id})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// LoadWorkshopRelations materializes full participant rows onto the
// workshop for the read side. Slices are initialized so empty relations
// serialize as [] instead of null.
func LoadWorkshopRelations(db *gorm.DB, workshop *models.Workshop) error {
	workshop.Instructors = []models.Instructor{}
	workshop.Tutors = []models.Tutor{}
	workshop.Students = []models.Student{}

	if err := db.Model(&models.Instructor{}).
		Joins("JOIN workshop_instructors ON workshop_instructors.instructor_id = instructors.id").
		Where("workshop_instructors.workshop_id = ?", workshop.ID).
		Find(&workshop.Instructors).Error; err != nil {
		return err
	}

	if err := db.Model(&models.Tutor{}).
		Joins("JOIN workshop_tutors ON workshop_tutors.tutor_id = tutors.id").
		Where("workshop_tutors.workshop_id = ?", workshop.ID).
		Find(&workshop.Tutors).Error; err != nil {
		return err
	}

	return db.Model(&models.Student{}).
		Joins("JOIN workshop_students ON workshop_students.student_id = students.id").
		Where("workshop_students.workshop_id = ?", workshop.ID).
		Find(&workshop.Students).Error
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func missingIDs(desired, existing []uint) []uint {
	have := make(map[uint]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}
	out := make([]uint, 0, len(desired))
	for _, id := range desired {
		if !have[id] {
			out = append(out, id)
		}
	}
	return out
}
