package jobs

import (
	"log"

	"github.com/ellp-project/workshop-backend/database"
)

// SweepOrphanedRecords deletes join rows and certificates whose workshop
// or participant has been removed. Parent deletes do not cascade at the
// endpoint level, so the sweep reconciles the tables out-of-band.
func SweepOrphanedRecords() {
	removed := int64(0)

	statements := []string{
		`DELETE FROM workshop_instructors WHERE workshop_id NOT IN (SELECT id FROM workshops) OR instructor_id NOT IN (SELECT id FROM instructors)`,
		`DELETE FROM workshop_tutors WHERE workshop_id NOT IN (SELECT id FROM workshops) OR tutor_id NOT IN (SELECT id FROM tutors)`,
		`DELETE FROM workshop_students WHERE workshop_id NOT IN (SELECT id FROM workshops) OR student_id NOT IN (SELECT id FROM students)`,
		`DELETE FROM certificates WHERE workshop_id NOT IN (SELECT id FROM workshops) OR student_id NOT IN (SELECT id FROM students)`,
	}

	for _, stmt := range statements {
		result := database.DB.Exec(stmt)
		if result.Error != nil {
			log.Printf("🔥 Orphan sweep failed: %v", result.Error)
			return
		}
		removed += result.RowsAffected
	}

	if removed > 0 {
		log.Printf("✅ Orphan sweep removed %d stale rows", removed)
	}
}
