package services

import (
	"testing"

	"github.com/ellp-project/workshop-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Theme{},
		&models.Instructor{},
		&models.Tutor{},
		&models.Student{},
		&models.Workshop{},
		&models.WorkshopInstructor{},
		&models.WorkshopTutor{},
		&models.WorkshopStudent{},
		&models.Certificate{},
	))
	return db
}

func seedInstructor(t *testing.T, db *gorm.DB, name string) models.Instructor {
	t.Helper()
	instructor := models.Instructor{Name: name, Role: "Professor", Email: name + "@example.com"}
	require.NoError(t, db.Create(&instructor).Error)
	return instructor
}

func seedStudent(t *testing.T, db *gorm.DB, name string) models.Student {
	t.Helper()
	student := models.Student{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func seedWorkshop(t *testing.T, db *gorm.DB, title string) models.Workshop {
	t.Helper()
	workshop := models.Workshop{Title: title}
	require.NoError(t, db.Create(&workshop).Error)
	return workshop
}
