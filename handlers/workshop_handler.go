package handlers

import (
	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/ellp-project/workshop-backend/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkshopRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	ThemeID       *uint   `json:"theme_id"`
	InstructorIDs []uint  `json:"instructor_ids"`
	TutorIDs      []uint  `json:"tutor_ids"`
	StudentIDs    []uint  `json:"student_ids"`
}

// WorkshopUpdateRequest merges scalar fields but always replaces the
// three participant lists: an absent list clears the relation, the same
// as an empty one.
type WorkshopUpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ThemeID       *uint   `json:"theme_id"`
	InstructorIDs []uint  `json:"instructor_ids"`
	TutorIDs      []uint  `json:"tutor_ids"`
	StudentIDs    []uint  `json:"student_ids"`
}

func ListWorkshops(c *fiber.Ctx) error {
	var workshops []models.Workshop
	if err := database.DB.Preload("Theme").Order("created_at DESC").Find(&workshops).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list workshops", "code": "INTERNAL"})
	}

	for i := range workshops {
		if err := services.LoadWorkshopRelations(database.DB, &workshops[i]); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load workshop participants", "code": "INTERNAL"})
		}
	}
	return c.JSON(workshops)
}

func GetWorkshop(c *fiber.Ctx) error {
	var workshop models.Workshop
	if err := database.DB.Preload("Theme").First(&workshop, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workshop not found", "code": "NOT_FOUND"})
	}
	if err := services.LoadWorkshopRelations(database.DB, &workshop); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load workshop participants", "code": "INTERNAL"})
	}
	return c.JSON(workshop)
}

func CreateWorkshop(c *fiber.Ctx) error {
	var req WorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required", "code": "VALIDATION_ERROR"})
	}

	workshop := models.Workshop{
		Title:       req.Title,
		Description: req.Description,
		ThemeID:     req.ThemeID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workshop).Error; err != nil {
			return err
		}
		return services.ReplaceWorkshopRelations(tx, workshop.ID, services.WorkshopRelations{
			InstructorIDs: req.InstructorIDs,
			TutorIDs:      req.TutorIDs,
			StudentIDs:    req.StudentIDs,
		})
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workshop", "code": "INTERNAL"})
	}

	if err := services.LoadWorkshopRelations(database.DB, &workshop); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load workshop participants", "code": "INTERNAL"})
	}
	return c.Status(fiber.StatusCreated).JSON(workshop)
}

func UpdateWorkshop(c *fiber.Ctx) error {
	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workshop not found", "code": "NOT_FOUND"})
	}

	var req WorkshopUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}

	if req.Title != nil {
		workshop.Title = *req.Title
	}
	if req.Description != nil {
		workshop.Description = req.Description
	}
	if req.ThemeID != nil {
		workshop.ThemeID = req.ThemeID
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&workshop).Error; err != nil {
			return err
		}
		return services.ReplaceWorkshopRelations(tx, workshop.ID, services.WorkshopRelations{
			InstructorIDs: req.InstructorIDs,
			TutorIDs:      req.TutorIDs,
			StudentIDs:    req.StudentIDs,
		})
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update workshop", "code": "INTERNAL"})
	}

	if err := services.LoadWorkshopRelations(database.DB, &workshop); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load workshop participants", "code": "INTERNAL"})
	}
	return c.JSON(workshop)
}

func DeleteWorkshop(c *fiber.Ctx) error {
	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workshop not found", "code": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&workshop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete workshop", "code": "INTERNAL"})
	}
	return c.JSON(fiber.Map{"success": true})
}
