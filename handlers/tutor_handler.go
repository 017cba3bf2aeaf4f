package handlers

import (
	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/gofiber/fiber/v2"
)

// Role is optional for tutors, see models.Tutor.
type TutorRequest struct {
	Name  string  `json:"name" validate:"required"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email string  `json:"email" validate:"required,email"`
}

type TutorUpdateRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func ListTutors(c *fiber.Ctx) error {
	var tutors []models.Tutor
	if err := database.DB.Order("name ASC").Find(&tutors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list tutors", "code": "INTERNAL"})
	}
	return c.JSON(tutors)
}

func GetTutor(c *fiber.Ctx) error {
	var tutor models.Tutor
	if err := database.DB.First(&tutor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found", "code": "NOT_FOUND"})
	}
	return c.JSON(tutor)
}

func CreateTutor(c *fiber.Ctx) error {
	var req TutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and email are required", "code": "VALIDATION_ERROR"})
	}

	tutor := models.Tutor{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := database.DB.Create(&tutor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tutor", "code": "INTERNAL"})
	}

	return c.Status(fiber.StatusCreated).JSON(tutor)
}

func UpdateTutor(c *fiber.Ctx) error {
	var tutor models.Tutor
	if err := database.DB.First(&tutor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found", "code": "NOT_FOUND"})
	}

	var req TutorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email must be valid", "code": "VALIDATION_ERROR"})
	}

	if req.Name != nil {
		tutor.Name = *req.Name
	}
	if req.Role != nil {
		tutor.Role = req.Role
	}
	if req.Phone != nil {
		tutor.Phone = req.Phone
	}
	if req.Email != nil {
		tutor.Email = *req.Email
	}

	if err := database.DB.Save(&tutor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tutor", "code": "INTERNAL"})
	}
	return c.JSON(tutor)
}

func DeleteTutor(c *fiber.Ctx) error {
	var tutor models.Tutor
	if err := database.DB.First(&tutor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found", "code": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&tutor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tutor", "code": "INTERNAL"})
	}
	return c.JSON(fiber.Map{"success": true})
}
