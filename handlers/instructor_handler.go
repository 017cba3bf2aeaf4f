package handlers

import (
	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/gofiber/fiber/v2"
)

type InstructorRequest struct {
	Name  string  `json:"name" validate:"required"`
	Role  string  `json:"role" validate:"required"`
	Phone *string `json:"phone"`
	Email string  `json:"email" validate:"required,email"`
}

type InstructorUpdateRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func ListInstructors(c *fiber.Ctx) error {
	var instructors []models.Instructor
	if err := database.DB.Order("name ASC").Find(&instructors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list instructors", "code": "INTERNAL"})
	}
	return c.JSON(instructors)
}

func GetInstructor(c *fiber.Ctx) error {
	var instructor models.Instructor
	if err := database.DB.First(&instructor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found", "code": "NOT_FOUND"})
	}
	return c.JSON(instructor)
}

func CreateInstructor(c *fiber.Ctx) error {
	var req InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, role and email are required", "code": "VALIDATION_ERROR"})
	}

	instructor := models.Instructor{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := database.DB.Create(&instructor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create instructor", "code": "INTERNAL"})
	}

	return c.Status(fiber.StatusCreated).JSON(instructor)
}

func UpdateInstructor(c *fiber.Ctx) error {
	var instructor models.Instructor
	if err := database.DB.First(&instructor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found", "code": "NOT_FOUND"})
	}

	var req InstructorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email must be valid", "code": "VALIDATION_ERROR"})
	}

	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Role != nil {
		instructor.Role = *req.Role
	}
	if req.Phone != nil {
		instructor.Phone = req.Phone
	}
	if req.Email != nil {
		instructor.Email = *req.Email
	}

	if err := database.DB.Save(&instructor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update instructor", "code": "INTERNAL"})
	}
	return c.JSON(instructor)
}

func DeleteInstructor(c *fiber.Ctx) error {
	var instructor models.Instructor
	if err := database.DB.First(&instructor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found", "code": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&instructor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete instructor", "code": "INTERNAL"})
	}
	return c.JSON(fiber.Map{"success": true})
}
