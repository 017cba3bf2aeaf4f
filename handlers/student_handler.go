package handlers

import (
	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/gofiber/fiber/v2"
)

type StudentRequest struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone"`
	Email string  `json:"email" validate:"required,email"`
}

type StudentUpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func ListStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.DB.Order("name ASC").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list students", "code": "INTERNAL"})
	}
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found", "code": "NOT_FOUND"})
	}
	return c.JSON(student)
}

func CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and email are required", "code": "VALIDATION_ERROR"})
	}

	student := models.Student{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student", "code": "INTERNAL"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found", "code": "NOT_FOUND"})
	}

	var req StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email must be valid", "code": "VALIDATION_ERROR"})
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Email != nil {
		student.Email = *req.Email
	}

	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student", "code": "INTERNAL"})
	}
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found", "code": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student", "code": "INTERNAL"})
	}
	return c.JSON(fiber.Map{"success": true})
}
