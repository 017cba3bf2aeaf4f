package handlers

import (
	"errors"

	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/ellp-project/workshop-backend/services"
	"github.com/gofiber/fiber/v2"
)

type CertificateRequest struct {
	StudentID  uint `json:"student_id" validate:"required"`
	WorkshopID uint `json:"workshop_id" validate:"required"`
}

// Certificates are created once and read or deleted; there is no update
// route, which keeps the one-certificate-per-pair invariant out of
// clients' hands.

func ListCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	err := database.DB.
		Preload("Student").
		Preload("Workshop").
		Preload("Workshop.Theme").
		Order("issued_at DESC").
		Find(&certificates).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list certificates", "code": "INTERNAL"})
	}
	return c.JSON(certificates)
}

func GetCertificate(c *fiber.Ctx) error {
	var certificate models.Certificate
	err := database.DB.
		Preload("Student").
		Preload("Workshop").
		Preload("Workshop.Theme").
		First(&certificate, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found", "code": "NOT_FOUND"})
	}
	return c.JSON(certificate)
}

func CreateCertificate(c *fiber.Ctx) error {
	var req CertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student and workshop are required", "code": "VALIDATION_ERROR"})
	}

	certificate, err := services.IssueCertificate(database.DB, req.StudentID, req.WorkshopID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found", "code": "NOT_FOUND"})
		case errors.Is(err, services.ErrWorkshopNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workshop not found", "code": "NOT_FOUND"})
		case errors.Is(err, services.ErrNotEnrolled):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Student is not enrolled in this workshop", "code": "NOT_ENROLLED"})
		case errors.Is(err, services.ErrAlreadyIssued):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Certificate has already been issued for this student and workshop", "code": "ALREADY_ISSUED"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue certificate", "code": "INTERNAL"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(certificate)
}

func DeleteCertificate(c *fiber.Ctx) error {
	var certificate models.Certificate
	if err := database.DB.First(&certificate, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found", "code": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&certificate).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete certificate", "code": "INTERNAL"})
	}
	return c.JSON(fiber.Map{"success": true})
}
