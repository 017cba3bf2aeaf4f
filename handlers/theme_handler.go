package handlers

import (
	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/gofiber/fiber/v2"
)

type ThemeRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	DurationHours int     `json:"duration_hours" validate:"required,gt=0"`
}

type ThemeUpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	DurationHours *int    `json:"duration_hours" validate:"omitempty,gt=0"`
}

func ListThemes(c *fiber.Ctx) error {
	var themes []models.Theme
	if err := database.DB.Order("title ASC").Find(&themes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list themes", "code": "INTERNAL"})
	}
	return c.JSON(themes)
}

func GetTheme(c *fiber.Ctx) error {
	var theme models.Theme
	if err := database.DB.First(&theme, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Theme not found", "code": "NOT_FOUND"})
	}
	return c.JSON(theme)
}

func CreateTheme(c *fiber.Ctx) error {
	var req ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and duration in hours are required", "code": "VALIDATION_ERROR"})
	}

	theme := models.Theme{
		Title:         req.Title,
		Description:   req.Description,
		DurationHours: req.DurationHours,
	}
	if err := database.DB.Create(&theme).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create theme", "code": "INTERNAL"})
	}

	return c.Status(fiber.StatusCreated).JSON(theme)
}

func UpdateTheme(c *fiber.Ctx) error {
	var theme models.Theme
	if err := database.DB.First(&theme, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Theme not found", "code": "NOT_FOUND"})
	}

	var req ThemeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Duration in hours must be positive", "code": "VALIDATION_ERROR"})
	}

	if req.Title != nil {
		theme.Title = *req.Title
	}
	if req.Description != nil {
		theme.Description = req.Description
	}
	if req.DurationHours != nil {
		theme.DurationHours = *req.DurationHours
	}

	if err := database.DB.Save(&theme).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update theme", "code": "INTERNAL"})
	}
	return c.JSON(theme)
}

func DeleteTheme(c *fiber.Ctx) error {
	var theme models.Theme
	if err := database.DB.First(&theme, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Theme not found", "code": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&theme).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete theme", "code": "INTERNAL"})
	}
	return c.JSON(fiber.Map{"success": true})
}
