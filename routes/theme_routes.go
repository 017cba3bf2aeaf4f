package routes

import (
	"github.com/ellp-project/workshop-backend/handlers"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ThemeRoutes(app *fiber.App) {
	api := app.Group("/api")

	themes := api.Group("/themes", middleware.Protected())
	themes.Get("", handlers.ListThemes)
	themes.Get("/:id", handlers.GetTheme)
	themes.Post("", handlers.CreateTheme)
	themes.Put("/:id", handlers.UpdateTheme)
	themes.Delete("/:id", handlers.DeleteTheme)
}
