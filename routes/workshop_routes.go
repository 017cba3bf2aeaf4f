package routes

import (
	"github.com/ellp-project/workshop-backend/handlers"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func WorkshopRoutes(app *fiber.App) {
	api := app.Group("/api")

	workshops := api.Group("/workshops", middleware.Protected())
	workshops.Get("", handlers.ListWorkshops)
	workshops.Get("/:id", handlers.GetWorkshop)
	workshops.Post("", handlers.CreateWorkshop)
	workshops.Put("/:id", handlers.UpdateWorkshop)
	workshops.Delete("/:id", handlers.DeleteWorkshop)
}
