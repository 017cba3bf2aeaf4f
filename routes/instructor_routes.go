package routes

import (
	"github.com/ellp-project/workshop-backend/handlers"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func InstructorRoutes(app *fiber.App) {
	api := app.Group("/api")

	instructors := api.Group("/instructors", middleware.Protected())
	instructors.Get("", handlers.ListInstructors)
	instructors.Get("/:id", handlers.GetInstructor)
	instructors.Post("", handlers.CreateInstructor)
	instructors.Put("/:id", handlers.UpdateInstructor)
	instructors.Delete("/:id", handlers.DeleteInstructor)
}
