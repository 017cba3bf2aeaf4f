package routes

import (
	"github.com/ellp-project/workshop-backend/handlers"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api")

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.ListStudents)
	students.Get("/:id", handlers.GetStudent)
	students.Post("", handlers.CreateStudent)
	students.Put("/:id", handlers.UpdateStudent)
	students.Delete("/:id", handlers.DeleteStudent)
}
