package routes

import (
	"github.com/ellp-project/workshop-backend/handlers"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TutorRoutes(app *fiber.App) {
	api := app.Group("/api")

	tutors := api.Group("/tutors", middleware.Protected())
	tutors.Get("", handlers.ListTutors)
	tutors.Get("/:id", handlers.GetTutor)
	tutors.Post("", handlers.CreateTutor)
	tutors.Put("/:id", handlers.UpdateTutor)
	tutors.Delete("/:id", handlers.DeleteTutor)
}
