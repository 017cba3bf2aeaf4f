package routes

import (
	"github.com/ellp-project/workshop-backend/handlers"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

// No PUT route: certificates are immutable once issued.
func CertificateRoutes(app *fiber.App) {
	api := app.Group("/api")

	certificates := api.Group("/certificates", middleware.Protected())
	certificates.Get("", handlers.ListCertificates)
	certificates.Get("/:id", handlers.GetCertificate)
	certificates.Post("", handlers.CreateCertificate)
	certificates.Delete("/:id", handlers.DeleteCertificate)
}
