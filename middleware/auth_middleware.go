package middleware

import (
	config "github.com/ellp-project/workshop-backend/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

// SessionCookie is the name of the cookie carrying the signed session
// token.
const SessionCookie = "ellp_session"

// Protected gates a route group on a valid session cookie. A missing,
// expired or tampered token resolves to 401; the token payload is left
// in c.Locals("user") for handlers that need the operator identity.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		TokenLookup:  "cookie:" + SessionCookie,
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Not authenticated",
		"code":  "UNAUTHORIZED",
	})
}
