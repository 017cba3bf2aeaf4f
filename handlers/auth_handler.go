package handlers

import (
	"fmt"
	"time"

	config "github.com/ellp-project/workshop-backend/configs"
	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

const sessionLifetime = 24 * time.Hour

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser is the operator identity carried in the session token and
// echoed back by login and session checks.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login verifies credentials and sets the signed session cookie. The
// failure response is identical for an unknown email and a wrong
// password.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON", "code": "VALIDATION_ERROR"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required", "code": "VALIDATION_ERROR"})
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password", "code": "INVALID_CREDENTIALS"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password", "code": "INVALID_CREDENTIALS"})
	}

	expires := time.Now().Add(sessionLifetime)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"jti":     uuid.NewString(),
		"exp":     expires.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session", "code": "INTERNAL"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    t,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   config.Config("APP_ENV") == "production",
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"user":    SessionUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Logout expires the session cookie. Safe to call without a session.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   config.Config("APP_ENV") == "production",
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

// Session reports the current session state. Absent, corrupt or expired
// tokens all read as "not authenticated" rather than surfacing an error.
func Session(c *fiber.Ctx) error {
	tokenValue := c.Cookies(middleware.SessionCookie)
	if tokenValue == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	token, err := jwt.Parse(tokenValue, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	id, _ := claims["user_id"].(float64)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user":          SessionUser{ID: uint(id), Name: name, Email: email},
	})
}
