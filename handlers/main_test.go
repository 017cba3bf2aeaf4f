package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/middleware"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/ellp-project/workshop-backend/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testAdminEmail    = "admin@ellp.test"
	testAdminPassword = "secret123"
)

// setupTestApp wires the full route table against a fresh in-memory
// database and seeds one operator account.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Theme{},
		&models.Instructor{},
		&models.Tutor{},
		&models.Student{},
		&models.Workshop{},
		&models.WorkshopInstructor{},
		&models.WorkshopTutor{},
		&models.WorkshopStudent{},
		&models.Certificate{},
	))
	database.DB = db

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name:     "Admin",
		Email:    testAdminEmail,
		Password: string(hash),
	}).Error)

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.ThemeRoutes(app)
	routes.InstructorRoutes(app)
	routes.TutorRoutes(app)
	routes.StudentRoutes(app)
	routes.WorkshopRoutes(app)
	routes.CertificateRoutes(app)
	return app
}

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp := request(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
