package handlers_test

import (
	"net/http"
	"testing"

	"github.com/ellp-project/workshop-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unlike instructors, tutors may be created without a role.
func TestTutorRoleIsOptional(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	created := request(t, app, fiber.MethodPost, "/api/tutors", fiber.Map{
		"name":  "Lia",
		"email": "lia@example.com",
	}, cookie)
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var tutor models.Tutor
	decode(t, created, &tutor)
	assert.Nil(t, tutor.Role)

	withRole := request(t, app, fiber.MethodPost, "/api/tutors", fiber.Map{
		"name":  "Leo",
		"email": "leo@example.com",
		"role":  "Monitor",
	}, cookie)
	require.Equal(t, http.StatusCreated, withRole.StatusCode)

	decode(t, withRole, &tutor)
	require.NotNil(t, tutor.Role)
	assert.Equal(t, "Monitor", *tutor.Role)
}

func TestInstructorRoleIsRequired(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	resp := request(t, app, fiber.MethodPost, "/api/instructors", fiber.Map{
		"name":  "Marta",
		"email": "marta@example.com",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
