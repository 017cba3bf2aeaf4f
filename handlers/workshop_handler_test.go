package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ellp-project/workshop-backend/database"
	"github.com/ellp-project/workshop-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInstructor(t *testing.T, app *fiber.App, cookie *http.Cookie, name string) uint {
	t.Helper()
	resp := request(t, app, fiber.MethodPost, "/api/instructors", fiber.Map{
		"name":  name,
		"role":  "Professor",
		"email": name + "@example.com",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var instructor models.Instructor
	decode(t, resp, &instructor)
	return instructor.ID
}

func createStudent(t *testing.T, app *fiber.App, cookie *http.Cookie, name string) uint {
	t.Helper()
	resp := request(t, app, fiber.MethodPost, "/api/students", fiber.Map{
		"name":  name,
		"email": name + "@example.com",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var student models.Student
	decode(t, resp, &student)
	return student.ID
}

func instructorIDs(workshop models.Workshop) []uint {
	ids := []uint{}
	for _, instructor := range workshop.Instructors {
		ids = append(ids, instructor.ID)
	}
	return ids
}

func TestWorkshopCreateWithParticipants(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	first := createInstructor(t, app, cookie, "joao")
	student := createStudent(t, app, cookie, "maria")

	var theme models.Theme
	decode(t, request(t, app, fiber.MethodPost, "/api/themes", fiber.Map{
		"title":          "Robotics",
		"duration_hours": 20,
	}, cookie), &theme)

	created := request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{
		"title":          "Robotics for Kids",
		"theme_id":       theme.ID,
		"instructor_ids": []uint{first},
		"student_ids":    []uint{student},
	}, cookie)
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var workshop models.Workshop
	decode(t, created, &workshop)
	assert.Positive(t, workshop.ID)
	require.Len(t, workshop.Instructors, 1)
	assert.Equal(t, "joao", workshop.Instructors[0].Name)
	require.Len(t, workshop.Students, 1)
	assert.Equal(t, "maria", workshop.Students[0].Name)
	assert.Empty(t, workshop.Tutors)
}

func TestWorkshopCreateRequiresTitle(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	resp := request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Updating [1,2] to [2,3] must read back exactly {2,3}.
func TestWorkshopAssociationReplace(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	a := createInstructor(t, app, cookie, "ana")
	b := createInstructor(t, app, cookie, "bia")
	c := createInstructor(t, app, cookie, "caio")

	var workshop models.Workshop
	decode(t, request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{
		"title":          "Game Design",
		"instructor_ids": []uint{a, b},
	}, cookie), &workshop)

	updated := request(t, app, fiber.MethodPut, fmt.Sprintf("/api/workshops/%d", workshop.ID), fiber.Map{
		"instructor_ids": []uint{b, c},
	}, cookie)
	require.Equal(t, http.StatusOK, updated.StatusCode)

	fetched := request(t, app, fiber.MethodGet, fmt.Sprintf("/api/workshops/%d", workshop.ID), nil, cookie)
	require.Equal(t, http.StatusOK, fetched.StatusCode)

	var got models.Workshop
	decode(t, fetched, &got)
	assert.ElementsMatch(t, []uint{b, c}, instructorIDs(got))
}

// An absent list is not distinguished from an empty one: it clears.
func TestWorkshopUpdateClearsAbsentLists(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	instructor := createInstructor(t, app, cookie, "davi")
	student := createStudent(t, app, cookie, "eva")

	var workshop models.Workshop
	decode(t, request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{
		"title":          "Chess Club",
		"instructor_ids": []uint{instructor},
		"student_ids":    []uint{student},
	}, cookie), &workshop)

	updated := request(t, app, fiber.MethodPut, fmt.Sprintf("/api/workshops/%d", workshop.ID), fiber.Map{
		"instructor_ids": []uint{instructor},
	}, cookie)
	require.Equal(t, http.StatusOK, updated.StatusCode)

	var got models.Workshop
	decode(t, updated, &got)
	require.Len(t, got.Instructors, 1)
	assert.Empty(t, got.Students)
}

func TestWorkshopDuplicateIDsDeduplicated(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	instructor := createInstructor(t, app, cookie, "fabio")

	var workshop models.Workshop
	decode(t, request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{
		"title":          "Astronomy Night",
		"instructor_ids": []uint{instructor, instructor, instructor},
	}, cookie), &workshop)

	var count int64
	require.NoError(t, database.DB.Model(&models.WorkshopInstructor{}).
		Where("workshop_id = ?", workshop.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWorkshopPartialScalarUpdate(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	var workshop models.Workshop
	decode(t, request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{
		"title":       "Poetry",
		"description": "weekly readings",
	}, cookie), &workshop)

	updated := request(t, app, fiber.MethodPut, fmt.Sprintf("/api/workshops/%d", workshop.ID), fiber.Map{
		"title": "Poetry and Prose",
	}, cookie)
	require.Equal(t, http.StatusOK, updated.StatusCode)

	var got models.Workshop
	decode(t, updated, &got)
	assert.Equal(t, "Poetry and Prose", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "weekly readings", *got.Description)
}

func TestWorkshopsListedNewestFirst(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	for _, title := range []string{"First", "Second"} {
		resp := request(t, app, fiber.MethodPost, "/api/workshops", fiber.Map{"title": title}, cookie)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	list := request(t, app, fiber.MethodGet, "/api/workshops", nil, cookie)
	require.Equal(t, http.StatusOK, list.StatusCode)

	var workshops []models.Workshop
	decode(t, list, &workshops)
	require.Len(t, workshops, 2)
	assert.True(t, !workshops[0].CreatedAt.Before(workshops[1].CreatedAt))
}

func TestWorkshopDeleteNotFound(t *testing.T) {
	app := setupTestApp(t)
	cookie := login(t, app)

	resp := request(t, app, fiber.MethodDelete, "/api/workshops/42", nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
