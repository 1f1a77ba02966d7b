package handlers_test

import (
	"testing"

	"erpoffice/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestListTasksScopedToUser(t *testing.T) {
	app := newTestApp()
	token := tokenFor(t, 3, models.RoleEmployee)

	mock := setupMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "completed"}).
			AddRow(1, 3, "Write report", false).
			AddRow(2, 3, "Review PRs", true))

	status, body := authedJSON(t, app, "GET", "/api/tasks/", token, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Write report")
	assert.Contains(t, body, "Review PRs")
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	app := newTestApp()
	token := tokenFor(t, 3, models.RoleEmployee)

	status, body := authedJSON(t, app, "POST", "/api/tasks/", token, `{"title":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "title")
}

func TestToggleTaskNotOwned(t *testing.T) {
	app := newTestApp()
	token := tokenFor(t, 3, models.RoleEmployee)

	mock := setupMockDB(t)
	mock.ExpectExec("UPDATE `tasks` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, body := authedJSON(t, app, "PUT", "/api/tasks/9", token, `{"completed":true}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Task not found or you do not have permission.")
}

func TestDeleteTaskNotOwned(t *testing.T) {
	app := newTestApp()
	token := tokenFor(t, 3, models.RoleEmployee)

	mock := setupMockDB(t)
	mock.ExpectExec("UPDATE `tasks` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, body := authedJSON(t, app, "DELETE", "/api/tasks/9", token, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "Task not found or you do not have permission.")
}

func TestTasksRequireAuth(t *testing.T) {
	app := newTestApp()

	status, _ := authedJSON(t, app, "GET", "/api/tasks/", "bogus", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
