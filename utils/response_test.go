package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, APIResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out APIResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestSuccessResponse(t *testing.T) {
	code, out := doRequest(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.StatusCreated, "created", fiber.Map{"id": 1})
	})

	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, "created", out.Message)
	assert.NotNil(t, out.Data)
}

func TestSuccessResponseDefaultStatus(t *testing.T) {
	code, out := doRequest(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, 0, "ok", nil)
	})

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "success", out.Status)
}

func TestErrorResponse(t *testing.T) {
	code, out := doRequest(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusBadRequest, "bad input", map[string]string{"name": "name is required"})
	})

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "error", out.Status)
	assert.Equal(t, "bad input", out.Message)
	assert.NotNil(t, out.Errors)
}

func TestPaginatedResponse(t *testing.T) {
	meta := PaginationMeta{Page: 2, Limit: 10, Total: 37}
	code, out := doRequest(t, func(c *fiber.Ctx) error {
		return PaginatedResponse(c, fiber.StatusOK, "ok", []string{"a", "b"}, meta)
	})

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "success", out.Status)

	got, ok := out.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, got["page"])
	assert.EqualValues(t, 37, got["total"])
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.True(t, IsDuplicateError(errors.New("Error 1062 (23000): Duplicate entry 'E100' for key 'users.employee_id'")))
	assert.True(t, IsDuplicateError(errors.New("pq: duplicate key value violates unique constraint")))
}
