package middleware

import (
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"erpoffice/config"
	"erpoffice/models"
	"erpoffice/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(), func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"user_id": claims.UserID, "role": claims.Role})
	})
	app.Get("/admin-only", RequireAuth(), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := models.User{EmployeeID: "E100", Name: "Test", Role: role}
	user.ID = 42
	token, _, err := utils.GenerateAccessToken(user)
	require.NoError(t, err)
	return token
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthBadScheme(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	app := newProtectedApp()

	// Correctly signed but past expiry: still a 401.
	cfg := config.LoadJWTConfig()
	now := time.Now()
	claims := &utils.JWTClaims{
		UserID: 42,
		Role:   models.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.SecretKey)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleEmployee))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"user_id":42`)
}

func TestRequireAdminForbiddenForEmployee(t *testing.T) {
	app := newProtectedApp()

	token := tokenFor(t, models.RoleEmployee)

	// Employee-scoped route works with the token...
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// ...the admin route rejects the same token with 403, not 401.
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	app := fiber.New()
	// Role gate registered without the identity gate: nothing may pass.
	app.Get("/broken", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/broken", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
