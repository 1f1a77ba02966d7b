package middleware

import (
	"erpoffice/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole allows the request through when the authenticated role is one
// of allowedRoles. It must be registered after RequireAuth; a missing claims
// entry means the identity check never ran.
func RequireRole(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		for _, role := range allowedRoles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}
}

func RequireAdmin() fiber.Handler { return RequireRole(models.RoleAdmin) }
