package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
)

// RoleRequired gates a route to the given roles. Missing identity is a 401;
// a present identity with the wrong role is a 403.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized",
			})
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Message: "Insufficient permissions",
		})
	}
}
