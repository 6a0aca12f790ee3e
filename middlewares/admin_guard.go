package middleware

import (
	"rooftop-server/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminGuard protects mutating routes with the shared admin token.
func AdminGuard(adminToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !utils.IsAuthorized(c.Get("Authorization"), adminToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
