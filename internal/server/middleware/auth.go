package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DeckDev-RC/hubapps/internal/services"
)

// AuthRequired validates the Authorization: Bearer token before any storage
// is touched. Missing, malformed, expired, and badly signed tokens are all
// rejected with 401.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization required")
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := services.ParseToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals("claims", claims)
		return c.Next()
	}
}
