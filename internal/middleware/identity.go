package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nutritrack/nutritrack-backend/internal/dto"
)

// Paths that don't require a user identity.
var identitySkipPaths = []string{
	"/api/health",
}

const maxUserIDLen = 64

// Identity resolves the opaque client-generated user ID from the X-User-ID
// header and stores it in context locals. There is no authentication; the ID
// is trusted as-is and every query is scoped by it.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, skip := range identitySkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		userID := strings.TrimSpace(c.Get("X-User-ID"))
		if userID == "" {
			// Query param fallback for clients that can't set headers
			userID = strings.TrimSpace(c.Query("user_id"))
		}
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "X-User-ID header is required",
			})
		}
		if len(userID) > maxUserIDLen {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "X-User-ID is too long",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
