package identity

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserID extracts the resolved user ID from Fiber context locals.
// Empty means the identity middleware did not run or the header was missing.
func GetUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("user_id").(string); ok {
		return userID
	}
	return ""
}
