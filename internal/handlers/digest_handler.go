package handlers

import (
	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DigestHandler struct {
	digestService *services.DigestService
}

func NewDigestHandler(digestService *services.DigestService) *DigestHandler {
	return &DigestHandler{digestService: digestService}
}

// History handles GET /digest - most recent digests.
func (h *DigestHandler) History(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	digests, err := h.digestService.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch digests",
		})
	}
	return c.JSON(digests)
}

// Generate handles POST /digest/generate - builds and stores a weekly digest
// from the trailing 7 days of logs.
func (h *DigestHandler) Generate(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	digest, err := h.digestService.Generate(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate digest",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(digest)
}
