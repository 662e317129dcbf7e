package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WaterHandler struct {
	waterService *services.WaterService
}

func NewWaterHandler(waterService *services.WaterService) *WaterHandler {
	return &WaterHandler{waterService: waterService}
}

// ListEntries handles GET /water?date=YYYY-MM-DD - entries plus running total.
func (h *WaterHandler) ListEntries(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	entries, total, err := h.waterService.Day(userID, c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch water entries",
		})
	}
	return c.JSON(dto.WaterDayResponse{Entries: entries, TotalOunces: total})
}

// CreateEntry handles POST /water.
func (h *WaterHandler) CreateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.CreateWaterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.waterService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOunces) || errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create water entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// DeleteEntry handles DELETE /water/:id.
func (h *WaterHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	if err := h.waterService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Water entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete water entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Water entry deleted"})
}
