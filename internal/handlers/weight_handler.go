package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WeightHandler struct {
	weightService *services.WeightService
}

func NewWeightHandler(weightService *services.WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

// ListEntries handles GET /weight?date=YYYY-MM-DD or ?days=N (default 30).
func (h *WeightHandler) ListEntries(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	entries, err := h.weightService.List(userID, c.Query("date"), c.QueryInt("days", 30))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch weight entries",
		})
	}
	return c.JSON(entries)
}

// CreateEntry handles POST /weight.
func (h *WeightHandler) CreateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.CreateWeightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.weightService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeight) || errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create weight entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateEntry handles PUT /weight/:id.
func (h *WeightHandler) UpdateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	var req dto.UpdateWeightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.weightService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Weight entry not found",
			})
		case errors.Is(err, services.ErrInvalidWeight), errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update weight entry",
		})
	}
	return c.JSON(entry)
}

// DeleteEntry handles DELETE /weight/:id.
func (h *WeightHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	if err := h.weightService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Weight entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete weight entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Weight entry deleted"})
}
