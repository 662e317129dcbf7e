package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CustomFoodHandler struct {
	customFoodService *services.CustomFoodService
}

func NewCustomFoodHandler(customFoodService *services.CustomFoodService) *CustomFoodHandler {
	return &CustomFoodHandler{customFoodService: customFoodService}
}

// List handles GET /custom-foods.
func (h *CustomFoodHandler) List(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	foods, err := h.customFoodService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch custom foods",
		})
	}
	return c.JSON(foods)
}

// Create handles POST /custom-foods.
func (h *CustomFoodHandler) Create(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.CustomFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	food, err := h.customFoodService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFoodName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create custom food",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

// Update handles PUT /custom-foods/:id.
func (h *CustomFoodHandler) Update(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid custom food ID",
		})
	}

	var req dto.CustomFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	food, err := h.customFoodService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Custom food not found",
			})
		case errors.Is(err, services.ErrMissingFoodName):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update custom food",
		})
	}
	return c.JSON(food)
}

// Delete handles DELETE /custom-foods/:id.
func (h *CustomFoodHandler) Delete(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid custom food ID",
		})
	}

	if err := h.customFoodService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Custom food not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete custom food",
		})
	}
	return c.JSON(fiber.Map{"message": "Custom food deleted"})
}
