package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MealHandler struct {
	mealService *services.MealService
}

func NewMealHandler(mealService *services.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// List handles GET /meals.
func (h *MealHandler) List(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	meals, err := h.mealService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch meals",
		})
	}
	return c.JSON(meals)
}

// Get handles GET /meals/:id.
func (h *MealHandler) Get(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid meal ID",
		})
	}

	meal, err := h.mealService.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Meal not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch meal",
		})
	}
	return c.JSON(meal)
}

// Create handles POST /meals.
func (h *MealHandler) Create(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.SavedMealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	meal, err := h.mealService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrMissingMealName) || errors.Is(err, services.ErrEmptyMeal) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create meal",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// Update handles PUT /meals/:id - replaces name and items.
func (h *MealHandler) Update(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid meal ID",
		})
	}

	var req dto.SavedMealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	meal, err := h.mealService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMealNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Meal not found",
			})
		case errors.Is(err, services.ErrMissingMealName), errors.Is(err, services.ErrEmptyMeal):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update meal",
		})
	}
	return c.JSON(meal)
}

// Delete handles DELETE /meals/:id.
func (h *MealHandler) Delete(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid meal ID",
		})
	}

	if err := h.mealService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Meal not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete meal",
		})
	}
	return c.JSON(fiber.Map{"message": "Meal deleted"})
}

// Log handles POST /meals/:id/log - logs all items as food entries.
func (h *MealHandler) Log(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid meal ID",
		})
	}

	var req dto.LogMealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entries, result, err := h.mealService.Log(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMealNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Meal not found",
			})
		case errors.Is(err, services.ErrInvalidMealType), errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrStreakUpdate):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Meal was logged but the streak could not be updated",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log meal",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LogMealResponse{
		Entries: entries,
		Streak:  streakResponse(result),
	})
}
