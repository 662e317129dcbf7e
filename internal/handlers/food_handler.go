package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/llm"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FoodHandler struct {
	foodService *services.FoodService
}

func NewFoodHandler(foodService *services.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

func streakResponse(r streak.Result) dto.StreakResponse {
	return dto.StreakResponse{
		CurrentStreak: r.CurrentStreak,
		LongestStreak: r.LongestStreak,
		Milestone:     r.Milestone,
	}
}

// ListEntries handles GET /food?date=YYYY-MM-DD - a day's entries, today by
// default.
func (h *FoodHandler) ListEntries(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	entries, err := h.foodService.ListByDate(userID, c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch food entries",
		})
	}
	return c.JSON(entries)
}

// CreateEntry handles POST /food - logs a food entry and returns it together
// with the updated streak state.
func (h *FoodHandler) CreateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.CreateFoodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, result, err := h.foodService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFoodName) ||
			errors.Is(err, services.ErrInvalidMealType) ||
			errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrStreakUpdate) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Entry was saved but the streak could not be updated",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create food entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FoodEntryWithStreak{
		Entry:  *entry,
		Streak: streakResponse(result),
	})
}

// UpdateEntry handles PUT /food/:id.
func (h *FoodHandler) UpdateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	var req dto.UpdateFoodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.foodService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Food entry not found",
			})
		case errors.Is(err, services.ErrMissingFoodName),
			errors.Is(err, services.ErrInvalidMealType),
			errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update food entry",
		})
	}
	return c.JSON(entry)
}

// DeleteEntry handles DELETE /food/:id.
func (h *FoodHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	if err := h.foodService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Food entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete food entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Food entry deleted"})
}

// Resolve handles POST /food/resolve - scales an estimate to absolute values.
func (h *FoodHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resolved, err := h.foodService.Resolve(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(resolved)
}

// Search handles GET /food/search?q= - USDA lookup.
func (h *FoodHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Query parameter q is required",
		})
	}

	results, err := h.foodService.Search(query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Food search is unavailable right now",
		})
	}
	return c.JSON(fiber.Map{"results": results})
}

// Barcode handles GET /food/barcode?code= - Open Food Facts lookup.
func (h *FoodHandler) Barcode(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Query parameter code is required",
		})
	}

	est, err := h.foodService.Barcode(code)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Barcode lookup is unavailable right now",
		})
	}
	if est == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Product not found. Try entering it manually.",
		})
	}
	return c.JSON(est)
}

// Estimate handles POST /food/nlp - model-backed nutrition estimation from a
// free-text description.
func (h *FoodHandler) Estimate(c *fiber.Ctx) error {
	var req dto.NLPEstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Description is required",
		})
	}

	if req.Variations {
		results, err := h.foodService.EstimateVariations(req.Description)
		if err != nil {
			return estimateError(c, err)
		}
		return c.JSON(fiber.Map{"results": results})
	}

	est, err := h.foodService.Estimate(req.Description)
	if err != nil {
		return estimateError(c, err)
	}
	return c.JSON(est)
}

func estimateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, llm.ErrUnparseable) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: "Couldn't estimate that. Try a more specific description or enter it manually.",
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Error: true, Message: "Nutrition estimation is unavailable right now",
	})
}
