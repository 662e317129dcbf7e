package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListEntries handles GET /exercise?date=YYYY-MM-DD.
func (h *ExerciseHandler) ListEntries(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	entries, err := h.exerciseService.ListByDate(userID, c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch exercise entries",
		})
	}
	return c.JSON(entries)
}

// CreateEntry handles POST /exercise.
func (h *ExerciseHandler) CreateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.exerciseService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrMissingActivity) || errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create exercise entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateEntry handles PUT /exercise/:id.
func (h *ExerciseHandler) UpdateEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	var req dto.UpdateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.exerciseService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Exercise entry not found",
			})
		case errors.Is(err, services.ErrMissingActivity), errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update exercise entry",
		})
	}
	return c.JSON(entry)
}

// DeleteEntry handles DELETE /exercise/:id.
func (h *ExerciseHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry ID",
		})
	}

	if err := h.exerciseService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Exercise entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete exercise entry",
		})
	}
	return c.JSON(fiber.Map{"message": "Exercise entry deleted"})
}

// Estimate handles POST /exercise/estimate - model-backed calorie burn with a
// per-minute fallback, always flagged as an estimate.
func (h *ExerciseHandler) Estimate(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.EstimateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	calories, err := h.exerciseService.EstimateCalories(userID, req.Activity, req.DurationMinutes)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(dto.EstimateExerciseResponse{
		EstimatedCalories: calories,
		IsEstimate:        true,
	})
}
