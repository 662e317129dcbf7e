package handlers

import (
	"errors"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser handles GET /user - returns the user with settings, 404 when the
// client has not registered the ID yet.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	user, err := h.userService.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch user",
		})
	}
	return c.JSON(user)
}

// CreateUser handles POST /user - idempotently registers the client's ID with
// default settings and a streak record.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	user, err := h.userService.Ensure(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create user",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /user - partial settings update.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	settings, err := h.userService.UpdateSettings(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update settings",
		})
	}
	return c.JSON(settings)
}

// Onboarding handles POST /onboarding - saves goals and generates the
// personalized welcome and empty-state copy.
func (h *UserHandler) Onboarding(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.CalorieGoal <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A positive calorie goal is required",
		})
	}

	settings, err := h.userService.CompleteOnboarding(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to complete onboarding",
		})
	}
	return c.JSON(settings)
}

// CalculateTDEE handles POST /tdee - goal calculator. Pure math, no
// persistence; clients save the result through the settings endpoint.
func (h *UserHandler) CalculateTDEE(c *fiber.Ctx) error {
	var input nutrition.TDEEInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if input.Weight <= 0 || input.Age <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Weight and age must be positive",
		})
	}
	return c.JSON(nutrition.CalculateTDEE(input))
}
