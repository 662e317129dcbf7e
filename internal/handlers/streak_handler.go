package handlers

import (
	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"github.com/gofiber/fiber/v2"
)

type StreakHandler struct {
	streaks *streak.Service
}

func NewStreakHandler(streaks *streak.Service) *StreakHandler {
	return &StreakHandler{streaks: streaks}
}

// GetStreak handles GET /streak - stored counters, or zeros when the user
// has never logged food.
func (h *StreakHandler) GetStreak(c *fiber.Ctx) error {
	userID := identity.GetUserID(c)

	stored, err := h.streaks.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch streak",
		})
	}
	if stored == nil {
		return c.JSON(dto.StreakResponse{})
	}
	return c.JSON(dto.StreakResponse{
		CurrentStreak:  stored.CurrentStreak,
		LongestStreak:  stored.LongestStreak,
		LastLoggedDate: stored.LastLoggedDate,
	})
}
