package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/llm"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"gorm.io/gorm"
)

// Fallback copy used when the model is unavailable during onboarding.
const (
	fallbackWelcome    = "Welcome to NutriTrack! Your goals are set. Log your first meal to start your streak."
	fallbackEmptyState = "Nothing logged yet today. Add a meal, a workout, or a glass of water to get going."
)

type UserService struct {
	db      *gorm.DB
	streaks *streak.Service
	llm     llm.Provider
}

func NewUserService(db *gorm.DB, streaks *streak.Service, provider llm.Provider) *UserService {
	return &UserService{db: db, streaks: streaks, llm: provider}
}

// Ensure creates the user, their default settings, and their streak record
// if any are missing, and returns the user with settings loaded.
func (s *UserService) Ensure(userID string) (*models.User, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{ID: userID}
		if err := tx.FirstOrCreate(&user, models.User{ID: userID}).Error; err != nil {
			return fmt.Errorf("failed to ensure user: %w", err)
		}
		settings := models.UserSettings{UserID: userID}
		if err := tx.Where("user_id = ?", userID).FirstOrCreate(&settings).Error; err != nil {
			return fmt.Errorf("failed to ensure settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.streaks.Ensure(userID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Get returns the user with settings preloaded, or ErrUserNotFound.
func (s *UserService) Get(userID string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Settings").Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateSettings applies a partial settings update and returns the new state.
func (s *UserService) UpdateSettings(userID string, req dto.UpdateSettingsRequest) (*models.UserSettings, error) {
	updates := map[string]interface{}{}
	if req.CalorieGoal != nil {
		updates["calorie_goal"] = *req.CalorieGoal
	}
	if req.ProteinTarget != nil {
		updates["protein_target"] = *req.ProteinTarget
	}
	if req.CarbTarget != nil {
		updates["carb_target"] = *req.CarbTarget
	}
	if req.FatTarget != nil {
		updates["fat_target"] = *req.FatTarget
	}
	if req.MacroUnit != nil {
		updates["macro_unit"] = *req.MacroUnit
	}
	if req.WeightUnit != nil {
		updates["weight_unit"] = *req.WeightUnit
	}
	if req.ActivityLevel != nil {
		updates["activity_level"] = *req.ActivityLevel
	}
	if req.LLMProvider != nil {
		updates["llm_provider"] = *req.LLMProvider
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.UserSettings{}).Where("user_id = ?", userID).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update settings: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}
	return s.Settings(userID)
}

// Settings returns the stored settings row, or ErrUserNotFound.
func (s *UserService) Settings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// CompleteOnboarding persists the chosen goals, marks onboarding done, and
// generates personalized welcome and empty-state copy. Model failures fall
// back to canned text; onboarding never fails on the LLM.
func (s *UserService) CompleteOnboarding(userID string, req dto.OnboardingRequest) (*models.UserSettings, error) {
	if _, err := s.Ensure(userID); err != nil {
		return nil, err
	}

	data := llm.OnboardingData{
		CalorieGoal:   req.CalorieGoal,
		ProteinTarget: req.ProteinTarget,
		CarbTarget:    req.CarbTarget,
		FatTarget:     req.FatTarget,
		WeightUnit:    req.WeightUnit,
		ActivityLevel: req.ActivityLevel,
	}

	welcome, err := s.llm.GenerateWelcomeMessage(data)
	if err != nil {
		slog.Warn("welcome message generation failed, using fallback", "user_id", userID, "error", err)
		welcome = fallbackWelcome
	}
	emptyState, err := s.llm.GenerateEmptyStateMessage(data)
	if err != nil {
		slog.Warn("empty-state message generation failed, using fallback", "user_id", userID, "error", err)
		emptyState = fallbackEmptyState
	}

	updates := map[string]interface{}{
		"calorie_goal":        req.CalorieGoal,
		"protein_target":      req.ProteinTarget,
		"carb_target":         req.CarbTarget,
		"fat_target":          req.FatTarget,
		"onboarding_complete": true,
		"welcome_message":     welcome,
		"empty_state_message": emptyState,
	}
	if req.WeightUnit != "" {
		updates["weight_unit"] = req.WeightUnit
	}
	if req.ActivityLevel != "" {
		updates["activity_level"] = req.ActivityLevel
	}

	if err := s.db.Model(&models.UserSettings{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to save onboarding: %w", err)
	}
	return s.Settings(userID)
}
