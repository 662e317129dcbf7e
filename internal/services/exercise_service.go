package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/llm"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMissingActivity = errors.New("activity is required")

// Burned calories when the model can't be reached: a flat 5 kcal/minute.
const fallbackCaloriesPerMinute = 5

type ExerciseService struct {
	db  *gorm.DB
	llm llm.Provider
}

func NewExerciseService(db *gorm.DB, provider llm.Provider) *ExerciseService {
	return &ExerciseService{db: db, llm: provider}
}

func (s *ExerciseService) ListByDate(userID, date string) ([]models.ExerciseEntry, error) {
	start, end, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	var entries []models.ExerciseEntry
	err = s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise entries: %w", err)
	}
	return entries, nil
}

func (s *ExerciseService) Create(userID string, req dto.CreateExerciseRequest) (*models.ExerciseEntry, error) {
	if req.Activity == "" {
		return nil, ErrMissingActivity
	}
	date, err := entryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := models.ExerciseEntry{
		UserID:            userID,
		Date:              date,
		Activity:          req.Activity,
		DurationMinutes:   req.DurationMinutes,
		EstimatedCalories: req.EstimatedCalories,
		IsEstimate:        req.IsEstimate,
		Notes:             req.Notes,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create exercise entry: %w", err)
	}
	return &entry, nil
}

func (s *ExerciseService) Update(userID string, id uuid.UUID, req dto.UpdateExerciseRequest) (*models.ExerciseEntry, error) {
	updates := map[string]interface{}{}
	if req.Date != nil {
		date, err := entryDate(*req.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}
	if req.Activity != nil {
		if *req.Activity == "" {
			return nil, ErrMissingActivity
		}
		updates["activity"] = *req.Activity
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.EstimatedCalories != nil {
		updates["estimated_calories"] = *req.EstimatedCalories
		// A hand-corrected value is no longer an estimate.
		updates["is_estimate"] = false
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.ExerciseEntry{}).
			Scopes(identity.ForUser(userID)).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update exercise entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrEntryNotFound
		}
	}

	var entry models.ExerciseEntry
	if err := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to reload exercise entry: %w", err)
	}
	return &entry, nil
}

func (s *ExerciseService) Delete(userID string, id uuid.UUID) error {
	result := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).Delete(&models.ExerciseEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete exercise entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// EstimateCalories asks the model for a burn estimate using the user's
// stored activity level for context. Model failures fall back to a flat
// per-minute rate rather than erroring; the result is always an estimate.
func (s *ExerciseService) EstimateCalories(userID, activity string, durationMinutes int) (int, error) {
	if activity == "" {
		return 0, ErrMissingActivity
	}
	if durationMinutes <= 0 {
		return 0, errors.New("duration must be positive")
	}

	activityLevel := "moderate"
	var settings models.UserSettings
	if err := s.db.Where("user_id = ?", userID).First(&settings).Error; err == nil {
		activityLevel = settings.ActivityLevel
	}

	calories, err := s.llm.EstimateCaloriesBurned(activity, durationMinutes, activityLevel)
	if err != nil {
		slog.Warn("calorie estimate failed, using per-minute fallback",
			"user_id", userID, "activity", activity, "error", err)
		return durationMinutes * fallbackCaloriesPerMinute, nil
	}
	return calories, nil
}
