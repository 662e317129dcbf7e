package services

import (
	"errors"
	"fmt"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/foodapi"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/llm"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidMealType = errors.New("meal type must be breakfast, lunch, dinner, or snack")
	ErrMissingFoodName = errors.New("food name is required")
	ErrStreakUpdate    = errors.New("entry saved but streak update failed")
)

// streakTracker is the slice of streak.Service the logging paths depend on.
type streakTracker interface {
	Ensure(userID string) error
	Update(userID string) (streak.Result, error)
}

// countLog ensures the streak record exists and applies one logging event.
// Failures surface to the caller; the logged entry is already persisted at
// this point, so the API layer reports them as request-level errors rather
// than rolling anything back.
func countLog(t streakTracker, userID string) (streak.Result, error) {
	if err := t.Ensure(userID); err != nil {
		return streak.Result{}, fmt.Errorf("%w: %v", ErrStreakUpdate, err)
	}
	result, err := t.Update(userID)
	if err != nil {
		return streak.Result{}, fmt.Errorf("%w: %v", ErrStreakUpdate, err)
	}
	return result, nil
}

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type FoodService struct {
	db      *gorm.DB
	streaks streakTracker
	usda    *foodapi.USDAClient
	off     *foodapi.OFFClient
	llm     llm.Provider
}

func NewFoodService(db *gorm.DB, streaks *streak.Service, usda *foodapi.USDAClient, off *foodapi.OFFClient, provider llm.Provider) *FoodService {
	return &FoodService{db: db, streaks: streaks, usda: usda, off: off, llm: provider}
}

// ListByDate returns a day's food entries ordered by creation time.
func (s *FoodService) ListByDate(userID, date string) ([]models.FoodEntry, error) {
	start, end, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	var entries []models.FoodEntry
	err = s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	return entries, nil
}

// Create persists a food entry and counts it toward the user's streak. The
// streak record is ensured first because logging food is what brings it into
// existence. A streak failure surfaces as ErrStreakUpdate even though the
// entry is already persisted.
func (s *FoodService) Create(userID string, req dto.CreateFoodEntryRequest) (*models.FoodEntry, streak.Result, error) {
	if req.FoodName == "" {
		return nil, streak.Result{}, ErrMissingFoodName
	}
	if !validMealTypes[req.MealType] {
		return nil, streak.Result{}, ErrInvalidMealType
	}
	date, err := entryDate(req.Date)
	if err != nil {
		return nil, streak.Result{}, err
	}

	entry := models.FoodEntry{
		UserID:      userID,
		Date:        date,
		MealType:    req.MealType,
		FoodName:    req.FoodName,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		EntryMethod: req.EntryMethod,
		IsEstimate:  req.IsEstimate,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, streak.Result{}, fmt.Errorf("failed to create food entry: %w", err)
	}

	result, err := countLog(s.streaks, userID)
	if err != nil {
		return nil, streak.Result{}, err
	}
	return &entry, result, nil
}

// Update edits an entry's fields; nil request fields are left as stored.
func (s *FoodService) Update(userID string, id uuid.UUID, req dto.UpdateFoodEntryRequest) (*models.FoodEntry, error) {
	updates := map[string]interface{}{}
	if req.Date != nil {
		date, err := entryDate(*req.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}
	if req.MealType != nil {
		if !validMealTypes[*req.MealType] {
			return nil, ErrInvalidMealType
		}
		updates["meal_type"] = *req.MealType
	}
	if req.FoodName != nil {
		if *req.FoodName == "" {
			return nil, ErrMissingFoodName
		}
		updates["food_name"] = *req.FoodName
	}
	if req.Calories != nil {
		updates["calories"] = *req.Calories
	}
	if req.Protein != nil {
		updates["protein"] = *req.Protein
	}
	if req.Carbs != nil {
		updates["carbs"] = *req.Carbs
	}
	if req.Fat != nil {
		updates["fat"] = *req.Fat
	}
	if req.Fiber != nil {
		updates["fiber"] = *req.Fiber
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.FoodEntry{}).
			Scopes(identity.ForUser(userID)).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update food entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrEntryNotFound
		}
	}

	var entry models.FoodEntry
	if err := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to reload food entry: %w", err)
	}
	return &entry, nil
}

// Delete soft-deletes an entry owned by the user.
func (s *FoodService) Delete(userID string, id uuid.UUID) error {
	result := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).Delete(&models.FoodEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete food entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Resolve runs the scaling engine over one estimate. Adjustments are applied
// in a fixed order (mode, unit, weight, quantity, then pins) so overrides
// survive exactly the transitions they should.
func (s *FoodService) Resolve(req dto.ResolveFoodRequest) (nutrition.Resolved, error) {
	conf := nutrition.NewConfirmation(req.Estimate)

	if req.Mode == string(nutrition.ModeWeight) {
		conf.SetMode(nutrition.ModeWeight)
	}
	if req.WeightUnit != "" {
		if !conf.SetUnit(nutrition.WeightUnit(req.WeightUnit)) {
			return nutrition.Resolved{}, fmt.Errorf("unknown weight unit %q", req.WeightUnit)
		}
	}
	if req.WeightValue != nil {
		conf.SetWeight(*req.WeightValue)
	}
	if req.Quantity != nil {
		conf.SetQuantity(*req.Quantity)
	}
	if req.NameOverride != nil {
		conf.OverrideName(*req.NameOverride)
	}
	for field, value := range req.Overrides {
		conf.OverrideField(field, value)
	}
	return conf.Resolve(), nil
}

// Search queries USDA FoodData Central.
func (s *FoodService) Search(query string) ([]nutrition.FoodSearchResult, error) {
	return s.usda.Search(query)
}

// Barcode looks a product up on Open Food Facts; nil means unknown barcode.
func (s *FoodService) Barcode(code string) (*nutrition.Estimate, error) {
	return s.off.Lookup(code)
}

// Estimate asks the model for a single per-100g estimate of a description.
func (s *FoodService) Estimate(description string) (nutrition.Estimate, error) {
	return s.llm.EstimateNutrition(description)
}

// EstimateVariations asks the model for several plausible preparations.
func (s *FoodService) EstimateVariations(description string) ([]nutrition.FoodSearchResult, error) {
	return s.llm.EstimateNutritionVariations(description)
}
