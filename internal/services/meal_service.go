package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingMealName = errors.New("meal name is required")
	ErrEmptyMeal       = errors.New("a meal needs at least one item")
)

type MealService struct {
	db      *gorm.DB
	streaks streakTracker
}

func NewMealService(db *gorm.DB, streaks *streak.Service) *MealService {
	return &MealService{db: db, streaks: streaks}
}

func (s *MealService) List(userID string) ([]models.SavedMeal, error) {
	var meals []models.SavedMeal
	err := s.db.Scopes(identity.ForUser(userID)).
		Preload("Items").
		Order("updated_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

func (s *MealService) Get(userID string, id uuid.UUID) (*models.SavedMeal, error) {
	var meal models.SavedMeal
	err := s.db.Scopes(identity.ForUser(userID)).Preload("Items").Where("id = ?", id).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return &meal, nil
}

func (s *MealService) Create(userID string, req dto.SavedMealRequest) (*models.SavedMeal, error) {
	if req.Name == "" {
		return nil, ErrMissingMealName
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyMeal
	}

	meal := models.SavedMeal{
		UserID: userID,
		Name:   req.Name,
		Items:  itemsFromRequest(req.Items),
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	return &meal, nil
}

// Update replaces the meal's name and full item list in one transaction.
func (s *MealService) Update(userID string, id uuid.UUID, req dto.SavedMealRequest) (*models.SavedMeal, error) {
	if req.Name == "" {
		return nil, ErrMissingMealName
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyMeal
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SavedMeal{}).
			Scopes(identity.ForUser(userID)).
			Where("id = ?", id).
			Update("name", req.Name)
		if result.Error != nil {
			return fmt.Errorf("failed to update meal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrMealNotFound
		}

		if err := tx.Where("saved_meal_id = ?", id).Delete(&models.SavedMealItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear meal items: %w", err)
		}
		items := itemsFromRequest(req.Items)
		for i := range items {
			items[i].SavedMealID = id
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to save meal items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, id)
}

func (s *MealService) Delete(userID string, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(identity.ForUser(userID)).Where("id = ?", id).Delete(&models.SavedMeal{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete meal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrMealNotFound
		}
		if err := tx.Where("saved_meal_id = ?", id).Delete(&models.SavedMealItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete meal items: %w", err)
		}
		return nil
	})
}

// Log turns every item of a saved meal into a food entry for the given day
// and counts one logging event toward the streak. Item values are per
// serving; the stored quantity scales them, with calories rounded to whole
// numbers and macros to 0.1 g. A streak failure surfaces as ErrStreakUpdate
// even though the entries are already persisted.
func (s *MealService) Log(userID string, id uuid.UUID, req dto.LogMealRequest) ([]models.FoodEntry, streak.Result, error) {
	if !validMealTypes[req.MealType] {
		return nil, streak.Result{}, ErrInvalidMealType
	}
	meal, err := s.Get(userID, id)
	if err != nil {
		return nil, streak.Result{}, err
	}
	date, err := entryDate(req.Date)
	if err != nil {
		return nil, streak.Result{}, err
	}

	entries := make([]models.FoodEntry, len(meal.Items))
	for i, item := range meal.Items {
		q := item.Quantity
		if q <= 0 {
			q = 1
		}
		entries[i] = models.FoodEntry{
			UserID:      userID,
			Date:        date,
			MealType:    req.MealType,
			FoodName:    item.FoodName,
			Calories:    math.Round(item.Calories * q),
			Protein:     math.Round(item.Protein*q*10) / 10,
			Carbs:       math.Round(item.Carbs*q*10) / 10,
			Fat:         math.Round(item.Fat*q*10) / 10,
			Fiber:       math.Round(item.Fiber*q*10) / 10,
			EntryMethod: "saved-meal",
		}
	}

	now := time.Now().UTC()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to log meal entries: %w", err)
		}
		return tx.Model(&models.SavedMeal{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"last_logged_at":        now,
				"last_logged_meal_type": req.MealType,
			}).Error
	})
	if err != nil {
		return nil, streak.Result{}, err
	}

	result, err := countLog(s.streaks, userID)
	if err != nil {
		return nil, streak.Result{}, err
	}
	return entries, result, nil
}

func itemsFromRequest(reqs []dto.SavedMealItemRequest) []models.SavedMealItem {
	items := make([]models.SavedMealItem, len(reqs))
	for i, r := range reqs {
		q := r.Quantity
		if q <= 0 {
			q = 1
		}
		items[i] = models.SavedMealItem{
			FoodName: r.FoodName,
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fat:      r.Fat,
			Fiber:    r.Fiber,
			Quantity: q,
		}
	}
	return items
}
