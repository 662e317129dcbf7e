package services

import (
	"errors"
	"fmt"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomFoodService struct {
	db *gorm.DB
}

func NewCustomFoodService(db *gorm.DB) *CustomFoodService {
	return &CustomFoodService{db: db}
}

func (s *CustomFoodService) List(userID string) ([]models.CustomFood, error) {
	var foods []models.CustomFood
	err := s.db.Scopes(identity.ForUser(userID)).Order("food_name ASC").Find(&foods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list custom foods: %w", err)
	}
	return foods, nil
}

func (s *CustomFoodService) Create(userID string, req dto.CustomFoodRequest) (*models.CustomFood, error) {
	if req.FoodName == "" {
		return nil, ErrMissingFoodName
	}
	food := models.CustomFood{
		UserID:      userID,
		FoodName:    req.FoodName,
		ServingSize: req.ServingSize,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
	}
	if food.ServingSize == "" {
		food.ServingSize = "1 serving"
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, fmt.Errorf("failed to create custom food: %w", err)
	}
	return &food, nil
}

func (s *CustomFoodService) Update(userID string, id uuid.UUID, req dto.CustomFoodRequest) (*models.CustomFood, error) {
	if req.FoodName == "" {
		return nil, ErrMissingFoodName
	}
	updates := map[string]interface{}{
		"food_name": req.FoodName,
		"calories":  req.Calories,
		"protein":   req.Protein,
		"carbs":     req.Carbs,
		"fat":       req.Fat,
		"fiber":     req.Fiber,
	}
	if req.ServingSize != "" {
		updates["serving_size"] = req.ServingSize
	}

	result := s.db.Model(&models.CustomFood{}).
		Scopes(identity.ForUser(userID)).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update custom food: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}

	var food models.CustomFood
	if err := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to reload custom food: %w", err)
	}
	return &food, nil
}

func (s *CustomFoodService) Delete(userID string, id uuid.UUID) error {
	result := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).Delete(&models.CustomFood{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete custom food: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
