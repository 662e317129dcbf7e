package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidWeight = errors.New("weight must be positive")

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// List returns entries for a specific date, or the trailing N days (default
// 30) when no date is given, newest first.
func (s *WeightService) List(userID, date string, days int) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	query := s.db.Scopes(identity.ForUser(userID)).Order("date DESC")

	if date != "" {
		start, end, err := dayRange(date)
		if err != nil {
			return nil, err
		}
		query = query.Where("date >= ? AND date < ?", start, end)
	} else {
		if days <= 0 {
			days = 30
		}
		since := time.Now().UTC().AddDate(0, 0, -days)
		query = query.Where("date >= ?", since)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}
	return entries, nil
}

func (s *WeightService) Create(userID string, req dto.CreateWeightRequest) (*models.WeightEntry, error) {
	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	date, err := entryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := models.WeightEntry{UserID: userID, Date: date, Weight: req.Weight}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create weight entry: %w", err)
	}
	return &entry, nil
}

func (s *WeightService) Update(userID string, id uuid.UUID, req dto.UpdateWeightRequest) (*models.WeightEntry, error) {
	updates := map[string]interface{}{}
	if req.Date != nil {
		date, err := entryDate(*req.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}
	if req.Weight != nil {
		if *req.Weight <= 0 {
			return nil, ErrInvalidWeight
		}
		updates["weight"] = *req.Weight
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.WeightEntry{}).
			Scopes(identity.ForUser(userID)).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update weight entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrEntryNotFound
		}
	}

	var entry models.WeightEntry
	if err := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to reload weight entry: %w", err)
	}
	return &entry, nil
}

func (s *WeightService) Delete(userID string, id uuid.UUID) error {
	result := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).Delete(&models.WeightEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete weight entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
