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

var ErrInvalidOunces = errors.New("ounces must be positive")

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// Day returns a day's water entries and their total in ounces.
func (s *WaterService) Day(userID, date string) ([]models.WaterEntry, float64, error) {
	start, end, err := dayRange(date)
	if err != nil {
		return nil, 0, err
	}
	var entries []models.WaterEntry
	err = s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list water entries: %w", err)
	}

	total := 0.0
	for _, e := range entries {
		total += e.Ounces
	}
	return entries, total, nil
}

func (s *WaterService) Create(userID string, req dto.CreateWaterRequest) (*models.WaterEntry, error) {
	if req.Ounces <= 0 {
		return nil, ErrInvalidOunces
	}
	date, err := entryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := models.WaterEntry{UserID: userID, Date: date, Ounces: req.Ounces}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create water entry: %w", err)
	}
	return &entry, nil
}

func (s *WaterService) Delete(userID string, id uuid.UUID) error {
	result := s.db.Scopes(identity.ForUser(userID)).Where("id = ?", id).Delete(&models.WaterEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete water entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
