package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodEntry is a logged food item with absolute (already scaled) nutrition values.
type FoodEntry struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      string         `gorm:"size:64;not null;index" json:"user_id"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	MealType    string         `gorm:"size:20;not null" json:"meal_type"`
	FoodName    string         `gorm:"size:255;not null" json:"food_name"`
	Calories    float64        `gorm:"not null" json:"calories"`
	Protein     float64        `gorm:"not null" json:"protein"`
	Carbs       float64        `gorm:"not null" json:"carbs"`
	Fat         float64        `gorm:"not null" json:"fat"`
	Fiber       float64        `gorm:"default:0" json:"fiber"`
	EntryMethod string         `gorm:"size:20" json:"entry_method"`
	IsEstimate  bool           `gorm:"default:false" json:"is_estimate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type ExerciseEntry struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            string         `gorm:"size:64;not null;index" json:"user_id"`
	Date              time.Time      `gorm:"not null;index" json:"date"`
	Activity          string         `gorm:"size:255;not null" json:"activity"`
	DurationMinutes   int            `gorm:"not null" json:"duration_minutes"`
	EstimatedCalories int            `gorm:"not null" json:"estimated_calories"`
	IsEstimate        bool           `gorm:"default:false" json:"is_estimate"`
	Notes             string         `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

type WeightEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string         `gorm:"size:64;not null;index" json:"user_id"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	Weight    float64        `gorm:"not null" json:"weight"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type WaterEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string         `gorm:"size:64;not null;index" json:"user_id"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	Ounces    float64        `gorm:"not null" json:"ounces"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
