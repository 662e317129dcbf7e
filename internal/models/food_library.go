package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomFood is a user-defined food with per-serving nutrition values.
type CustomFood struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      string         `gorm:"size:64;not null;index" json:"user_id"`
	FoodName    string         `gorm:"size:255;not null" json:"food_name"`
	ServingSize string         `gorm:"size:100;default:'1 serving'" json:"serving_size"`
	Calories    float64        `gorm:"not null" json:"calories"`
	Protein     float64        `gorm:"not null" json:"protein"`
	Carbs       float64        `gorm:"not null" json:"carbs"`
	Fat         float64        `gorm:"not null" json:"fat"`
	Fiber       float64        `gorm:"default:0" json:"fiber"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// SavedMeal groups food items so a whole meal can be logged in one call.
type SavedMeal struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             string          `gorm:"size:64;not null;index" json:"user_id"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	LastLoggedAt       *time.Time      `json:"last_logged_at"`
	LastLoggedMealType string          `gorm:"size:20" json:"last_logged_meal_type"`
	Items              []SavedMealItem `gorm:"foreignKey:SavedMealID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`
}

type SavedMealItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SavedMealID uuid.UUID `gorm:"type:uuid;not null;index" json:"saved_meal_id"`
	FoodName    string    `gorm:"size:255;not null" json:"food_name"`
	Calories    float64   `gorm:"not null" json:"calories"`
	Protein     float64   `gorm:"not null" json:"protein"`
	Carbs       float64   `gorm:"not null" json:"carbs"`
	Fat         float64   `gorm:"not null" json:"fat"`
	Fiber       float64   `gorm:"default:0" json:"fiber"`
	Quantity    float64   `gorm:"default:1" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// Digest is a persisted AI-generated natural-language summary.
type Digest struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
