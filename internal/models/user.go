package models

import (
	"time"
)

// User is identified by an opaque, client-generated ID. There is no
// authentication layer; the ID in the X-User-ID header is trusted as-is.
type User struct {
	ID        string        `gorm:"size:64;primaryKey" json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Settings  *UserSettings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}

// UserSettings holds goals and preferences, one row per user.
type UserSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	UserID             string    `gorm:"size:64;not null;uniqueIndex" json:"user_id"`
	CalorieGoal        int       `gorm:"default:2000" json:"calorie_goal"`
	ProteinTarget      int       `gorm:"default:150" json:"protein_target"`
	CarbTarget         int       `gorm:"default:250" json:"carb_target"`
	FatTarget          int       `gorm:"default:65" json:"fat_target"`
	MacroUnit          string    `gorm:"size:20;default:'grams'" json:"macro_unit"`
	WeightUnit         string    `gorm:"size:10;default:'lbs'" json:"weight_unit"`
	ActivityLevel      string    `gorm:"size:20;default:'moderate'" json:"activity_level"`
	LLMProvider        string    `gorm:"size:20;default:'claude'" json:"llm_provider"`
	OnboardingComplete bool      `gorm:"default:false" json:"onboarding_complete"`
	WelcomeMessage     string    `gorm:"type:text" json:"welcome_message"`
	EmptyStateMessage  string    `gorm:"type:text" json:"empty_state_message"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
