package dto

import (
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

// CreateFoodEntryRequest carries absolute, already-scaled nutrition values.
// Clients that need scaling call the resolve endpoint first.
type CreateFoodEntryRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD, empty means today
	MealType    string  `json:"meal_type"`
	FoodName    string  `json:"food_name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	EntryMethod string  `json:"entry_method"`
	IsEstimate  bool    `json:"is_estimate"`
}

// UpdateFoodEntryRequest carries partial edits; nil fields are left unchanged.
type UpdateFoodEntryRequest struct {
	Date     *string  `json:"date"`
	MealType *string  `json:"meal_type"`
	FoodName *string  `json:"food_name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

// StreakResponse is the streak state returned alongside logging operations.
type StreakResponse struct {
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastLoggedDate *time.Time `json:"last_logged_date,omitempty"`
	Milestone      *int       `json:"milestone,omitempty"`
}

// FoodEntryWithStreak pairs a newly created entry with the streak state it
// produced.
type FoodEntryWithStreak struct {
	Entry  models.FoodEntry `json:"entry"`
	Streak StreakResponse   `json:"streak"`
}

// ResolveFoodRequest runs the scaling engine server-side: a base estimate
// plus the user's quantity/weight/unit/override adjustments.
type ResolveFoodRequest struct {
	Estimate     nutrition.Estimate `json:"estimate"`
	Mode         string             `json:"mode"` // "servings" or "weight", default servings
	Quantity     *float64           `json:"quantity"`
	WeightValue  *float64           `json:"weight_value"`
	WeightUnit   string             `json:"weight_unit"` // g, oz, lb
	NameOverride *string            `json:"name_override"`
	Overrides    map[string]float64 `json:"overrides"` // calories/protein/carbs/fat/fiber pins
}

// NLPEstimateRequest asks the model for a nutrition estimate from a free-text
// description.
type NLPEstimateRequest struct {
	Description string `json:"description"`
	Variations  bool   `json:"variations"`
}
