package llm

import (
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

// UserData is the goal context passed into digest prompts.
type UserData struct {
	CalorieGoal   int    `json:"calorie_goal"`
	ProteinTarget int    `json:"protein_target"`
	CarbTarget    int    `json:"carb_target"`
	FatTarget     int    `json:"fat_target"`
	ActivityLevel string `json:"activity_level"`
	CurrentStreak int    `json:"current_streak"`
}

// DayFood is one logged food in a day summary.
type DayFood struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	MealType string  `json:"meal_type"`
}

// DayExercise is one logged exercise in a day summary.
type DayExercise struct {
	Activity          string `json:"activity"`
	DurationMinutes   int    `json:"duration_minutes"`
	EstimatedCalories int    `json:"estimated_calories"`
}

// DayLogs is everything a user logged on one calendar day.
type DayLogs struct {
	Date        string        `json:"date"`
	Foods       []DayFood     `json:"foods"`
	Exercises   []DayExercise `json:"exercises"`
	Weight      *float64      `json:"weight,omitempty"`
	WaterOunces *float64      `json:"water_ounces,omitempty"`
}

// WeekLogs aggregates seven DayLogs for the weekly digest.
type WeekLogs struct {
	Days                 []DayLogs `json:"days"`
	AverageCalories      int       `json:"average_calories"`
	TotalExerciseMinutes int       `json:"total_exercise_minutes"`
	WeightChange         *float64  `json:"weight_change,omitempty"`
	AverageWaterOz       *int      `json:"average_water_oz,omitempty"`
}

// OnboardingData is the freshly chosen goal set used to personalize the
// welcome and empty-state messages.
type OnboardingData struct {
	CalorieGoal   int    `json:"calorie_goal"`
	ProteinTarget int    `json:"protein_target"`
	CarbTarget    int    `json:"carb_target"`
	FatTarget     int    `json:"fat_target"`
	WeightUnit    string `json:"weight_unit"`
	ActivityLevel string `json:"activity_level"`
}

// Provider is a pluggable LLM backend. All results are explicitly
// approximate; callers fall back to canned defaults or manual entry on
// failure.
type Provider interface {
	GenerateWeeklyDigest(userData UserData, weekLogs WeekLogs) (string, error)
	EstimateCaloriesBurned(activity string, durationMinutes int, activityLevel string) (int, error)
	EstimateNutrition(description string) (nutrition.Estimate, error)
	EstimateNutritionVariations(description string) ([]nutrition.FoodSearchResult, error)
	GenerateWelcomeMessage(data OnboardingData) (string, error)
	GenerateEmptyStateMessage(data OnboardingData) (string, error)
}
