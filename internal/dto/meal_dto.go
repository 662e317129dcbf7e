package dto

import "github.com/nutritrack/nutritrack-backend/internal/models"

type SavedMealItemRequest struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Quantity float64 `json:"quantity"`
}

type SavedMealRequest struct {
	Name  string                 `json:"name"`
	Items []SavedMealItemRequest `json:"items"`
}

type LogMealRequest struct {
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
}

// LogMealResponse returns the food entries created from the meal's items and
// the streak state after counting the log.
type LogMealResponse struct {
	Entries []models.FoodEntry `json:"entries"`
	Streak  StreakResponse     `json:"streak"`
}
