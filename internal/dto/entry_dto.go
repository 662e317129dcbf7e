package dto

import "github.com/nutritrack/nutritrack-backend/internal/models"

type CreateExerciseRequest struct {
	Date              string `json:"date"`
	Activity          string `json:"activity"`
	DurationMinutes   int    `json:"duration_minutes"`
	EstimatedCalories int    `json:"estimated_calories"`
	IsEstimate        bool   `json:"is_estimate"`
	Notes             string `json:"notes"`
}

type UpdateExerciseRequest struct {
	Date              *string `json:"date"`
	Activity          *string `json:"activity"`
	DurationMinutes   *int    `json:"duration_minutes"`
	EstimatedCalories *int    `json:"estimated_calories"`
	Notes             *string `json:"notes"`
}

type EstimateExerciseRequest struct {
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"duration_minutes"`
}

type EstimateExerciseResponse struct {
	EstimatedCalories int  `json:"estimated_calories"`
	IsEstimate        bool `json:"is_estimate"`
}

type CreateWeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type UpdateWeightRequest struct {
	Date   *string  `json:"date"`
	Weight *float64 `json:"weight"`
}

type CreateWaterRequest struct {
	Date   string  `json:"date"`
	Ounces float64 `json:"ounces"`
}

// WaterDayResponse returns a day's individual entries plus their running total.
type WaterDayResponse struct {
	Entries     []models.WaterEntry `json:"entries"`
	TotalOunces float64             `json:"total_ounces"`
}

type CustomFoodRequest struct {
	FoodName    string  `json:"food_name"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
}
