package nutrition

// FoodSearchResult is one normalized hit from USDA, Open Food Facts, or the
// AI variations endpoint. Values follow the same per-100g convention as
// Estimate when NutrientsPer100g is set.
type FoodSearchResult struct {
	FoodName             string  `json:"food_name"`
	Calories             float64 `json:"calories"`
	Protein              float64 `json:"protein"`
	Carbs                float64 `json:"carbs"`
	Fat                  float64 `json:"fat"`
	Fiber                float64 `json:"fiber"`
	Source               string  `json:"source"` // "usda", "openfoodfacts", "ai"
	FdcID                int     `json:"fdc_id,omitempty"`
	ServingSizeGrams     float64 `json:"serving_size_grams,omitempty"`
	HouseholdServingText string  `json:"household_serving_text,omitempty"`
	NutrientsPer100g     bool    `json:"nutrients_per_100g,omitempty"`
}
