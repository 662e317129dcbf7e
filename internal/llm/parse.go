package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

// ErrUnparseable means the model did not return usable JSON; the caller
// should point the user to manual entry.
var ErrUnparseable = errors.New("could not parse nutrition estimate from model output")

// extractJSON pulls the first balanced open..close span out of a model
// response that may wrap JSON in prose or code fences.
func extractJSON(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

type rawEstimate struct {
	FoodName             string   `json:"foodName"`
	Quantity             *float64 `json:"quantity"`
	Calories             *float64 `json:"calories"`
	Protein              *float64 `json:"protein"`
	Carbs                *float64 `json:"carbs"`
	Fat                  *float64 `json:"fat"`
	Fiber                *float64 `json:"fiber"`
	ServingSizeGrams     *float64 `json:"servingSizeGrams"`
	HouseholdServingText string   `json:"householdServingText"`
}

func num(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

func (r rawEstimate) toEstimate(fallbackName string) nutrition.Estimate {
	name := r.FoodName
	if name == "" {
		name = fallbackName
	}
	quantity := num(r.Quantity)
	if quantity <= 0 {
		quantity = 1
	}
	serving := num(r.ServingSizeGrams)
	if serving <= 0 {
		serving = 100
	}
	return nutrition.Estimate{
		FoodName:             name,
		Calories:             num(r.Calories),
		Protein:              num(r.Protein),
		Carbs:                num(r.Carbs),
		Fat:                  num(r.Fat),
		Fiber:                num(r.Fiber),
		IsEstimate:           true,
		Quantity:             quantity,
		ServingSizeGrams:     serving,
		HouseholdServingText: r.HouseholdServingText,
		NutrientsPer100g:     true,
	}
}

// parseEstimate extracts a single per-100g estimate from model output.
func parseEstimate(response, description string) (nutrition.Estimate, error) {
	blob, ok := extractJSON(response, '{', '}')
	if !ok {
		return nutrition.Estimate{}, ErrUnparseable
	}
	var raw rawEstimate
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nutrition.Estimate{}, ErrUnparseable
	}
	return raw.toEstimate(description), nil
}

// parseVariations extracts an array of per-100g variations from model output.
func parseVariations(response, description string) ([]nutrition.FoodSearchResult, error) {
	blob, ok := extractJSON(response, '[', ']')
	if !ok {
		return nil, ErrUnparseable
	}
	var raws []rawEstimate
	if err := json.Unmarshal([]byte(blob), &raws); err != nil {
		return nil, ErrUnparseable
	}
	if len(raws) == 0 {
		return nil, ErrUnparseable
	}

	results := make([]nutrition.FoodSearchResult, len(raws))
	for i, raw := range raws {
		est := raw.toEstimate(description)
		results[i] = nutrition.FoodSearchResult{
			FoodName:             est.FoodName,
			Calories:             est.Calories,
			Protein:              est.Protein,
			Carbs:                est.Carbs,
			Fat:                  est.Fat,
			Fiber:                est.Fiber,
			Source:               "ai",
			ServingSizeGrams:     est.ServingSizeGrams,
			HouseholdServingText: est.HouseholdServingText,
			NutrientsPer100g:     true,
		}
	}
	return results, nil
}
