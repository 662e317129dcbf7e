package services

import (
	"testing"

	"github.com/nutritrack/nutritrack-backend/internal/dto"
	"github.com/nutritrack/nutritrack-backend/internal/nutrition"
)

func fptr(v float64) *float64 { return &v }

// Resolve is pure scaling; no DB or external clients involved.
func resolver() *FoodService { return &FoodService{} }

func per100gBase() nutrition.Estimate {
	return nutrition.Estimate{
		FoodName:         "Oats",
		Calories:         389,
		Protein:          16.9,
		Carbs:            66.3,
		Fat:              6.9,
		Fiber:            10.6,
		IsEstimate:       true,
		ServingSizeGrams: 40,
		NutrientsPer100g: true,
	}
}

func TestResolve_ServingsMode(t *testing.T) {
	resolved, err := resolver().Resolve(dto.ResolveFoodRequest{
		Estimate: per100gBase(),
		Quantity: fptr(2),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// 2 servings of 40 g at 389 kcal/100g = 311.2 -> 311
	if resolved.Calories != 311 {
		t.Errorf("calories = %v, want 311", resolved.Calories)
	}
	if resolved.FoodName != "Oats" {
		t.Errorf("foodName = %q", resolved.FoodName)
	}
	if !resolved.IsEstimate {
		t.Error("estimate flag must carry through")
	}
}

func TestResolve_WeightModeInOunces(t *testing.T) {
	resolved, err := resolver().Resolve(dto.ResolveFoodRequest{
		Estimate:    per100gBase(),
		Mode:        "weight",
		WeightUnit:  "oz",
		WeightValue: fptr(3.5),
		Quantity:    fptr(4), // ignored in weight mode
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// 3.5 oz = 99.22325 g -> factor 0.9922325 -> 386.02 -> 386
	if resolved.Calories != 386 {
		t.Errorf("calories = %v, want 386", resolved.Calories)
	}
}

func TestResolve_UnknownUnitRejected(t *testing.T) {
	_, err := resolver().Resolve(dto.ResolveFoodRequest{
		Estimate:   per100gBase(),
		WeightUnit: "stone",
	})
	if err == nil {
		t.Error("expected an error for an unknown weight unit")
	}
}

func TestResolve_OverridesPinFields(t *testing.T) {
	name := "Steel-Cut Oats"
	resolved, err := resolver().Resolve(dto.ResolveFoodRequest{
		Estimate:     per100gBase(),
		Quantity:     fptr(1),
		NameOverride: &name,
		Overrides:    map[string]float64{"calories": 150, "protein": 7},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.FoodName != "Steel-Cut Oats" {
		t.Errorf("foodName = %q", resolved.FoodName)
	}
	if resolved.Calories != 150 || resolved.Protein != 7 {
		t.Errorf("pinned fields = %v cal / %v protein", resolved.Calories, resolved.Protein)
	}
	// Unpinned fields still scale: 66.3 * 0.4 = 26.52 -> 26.5
	if resolved.Carbs != 26.5 {
		t.Errorf("carbs = %v, want 26.5", resolved.Carbs)
	}
}

func TestResolve_PerServingEstimate(t *testing.T) {
	resolved, err := resolver().Resolve(dto.ResolveFoodRequest{
		Estimate: nutrition.Estimate{
			FoodName: "Egg",
			Calories: 78,
			Protein:  6.3,
		},
		Quantity: fptr(3),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Calories != 234 {
		t.Errorf("calories = %v, want 234", resolved.Calories)
	}
	if resolved.Protein != 18.9 {
		t.Errorf("protein = %v, want 18.9", resolved.Protein)
	}
}
