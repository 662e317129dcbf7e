package llm

import (
	"errors"
	"testing"
)

func TestParseEstimate_PlainJSON(t *testing.T) {
	response := `{"foodName":"Egg","quantity":2,"calories":155,"protein":13,"carbs":1.1,"fat":11,"fiber":0,"servingSizeGrams":50,"householdServingText":"1 large egg"}`

	est, err := parseEstimate(response, "2 eggs")
	if err != nil {
		t.Fatalf("parseEstimate: %v", err)
	}
	if est.FoodName != "Egg" {
		t.Errorf("foodName = %q, want Egg", est.FoodName)
	}
	if est.Quantity != 2 {
		t.Errorf("quantity = %v, want 2", est.Quantity)
	}
	if est.ServingSizeGrams != 50 {
		t.Errorf("servingSizeGrams = %v, want 50", est.ServingSizeGrams)
	}
	if !est.NutrientsPer100g {
		t.Error("AI estimates are always per-100g")
	}
	if !est.IsEstimate {
		t.Error("AI estimates must be flagged as estimates")
	}
}

func TestParseEstimate_JSONWrappedInProse(t *testing.T) {
	response := "Here is the estimate you asked for:\n```json\n" +
		`{"foodName":"Oatmeal","calories":68,"protein":2.4,"carbs":12,"fat":1.4,"fiber":1.7}` +
		"\n```\nLet me know if you need anything else."

	est, err := parseEstimate(response, "oatmeal")
	if err != nil {
		t.Fatalf("parseEstimate: %v", err)
	}
	if est.FoodName != "Oatmeal" {
		t.Errorf("foodName = %q, want Oatmeal", est.FoodName)
	}
	if est.Calories != 68 {
		t.Errorf("calories = %v, want 68", est.Calories)
	}
}

func TestParseEstimate_DefaultsForMissingFields(t *testing.T) {
	est, err := parseEstimate(`{"calories":100}`, "mystery stew")
	if err != nil {
		t.Fatalf("parseEstimate: %v", err)
	}
	if est.FoodName != "mystery stew" {
		t.Errorf("foodName = %q, want the query as fallback", est.FoodName)
	}
	if est.Quantity != 1 {
		t.Errorf("quantity = %v, want default 1", est.Quantity)
	}
	if est.ServingSizeGrams != 100 {
		t.Errorf("servingSizeGrams = %v, want default 100", est.ServingSizeGrams)
	}
	if est.Protein != 0 {
		t.Errorf("protein = %v, want 0", est.Protein)
	}
}

func TestParseEstimate_NoJSON(t *testing.T) {
	_, err := parseEstimate("Sorry, I can't help with that.", "x")
	if !errors.Is(err, ErrUnparseable) {
		t.Errorf("err = %v, want ErrUnparseable", err)
	}
}

func TestParseEstimate_NegativeValuesClampToZero(t *testing.T) {
	est, err := parseEstimate(`{"foodName":"Weird","calories":-50,"protein":5}`, "weird")
	if err != nil {
		t.Fatalf("parseEstimate: %v", err)
	}
	if est.Calories != 0 {
		t.Errorf("calories = %v, want negative clamped to 0", est.Calories)
	}
}

func TestParseVariations_Array(t *testing.T) {
	response := `Some preamble. [
	  {"foodName":"Chicken Breast, Grilled","calories":165,"protein":31,"carbs":0,"fat":3.6,"fiber":0,"servingSizeGrams":120,"householdServingText":"1 breast"},
	  {"foodName":"Chicken Breast, Fried","calories":246,"protein":27,"carbs":8,"fat":12,"fiber":0.3,"servingSizeGrams":140,"householdServingText":"1 breast"}
	]`

	results, err := parseVariations(response, "chicken breast")
	if err != nil {
		t.Fatalf("parseVariations: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Source != "ai" {
			t.Errorf("source = %q, want ai", r.Source)
		}
		if !r.NutrientsPer100g {
			t.Error("variations are per-100g")
		}
	}
	if results[1].FoodName != "Chicken Breast, Fried" {
		t.Errorf("second variation = %q", results[1].FoodName)
	}
}

func TestParseVariations_EmptyArrayIsError(t *testing.T) {
	_, err := parseVariations("[]", "x")
	if !errors.Is(err, ErrUnparseable) {
		t.Errorf("err = %v, want ErrUnparseable for empty array", err)
	}
}
