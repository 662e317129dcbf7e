package nutrition

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestConvertWeight_RoundTripPreservesValue(t *testing.T) {
	cases := []float64{1, 50, 100, 453.592, 12.34}
	for _, grams := range cases {
		oz := ConvertWeight(grams, UnitGrams, UnitOunces)
		back := ConvertWeight(oz, UnitOunces, UnitGrams)
		if !almostEqual(back, grams, 0.01) {
			t.Errorf("g->oz->g for %v: got %v, want within 0.01", grams, back)
		}
	}
}

func TestConvertWeight_FixedConstants(t *testing.T) {
	if got := ConvertWeight(1, UnitPounds, UnitGrams); !almostEqual(got, 453.59, 0.005) {
		t.Errorf("1 lb = %v g, want 453.59 (2 dp)", got)
	}
	if got := ConvertWeight(1, UnitOunces, UnitGrams); !almostEqual(got, 28.35, 0.005) {
		t.Errorf("1 oz = %v g, want 28.35 (2 dp)", got)
	}
}

func TestResolve_PerServingMode(t *testing.T) {
	c := NewConfirmation(Estimate{
		FoodName: "Egg",
		Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Fiber: 0,
		IsEstimate: true,
	})
	if !c.SetQuantity(2) {
		t.Fatal("SetQuantity(2) rejected")
	}

	r := c.Resolve()
	if r.Calories != 156 {
		t.Errorf("calories = %v, want 156", r.Calories)
	}
	if r.Protein != 12.6 {
		t.Errorf("protein = %v, want 12.6", r.Protein)
	}
	if !r.IsEstimate {
		t.Error("IsEstimate must carry through")
	}
}

func TestResolve_Per100gServingsMode(t *testing.T) {
	// 200 cal/100g, 50g serving, quantity 2 -> 200 * 0.5 * 2 = 200
	c := NewConfirmation(Estimate{
		FoodName: "Chicken Breast",
		Calories: 200, Protein: 10,
		ServingSizeGrams: 50,
		NutrientsPer100g: true,
	})
	c.SetQuantity(2)

	r := c.Resolve()
	if r.Calories != 200 {
		t.Errorf("calories = %v, want 200", r.Calories)
	}
	if r.Protein != 10 {
		t.Errorf("protein = %v, want 10", r.Protein)
	}
}

func TestResolve_Per100gWeightMode(t *testing.T) {
	c := NewConfirmation(Estimate{
		FoodName: "Oats",
		Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Fiber: 10.6,
		ServingSizeGrams: 40,
		NutrientsPer100g: true,
	})
	c.SetMode(ModeWeight)

	// Mode switch defaults the weight input to one serving in grams
	if got := c.ScaleFactor(); !almostEqual(got, 0.4, 1e-9) {
		t.Fatalf("scale factor after mode switch = %v, want 0.4", got)
	}

	c.SetWeight(250)
	r := c.Resolve()
	if r.Calories != math.Round(389*2.5) {
		t.Errorf("calories = %v, want %v", r.Calories, math.Round(389*2.5))
	}
	if r.Fiber != 26.5 {
		t.Errorf("fiber = %v, want 26.5", r.Fiber)
	}
}

func TestResolve_WeightModeIgnoresQuantity(t *testing.T) {
	c := NewConfirmation(Estimate{
		Calories: 100, ServingSizeGrams: 50, NutrientsPer100g: true,
	})
	c.SetQuantity(3)
	c.SetMode(ModeWeight)
	c.SetWeight(100)

	// 100g of a per-100g food: factor 1 regardless of quantity
	if got := c.ScaleFactor(); !almostEqual(got, 1, 1e-9) {
		t.Errorf("scale factor = %v, want 1", got)
	}
}

func TestResolve_UnitSwitchPreservesPhysicalWeight(t *testing.T) {
	c := NewConfirmation(Estimate{
		Calories: 100, ServingSizeGrams: 100, NutrientsPer100g: true,
	})
	c.SetMode(ModeWeight)
	c.SetWeight(283.5) // ~10 oz

	before := c.Resolve().Calories
	c.SetUnit(UnitOunces)
	after := c.Resolve().Calories

	if !almostEqual(before, after, 1) {
		t.Errorf("calories changed across unit switch: %v -> %v", before, after)
	}
}

func TestInvalidInputIsIgnored(t *testing.T) {
	c := NewConfirmation(Estimate{Calories: 100})
	c.SetQuantity(2)

	if c.SetQuantity(0) {
		t.Error("quantity 0 must be rejected")
	}
	if c.SetQuantity(-1) {
		t.Error("negative quantity must be rejected")
	}
	if c.SetQuantity(math.NaN()) {
		t.Error("NaN quantity must be rejected")
	}
	if c.SetWeight(0) {
		t.Error("weight 0 must be rejected")
	}
	if c.SetUnit("stone") {
		t.Error("unknown unit must be rejected")
	}

	// Previous valid value retained
	if r := c.Resolve(); r.Calories != 200 {
		t.Errorf("calories = %v, want 200 from the retained quantity", r.Calories)
	}
}

func TestOverride_PinsFieldUntilQuantityChange(t *testing.T) {
	c := NewConfirmation(Estimate{FoodName: "Soup", Calories: 100, Protein: 5})

	if !c.OverrideField("calories", 123) {
		t.Fatal("override rejected")
	}
	r := c.Resolve()
	if r.Calories != 123 {
		t.Errorf("pinned calories = %v, want 123", r.Calories)
	}
	if r.Protein != 5 {
		t.Errorf("unpinned protein = %v, want 5", r.Protein)
	}

	// Changing quantity clears the pin and recomputes
	c.SetQuantity(2)
	r = c.Resolve()
	if r.Calories != 200 {
		t.Errorf("calories after quantity change = %v, want 200", r.Calories)
	}
}

func TestOverride_NameSurvivesNumericClearing(t *testing.T) {
	c := NewConfirmation(Estimate{FoodName: "Soup", Calories: 100})
	c.OverrideName("Tomato Soup")
	c.OverrideField("calories", 50)
	c.SetQuantity(3)

	r := c.Resolve()
	if r.FoodName != "Tomato Soup" {
		t.Errorf("food name = %q, want the override to survive", r.FoodName)
	}
	if r.Calories != 300 {
		t.Errorf("calories = %v, want recomputed 300", r.Calories)
	}
}

func TestOverride_UnitSwitchKeepsOverrides(t *testing.T) {
	c := NewConfirmation(Estimate{Calories: 100, ServingSizeGrams: 100, NutrientsPer100g: true})
	c.SetMode(ModeWeight)
	c.OverrideField("calories", 42)
	c.SetUnit(UnitOunces)

	if r := c.Resolve(); r.Calories != 42 {
		t.Errorf("calories = %v, want pinned 42 across a unit-only switch", r.Calories)
	}
}

func TestOverride_RejectsUnknownFieldAndBadValues(t *testing.T) {
	c := NewConfirmation(Estimate{Calories: 100})
	if c.OverrideField("sodium", 10) {
		t.Error("unknown field must be rejected")
	}
	if c.OverrideField("calories", -5) {
		t.Error("negative override must be rejected")
	}
	if c.OverrideField("calories", math.NaN()) {
		t.Error("NaN override must be rejected")
	}
}

func TestResolve_RoundingPolicy(t *testing.T) {
	c := NewConfirmation(Estimate{
		Calories: 33.4, Protein: 3.33, Carbs: 6.66, Fat: 1.11, Fiber: 0.55,
	})
	c.SetQuantity(1.5)

	r := c.Resolve()
	if r.Calories != 50 { // 50.1 -> nearest int
		t.Errorf("calories = %v, want 50", r.Calories)
	}
	if r.Protein != 5.0 { // 4.995 -> 5.0
		t.Errorf("protein = %v, want 5.0", r.Protein)
	}
	if r.Carbs != 10.0 { // 9.99 -> 10.0
		t.Errorf("carbs = %v, want 10.0", r.Carbs)
	}
	if r.Fiber != 0.8 { // 0.825 -> 0.8
		t.Errorf("fiber = %v, want 0.8", r.Fiber)
	}
}
