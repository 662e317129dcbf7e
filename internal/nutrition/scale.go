package nutrition

import (
	"math"
)

// WeightUnit is a supported weight input unit.
type WeightUnit string

const (
	UnitGrams  WeightUnit = "g"
	UnitOunces WeightUnit = "oz"
	UnitPounds WeightUnit = "lb"
)

var gramsPerUnit = map[WeightUnit]float64{
	UnitGrams:  1,
	UnitOunces: 28.3495,
	UnitPounds: 453.592,
}

// InputMode selects how a per-100g estimate is quantified.
type InputMode string

const (
	ModeServings InputMode = "servings"
	ModeWeight   InputMode = "weight"
)

// Estimate is a nutrition estimate as returned by search, barcode lookup, or
// the LLM. Values are either absolute per-serving amounts (NutrientsPer100g
// false) or per-100g base rates that need scaling by serving weight.
type Estimate struct {
	FoodName             string  `json:"food_name"`
	Calories             float64 `json:"calories"`
	Protein              float64 `json:"protein"`
	Carbs                float64 `json:"carbs"`
	Fat                  float64 `json:"fat"`
	Fiber                float64 `json:"fiber"`
	IsEstimate           bool    `json:"is_estimate"`
	Quantity             float64 `json:"quantity,omitempty"`
	ServingSizeGrams     float64 `json:"serving_size_grams,omitempty"`
	HouseholdServingText string  `json:"household_serving_text,omitempty"`
	NutrientsPer100g     bool    `json:"nutrients_per_100g,omitempty"`
}

// Resolved holds absolute values for the quantity actually being logged,
// ready to persist. Calories are rounded to the nearest integer, macros to
// the nearest 0.1 g.
type Resolved struct {
	FoodName   string  `json:"food_name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	IsEstimate bool    `json:"is_estimate"`
}

// ValidUnit reports whether u is a recognized weight unit.
func ValidUnit(u WeightUnit) bool {
	_, ok := gramsPerUnit[u]
	return ok
}

// ToGrams converts a weight value in the given unit to grams.
func ToGrams(value float64, unit WeightUnit) float64 {
	return value * gramsPerUnit[unit]
}

// ConvertWeight converts a weight value between units, preserving the
// physical quantity and rounding to 2 decimal places.
func ConvertWeight(value float64, from, to WeightUnit) float64 {
	grams := value * gramsPerUnit[from]
	return round2(grams / gramsPerUnit[to])
}

// Confirmation is the interactive scaling state for one estimate: the user
// adjusts quantity, weight, unit, and mode, optionally pins individual fields
// by hand, and finally resolves absolute values for persistence.
type Confirmation struct {
	base     Estimate
	quantity float64
	mode     InputMode

	weightValue float64
	weightUnit  WeightUnit

	nameOverride    *string
	numericOverride map[string]float64
}

// NewConfirmation starts a scaling session from an estimate. Quantity
// defaults to the estimate's detected quantity (or 1), the weight input to
// one serving's weight in grams.
func NewConfirmation(base Estimate) *Confirmation {
	q := base.Quantity
	if q <= 0 {
		q = 1
	}
	serving := base.ServingSizeGrams
	if serving <= 0 {
		serving = 100
	}
	return &Confirmation{
		base:            base,
		quantity:        q,
		mode:            ModeServings,
		weightValue:     serving,
		weightUnit:      UnitGrams,
		numericOverride: map[string]float64{},
	}
}

func (c *Confirmation) servingSizeGrams() float64 {
	if c.base.ServingSizeGrams > 0 {
		return c.base.ServingSizeGrams
	}
	return 100
}

// SetQuantity updates the serving multiplier and clears numeric overrides.
// Invalid input (<= 0, NaN) is ignored and the previous value retained.
func (c *Confirmation) SetQuantity(q float64) bool {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return false
	}
	c.quantity = q
	c.clearNumericOverrides()
	return true
}

// SetWeight updates the entered weight value and clears numeric overrides.
// Invalid input is ignored.
func (c *Confirmation) SetWeight(w float64) bool {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return false
	}
	c.weightValue = w
	c.clearNumericOverrides()
	return true
}

// SetUnit switches the weight unit, converting the entered value so the
// physical quantity is unchanged. Overrides survive a unit switch: the same
// physical weight means the same macros.
func (c *Confirmation) SetUnit(unit WeightUnit) bool {
	if !ValidUnit(unit) {
		return false
	}
	c.weightValue = ConvertWeight(c.weightValue, c.weightUnit, unit)
	c.weightUnit = unit
	return true
}

// SetMode switches between servings and weight input, resetting the input
// for that mode and clearing numeric overrides.
func (c *Confirmation) SetMode(mode InputMode) bool {
	if mode != ModeServings && mode != ModeWeight {
		return false
	}
	c.mode = mode
	c.clearNumericOverrides()
	if mode == ModeWeight {
		c.weightValue = c.servingSizeGrams()
		c.weightUnit = UnitGrams
	} else {
		c.quantity = 1
	}
	return true
}

// OverrideName pins the food name independently of numeric overrides.
func (c *Confirmation) OverrideName(name string) {
	c.nameOverride = &name
}

// OverrideField pins a computed numeric field until the next quantity,
// weight, or mode change. Valid fields: calories, protein, carbs, fat, fiber.
func (c *Confirmation) OverrideField(field string, value float64) bool {
	switch field {
	case "calories", "protein", "carbs", "fat", "fiber":
	default:
		return false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return false
	}
	c.numericOverride[field] = value
	return true
}

func (c *Confirmation) clearNumericOverrides() {
	c.numericOverride = map[string]float64{}
}

// ScaleFactor returns the multiplier applied to the base values.
func (c *Confirmation) ScaleFactor() float64 {
	if !c.base.NutrientsPer100g {
		// Base values are already per-serving, just multiply by quantity.
		return c.quantity
	}
	if c.mode == ModeServings {
		return (c.servingSizeGrams() / 100) * c.quantity
	}
	// Weight mode: the entered weight is absolute, quantity is not applied.
	return ToGrams(c.weightValue, c.weightUnit) / 100
}

// Resolve computes the absolute values for the logged quantity. Rounding is
// applied after scaling; pinned fields pass through untouched.
func (c *Confirmation) Resolve() Resolved {
	factor := c.ScaleFactor()

	name := c.base.FoodName
	if c.nameOverride != nil {
		name = *c.nameOverride
	}

	field := func(key string, base float64, round func(float64) float64) float64 {
		if v, ok := c.numericOverride[key]; ok {
			return v
		}
		return round(base * factor)
	}

	return Resolved{
		FoodName:   name,
		Calories:   field("calories", c.base.Calories, math.Round),
		Protein:    field("protein", c.base.Protein, round1),
		Carbs:      field("carbs", c.base.Carbs, round1),
		Fat:        field("fat", c.base.Fat, round1),
		Fiber:      field("fiber", c.base.Fiber, round1),
		IsEstimate: c.base.IsEstimate,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
