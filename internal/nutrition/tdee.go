package nutrition

import "math"

// TDEEInput carries body stats and goals for the calorie calculator.
// Optional fields left nil fall back to defaults rather than failing.
type TDEEInput struct {
	Weight        float64  `json:"weight"`
	WeightUnit    string   `json:"weight_unit"` // "lbs" or "kg"
	HeightFeet    *float64 `json:"height_feet,omitempty"`
	HeightInches  *float64 `json:"height_inches,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	Age           int      `json:"age"`
	Sex           string   `json:"sex"`                   // "male", "female", "other"
	ActivityLevel string   `json:"activity_level"`        // sedentary, light, moderate, very_active
	Goal          string   `json:"goal"`                  // lose, maintain, gain
	WeeklyRate    *float64 `json:"weekly_rate,omitempty"` // lbs per week
}

// TDEEResult is the daily calorie goal with its macro split, all in whole
// units (calories in kcal, macros in grams).
type TDEEResult struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"very_active": 1.725,
}

const (
	lbsPerKg     = 2.205
	cmPerFoot    = 30.48
	cmPerInch    = 2.54
	calsPerPound = 3500
)

// CalculateTDEE computes the daily calorie goal via Mifflin-St Jeor and
// splits it into macros. The female formula is used for any non-male sex as
// a conservative default. It never fails: unrecognized activity levels fall
// back to moderate and a missing height to 170 cm.
func CalculateTDEE(input TDEEInput) TDEEResult {
	var weightKg, weightLbs float64
	if input.WeightUnit == "lbs" {
		weightKg = input.Weight / lbsPerKg
		weightLbs = input.Weight
	} else {
		weightKg = input.Weight
		weightLbs = input.Weight * lbsPerKg
	}

	var heightCm float64
	switch {
	case input.WeightUnit == "lbs" && input.HeightFeet != nil:
		inches := 0.0
		if input.HeightInches != nil {
			inches = *input.HeightInches
		}
		heightCm = *input.HeightFeet*cmPerFoot + inches*cmPerInch
	case input.HeightCm != nil:
		heightCm = *input.HeightCm
	default:
		heightCm = 170
	}

	var bmr float64
	if input.Sex == "male" {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(input.Age) + 5
	} else {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(input.Age) - 161
	}

	multiplier, ok := activityMultipliers[input.ActivityLevel]
	if !ok {
		multiplier = 1.55
	}
	tdee := bmr * multiplier

	if input.Goal != "maintain" && input.WeeklyRate != nil && *input.WeeklyRate > 0 {
		dailyAdjustment := *input.WeeklyRate * calsPerPound / 7
		if input.Goal == "lose" {
			tdee -= dailyAdjustment
		} else {
			tdee += dailyAdjustment
		}
	}

	calories := math.Round(tdee)

	// Protein: 1 g per lb bodyweight, capped at 30% of calories.
	proteinCals := weightLbs * 4
	if max := calories * 0.3; proteinCals > max {
		proteinCals = max
	}
	fatCals := calories * 0.25
	carbCals := calories - proteinCals - fatCals

	return TDEEResult{
		Calories: int(calories),
		Protein:  int(math.Round(proteinCals / 4)),
		Carbs:    int(math.Round(carbCals / 4)),
		Fat:      int(math.Round(fatCals / 9)),
	}
}
