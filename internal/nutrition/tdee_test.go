package nutrition

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestCalculateTDEE_MaleMaintain(t *testing.T) {
	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1805; TDEE = 1805*1.55 = 2797.75
	got := CalculateTDEE(TDEEInput{
		Weight:        80,
		WeightUnit:    "kg",
		HeightCm:      fptr(180),
		Age:           30,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          "maintain",
	})

	if math.Abs(float64(got.Calories-2798)) > 1 {
		t.Errorf("calories = %d, want 2798 +/- 1", got.Calories)
	}
}

func TestCalculateTDEE_FemaleFormulaForOtherSex(t *testing.T) {
	base := TDEEInput{
		Weight: 70, WeightUnit: "kg", HeightCm: fptr(170),
		Age: 25, ActivityLevel: "sedentary", Goal: "maintain",
	}

	female := base
	female.Sex = "female"
	other := base
	other.Sex = "other"

	if CalculateTDEE(female) != CalculateTDEE(other) {
		t.Error("sex=other must use the female formula")
	}

	male := base
	male.Sex = "male"
	if CalculateTDEE(male).Calories <= CalculateTDEE(female).Calories {
		t.Error("male formula must yield more calories at identical stats")
	}
}

func TestCalculateTDEE_ImperialHeightConversion(t *testing.T) {
	// 5'10" = 5*30.48 + 10*2.54 = 177.8 cm; 180 lbs = 81.63 kg
	got := CalculateTDEE(TDEEInput{
		Weight:        180,
		WeightUnit:    "lbs",
		HeightFeet:    fptr(5),
		HeightInches:  fptr(10),
		Age:           40,
		Sex:           "male",
		ActivityLevel: "light",
		Goal:          "maintain",
	})

	bmr := 10*(180/2.205) + 6.25*177.8 - 5*40 + 5
	want := int(math.Round(bmr * 1.375))
	if got.Calories != want {
		t.Errorf("calories = %d, want %d", got.Calories, want)
	}
}

func TestCalculateTDEE_GoalAdjustment(t *testing.T) {
	base := TDEEInput{
		Weight: 80, WeightUnit: "kg", HeightCm: fptr(180),
		Age: 30, Sex: "male", ActivityLevel: "moderate",
	}

	maintain := base
	maintain.Goal = "maintain"
	lose := base
	lose.Goal = "lose"
	lose.WeeklyRate = fptr(1) // 1 lb/week = 500 cal/day
	gain := base
	gain.Goal = "gain"
	gain.WeeklyRate = fptr(0.5) // +250 cal/day

	m := CalculateTDEE(maintain).Calories
	if got := CalculateTDEE(lose).Calories; got != m-500 {
		t.Errorf("lose 1 lb/wk = %d, want %d", got, m-500)
	}
	if got := CalculateTDEE(gain).Calories; got != m+250 {
		t.Errorf("gain 0.5 lb/wk = %d, want %d", got, m+250)
	}

	// A weekly rate without a non-maintain goal changes nothing
	maintainWithRate := maintain
	maintainWithRate.WeeklyRate = fptr(1)
	if got := CalculateTDEE(maintainWithRate).Calories; got != m {
		t.Errorf("maintain with rate = %d, want %d", got, m)
	}
}

func TestCalculateTDEE_Defaults(t *testing.T) {
	// Unknown activity level falls back to moderate, missing height to 170cm
	got := CalculateTDEE(TDEEInput{
		Weight: 70, WeightUnit: "kg", Age: 30, Sex: "female",
		ActivityLevel: "ultra", Goal: "maintain",
	})

	bmr := 10*70.0 + 6.25*170 - 5*30 - 161
	want := int(math.Round(bmr * 1.55))
	if got.Calories != want {
		t.Errorf("calories = %d, want %d (moderate multiplier, 170cm)", got.Calories, want)
	}
}

func TestCalculateTDEE_ProteinCappedAtThirtyPercent(t *testing.T) {
	// Heavy bodyweight at a low calorie budget triggers the 30% cap
	got := CalculateTDEE(TDEEInput{
		Weight:        300,
		WeightUnit:    "lbs",
		HeightFeet:    fptr(5),
		HeightInches:  fptr(6),
		Age:           60,
		Sex:           "female",
		ActivityLevel: "sedentary",
		Goal:          "lose",
		WeeklyRate:    fptr(1.5),
	})

	proteinCals := float64(got.Protein) * 4
	if proteinCals > float64(got.Calories)*0.3+4 {
		t.Errorf("protein %dg (%.0f cal) exceeds 30%% of %d calories",
			got.Protein, proteinCals, got.Calories)
	}
}

func TestCalculateTDEE_MacroSplitAddsUp(t *testing.T) {
	got := CalculateTDEE(TDEEInput{
		Weight: 75, WeightUnit: "kg", HeightCm: fptr(175),
		Age: 28, Sex: "male", ActivityLevel: "very_active", Goal: "maintain",
	})

	sum := got.Protein*4 + got.Carbs*4 + got.Fat*9
	if math.Abs(float64(sum-got.Calories)) > 15 {
		t.Errorf("macro calories %d deviate from goal %d beyond rounding", sum, got.Calories)
	}
}
