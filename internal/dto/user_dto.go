package dto

// UpdateSettingsRequest carries partial settings updates; nil fields are
// left unchanged.
type UpdateSettingsRequest struct {
	CalorieGoal   *int    `json:"calorie_goal"`
	ProteinTarget *int    `json:"protein_target"`
	CarbTarget    *int    `json:"carb_target"`
	FatTarget     *int    `json:"fat_target"`
	MacroUnit     *string `json:"macro_unit"`
	WeightUnit    *string `json:"weight_unit"`
	ActivityLevel *string `json:"activity_level"`
	LLMProvider   *string `json:"llm_provider"`
}

// OnboardingRequest is the goal set chosen during first-run setup.
type OnboardingRequest struct {
	CalorieGoal   int    `json:"calorie_goal"`
	ProteinTarget int    `json:"protein_target"`
	CarbTarget    int    `json:"carb_target"`
	FatTarget     int    `json:"fat_target"`
	WeightUnit    string `json:"weight_unit"`
	ActivityLevel string `json:"activity_level"`
}
