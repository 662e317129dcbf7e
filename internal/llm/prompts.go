package llm

import (
	"fmt"
	"math"
	"strings"
)

func nutritionEstimatePrompt(description string) string {
	return fmt.Sprintf(`You are a nutrition expert. Estimate the nutritional content for the following food description. Be as accurate as possible based on typical serving sizes.

Food description: %q

Respond with ONLY a JSON object in this exact format, no other text:
{
  "foodName": "cleaned up name for ONE unit/serving (e.g. 'Egg' not '2 Eggs')",
  "quantity": number (how many units/servings detected, default 1),
  "calories": number (per 100g of this food),
  "protein": number in grams (per 100g),
  "carbs": number in grams (per 100g),
  "fat": number in grams (per 100g),
  "fiber": number in grams (per 100g),
  "servingSizeGrams": number (estimated weight of ONE typical serving in grams, e.g. 50 for one egg, 120 for a chicken breast),
  "householdServingText": "human-readable serving description (e.g. '1 large egg', '1 breast', '1 cup cooked')"
}

IMPORTANT:
- ALL nutrient values must be per 100g of the food, NOT per serving.
- "servingSizeGrams" is the estimated weight of ONE typical serving/unit in grams.
- If the description mentions a quantity (e.g. "2 eggs", "3 slices of bread"), set "quantity" to that number. servingSizeGrams should be for ONE unit.
- If no quantity is mentioned, set quantity to 1.
- For mixed meals (e.g. "eggs and toast"), set quantity to 1, estimate a combined serving weight, and provide per-100g values for the combined dish.`, description)
}

func nutritionVariationsPrompt(description string) string {
	return fmt.Sprintf(`You are a nutrition expert. For the following food description, generate 3-4 common variations of how this food is typically prepared or served. For each variation, estimate the nutritional content per 100g.

Food description: %q

Respond with ONLY a JSON array in this exact format, no other text:
[
  {
    "foodName": "Variation name (e.g. 'Chicken Breast, Grilled')",
    "calories": number (per 100g),
    "protein": number in grams (per 100g),
    "carbs": number in grams (per 100g),
    "fat": number in grams (per 100g),
    "fiber": number in grams (per 100g),
    "servingSizeGrams": number (typical serving weight in grams),
    "householdServingText": "human-readable serving (e.g. '1 breast', '1 cup')"
  }
]

IMPORTANT:
- Generate 3-4 distinct, common variations (e.g. for "chicken breast": raw, grilled, baked, fried)
- ALL nutrient values must be per 100g
- Each variation should have meaningfully different nutritional values
- Use clear, descriptive names that distinguish each variation`, description)
}

func calorieEstimatePrompt(activity string, durationMinutes int, activityLevel string) string {
	return fmt.Sprintf(`Estimate calories burned for the following exercise. Consider the person's general activity level.

Activity: %s
Duration: %d minutes
Person's activity level: %s

Respond with ONLY a single number representing estimated calories burned. No other text.`, activity, durationMinutes, activityLevel)
}

func weeklyDigestPrompt(userData UserData, weekLogs WeekLogs) string {
	daysLogged := 0
	exerciseDays := 0
	var weights []string
	var dailyCalories []string
	var dailyMacros []string

	for _, d := range weekLogs.Days {
		if len(d.Foods) > 0 {
			daysLogged++
			var cals, p, c, f float64
			for _, food := range d.Foods {
				cals += food.Calories
				p += food.Protein
				c += food.Carbs
				f += food.Fat
			}
			rounded := int(math.Round(cals))
			diff := rounded - userData.CalorieGoal
			sign := ""
			if diff >= 0 {
				sign = "+"
			}
			dailyCalories = append(dailyCalories,
				fmt.Sprintf("%s: %d cal (%s%d vs goal)", d.Date, rounded, sign, diff))
			dailyMacros = append(dailyMacros,
				fmt.Sprintf("%s: P:%.0fg C:%.0fg F:%.0fg", d.Date, p, c, f))
		}
		if len(d.Exercises) > 0 {
			exerciseDays++
		}
		if d.Weight != nil {
			weights = append(weights, fmt.Sprintf("%.1f", *d.Weight))
		}
	}

	calorieLog := strings.Join(dailyCalories, "\n")
	if calorieLog == "" {
		calorieLog = "No food logged this week."
	}
	macroLog := strings.Join(dailyMacros, "\n")
	if macroLog == "" {
		macroLog = "No data."
	}

	weightLine := "Not logged this week."
	if len(weights) > 0 {
		weightLine = strings.Join(weights, " -> ")
	}
	if weekLogs.WeightChange != nil {
		sign := ""
		if *weekLogs.WeightChange > 0 {
			sign = "+"
		}
		weightLine += fmt.Sprintf("\nChange: %s%.1f", sign, *weekLogs.WeightChange)
	}

	streakLine := ""
	if userData.CurrentStreak > 0 {
		streakLine = fmt.Sprintf("Current logging streak: %d days", userData.CurrentStreak)
	}

	return fmt.Sprintf(`You are an expert nutrition coach. Analyze this person's week and provide a detailed, actionable weekly review.

GOALS:
- Calories: %d cal/day
- Protein: %dg/day, Carbs: %dg/day, Fat: %dg/day

DAILY CALORIE LOG (%d/7 days logged):
%s

DAILY MACRO LOG:
%s

EXERCISE: %d days with exercise, %d total minutes

WEIGHT: %s

%s

Write a weekly review covering these areas:
1. CALORIE TRENDS: Which days were over/under goal? Any pattern (weekday vs weekend)?
2. MACRO CONSISTENCY: Are protein/carbs/fat hitting targets consistently or swinging?
3. EXERCISE: Frequency and whether it's consistent through the week.
4. WEIGHT TREND: If logged, note the direction and whether it aligns with goals.
5. TOP SUGGESTION: One specific, actionable change for next week based on the patterns you see.

Keep it to 5-8 sentences. Be warm but specific — reference actual numbers and days. Do not use markdown formatting or bullet points.`,
		userData.CalorieGoal,
		userData.ProteinTarget, userData.CarbTarget, userData.FatTarget,
		daysLogged, calorieLog,
		macroLog,
		exerciseDays, weekLogs.TotalExerciseMinutes,
		weightLine,
		streakLine)
}

func welcomeMessagePrompt(data OnboardingData) string {
	return fmt.Sprintf(`You are NutriTrack, a friendly nutrition tracking assistant. Write a personalized welcome message (2-3 sentences) for a new user who just set up their profile.

Their goals: %d calories/day, %dg protein, %dg carbs, %dg fat
Activity level: %s
Weight unit preference: %s

Be warm, encouraging, and specific to their goals. Mention one quick tip to get started. Do not use markdown formatting.`,
		data.CalorieGoal, data.ProteinTarget, data.CarbTarget, data.FatTarget,
		data.ActivityLevel, data.WeightUnit)
}

func emptyStateMessagePrompt(data OnboardingData) string {
	return fmt.Sprintf(`You are NutriTrack, a friendly nutrition tracking assistant. Write a brief motivating message (1-2 sentences) to encourage a user to log their first meal.

Their calorie goal: %d cal/day
Activity level: %s

Be encouraging and suggest they start by logging what they had for their most recent meal. Do not use markdown formatting.`,
		data.CalorieGoal, data.ActivityLevel)
}
