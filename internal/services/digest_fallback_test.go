package services

import (
	"strings"
	"testing"

	"github.com/nutritrack/nutritrack-backend/internal/llm"
)

func TestFallbackDigest_Summary(t *testing.T) {
	change := -1.4
	week := llm.WeekLogs{
		Days: []llm.DayLogs{
			{Foods: []llm.DayFood{{FoodName: "Oats", Calories: 300}}},
			{},
			{Foods: []llm.DayFood{{FoodName: "Rice", Calories: 500}}},
			{}, {}, {}, {},
		},
		AverageCalories:      1850,
		TotalExerciseMinutes: 90,
		WeightChange:         &change,
	}

	got := fallbackDigest(week)
	if !strings.Contains(got, "2 of 7 days") {
		t.Errorf("summary should count logged days: %q", got)
	}
	if !strings.Contains(got, "1850") {
		t.Errorf("summary should include average calories: %q", got)
	}
	if !strings.Contains(got, "90 minutes") {
		t.Errorf("summary should include exercise minutes: %q", got)
	}
	if !strings.Contains(got, "-1.4") {
		t.Errorf("summary should include weight change: %q", got)
	}
}

func TestFallbackDigest_NoWeightChange(t *testing.T) {
	got := fallbackDigest(llm.WeekLogs{Days: make([]llm.DayLogs, 7)})
	if strings.Contains(got, "Weight change") {
		t.Errorf("no weight change line expected: %q", got)
	}
}
