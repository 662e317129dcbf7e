package services

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/nutritrack/nutritrack-backend/internal/llm"
	"github.com/nutritrack/nutritrack-backend/internal/models"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"gorm.io/gorm"
)

type DigestService struct {
	db      *gorm.DB
	streaks *streak.Service
	llm     llm.Provider
}

func NewDigestService(db *gorm.DB, streaks *streak.Service, provider llm.Provider) *DigestService {
	return &DigestService{db: db, streaks: streaks, llm: provider}
}

// History returns the most recent digests, newest first.
func (s *DigestService) History(userID string) ([]models.Digest, error) {
	var digests []models.Digest
	err := s.db.Scopes(identity.ForUser(userID)).
		Order("date DESC").
		Limit(20).
		Find(&digests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list digests: %w", err)
	}
	return digests, nil
}

// Generate builds the trailing week of logs, asks the model for a narrative
// digest, and persists it. A model failure falls back to a plain summary so
// the endpoint always produces something.
func (s *DigestService) Generate(userID string) (*models.Digest, error) {
	week, err := s.collectWeek(userID)
	if err != nil {
		return nil, err
	}

	userData := llm.UserData{ActivityLevel: "moderate"}
	var settings models.UserSettings
	if err := s.db.Where("user_id = ?", userID).First(&settings).Error; err == nil {
		userData = llm.UserData{
			CalorieGoal:   settings.CalorieGoal,
			ProteinTarget: settings.ProteinTarget,
			CarbTarget:    settings.CarbTarget,
			FatTarget:     settings.FatTarget,
			ActivityLevel: settings.ActivityLevel,
		}
	}
	if stored, err := s.streaks.Get(userID); err == nil && stored != nil {
		userData.CurrentStreak = stored.CurrentStreak
	}

	content, err := s.llm.GenerateWeeklyDigest(userData, week)
	if err != nil {
		slog.Warn("digest generation failed, using fallback summary", "user_id", userID, "error", err)
		content = fallbackDigest(week)
	}

	digest := models.Digest{
		UserID:  userID,
		Type:    "weekly",
		Date:    time.Now().UTC(),
		Content: content,
	}
	if err := s.db.Create(&digest).Error; err != nil {
		return nil, fmt.Errorf("failed to save digest: %w", err)
	}
	return &digest, nil
}

// collectWeek assembles the last 7 calendar days of logs with the aggregates
// the digest prompt expects.
func (s *DigestService) collectWeek(userID string) (llm.WeekLogs, error) {
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	start := end.AddDate(0, 0, -7)

	var foods []models.FoodEntry
	if err := s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").Find(&foods).Error; err != nil {
		return llm.WeekLogs{}, fmt.Errorf("failed to load food entries: %w", err)
	}
	var exercises []models.ExerciseEntry
	if err := s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").Find(&exercises).Error; err != nil {
		return llm.WeekLogs{}, fmt.Errorf("failed to load exercise entries: %w", err)
	}
	var weights []models.WeightEntry
	if err := s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").Find(&weights).Error; err != nil {
		return llm.WeekLogs{}, fmt.Errorf("failed to load weight entries: %w", err)
	}
	var waters []models.WaterEntry
	if err := s.db.Scopes(identity.ForUser(userID)).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").Find(&waters).Error; err != nil {
		return llm.WeekLogs{}, fmt.Errorf("failed to load water entries: %w", err)
	}

	days := make([]llm.DayLogs, 7)
	for i := range days {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := dayStart.Add(24 * time.Hour)
		day := llm.DayLogs{Date: dayStart.Format(dateLayout)}

		for _, f := range foods {
			if !f.Date.Before(dayStart) && f.Date.Before(dayEnd) {
				day.Foods = append(day.Foods, llm.DayFood{
					FoodName: f.FoodName,
					Calories: f.Calories,
					Protein:  f.Protein,
					Carbs:    f.Carbs,
					Fat:      f.Fat,
					MealType: f.MealType,
				})
			}
		}
		for _, e := range exercises {
			if !e.Date.Before(dayStart) && e.Date.Before(dayEnd) {
				day.Exercises = append(day.Exercises, llm.DayExercise{
					Activity:          e.Activity,
					DurationMinutes:   e.DurationMinutes,
					EstimatedCalories: e.EstimatedCalories,
				})
			}
		}
		for _, w := range weights {
			if !w.Date.Before(dayStart) && w.Date.Before(dayEnd) {
				v := w.Weight
				day.Weight = &v
			}
		}
		var waterTotal float64
		for _, w := range waters {
			if !w.Date.Before(dayStart) && w.Date.Before(dayEnd) {
				waterTotal += w.Ounces
			}
		}
		if waterTotal > 0 {
			day.WaterOunces = &waterTotal
		}
		days[i] = day
	}

	week := llm.WeekLogs{Days: days}

	// Average calories only over days that have food logged.
	loggedDays, totalCalories := 0, 0.0
	waterDays, totalWater := 0, 0.0
	for _, d := range days {
		if len(d.Foods) > 0 {
			loggedDays++
			for _, f := range d.Foods {
				totalCalories += f.Calories
			}
		}
		for _, e := range d.Exercises {
			week.TotalExerciseMinutes += e.DurationMinutes
		}
		if d.WaterOunces != nil {
			waterDays++
			totalWater += *d.WaterOunces
		}
	}
	if loggedDays > 0 {
		week.AverageCalories = int(math.Round(totalCalories / float64(loggedDays)))
	}
	if waterDays > 0 {
		avg := int(math.Round(totalWater / float64(waterDays)))
		week.AverageWaterOz = &avg
	}
	if len(weights) >= 2 {
		change := weights[len(weights)-1].Weight - weights[0].Weight
		week.WeightChange = &change
	}
	return week, nil
}

func fallbackDigest(week llm.WeekLogs) string {
	loggedDays := 0
	for _, d := range week.Days {
		if len(d.Foods) > 0 {
			loggedDays++
		}
	}
	summary := fmt.Sprintf(
		"This week you logged food on %d of 7 days, averaging %d calories on logged days, with %d minutes of exercise.",
		loggedDays, week.AverageCalories, week.TotalExerciseMinutes)
	if week.WeightChange != nil {
		summary += fmt.Sprintf(" Weight change over the week: %+.1f.", *week.WeightChange)
	}
	return summary
}
