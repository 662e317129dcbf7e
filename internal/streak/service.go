package streak

import (
	"errors"
	"fmt"
	"time"

	"github.com/nutritrack/nutritrack-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service maintains per-user logging streaks.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Ensure creates the streak record for a user if it does not exist yet.
// Update never creates records, so callers that persist a first food entry
// must call this before updating.
func (s *Service) Ensure(userID string) error {
	streak := models.Streak{UserID: userID}
	return s.db.Where("user_id = ?", userID).FirstOrCreate(&streak).Error
}

// Get returns the stored streak record, or nil when none exists. Absence is
// a valid zero state, not an error.
func (s *Service) Get(userID string) (*models.Streak, error) {
	var streak models.Streak
	err := s.db.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}
	return &streak, nil
}

// Update applies one food-logging event to the user's streak. It is
// idempotent for the day: a second call on the same UTC day returns the
// stored values with a nil milestone and writes nothing. When no record
// exists it returns a zero result without creating one.
//
// The read-modify-write runs in a transaction holding a row lock, and the
// write is additionally conditioned on the previously read last_logged_date
// so concurrent logging events cannot double-increment.
func (s *Service) Update(userID string) (Result, error) {
	var result Result

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var streak models.Streak
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&streak).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = Result{CurrentStreak: 0, LongestStreak: 0, Milestone: nil}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find streak: %w", err)
		}

		now := s.now()
		newCurrent, newLongest, changed, milestone := advance(
			streak.CurrentStreak, streak.LongestStreak, streak.LastLoggedDate, now)

		if !changed {
			result = Result{
				CurrentStreak: streak.CurrentStreak,
				LongestStreak: streak.LongestStreak,
				Milestone:     nil,
			}
			return nil
		}

		today := dayOf(now)
		write := tx.Model(&models.Streak{}).
			Where("user_id = ?", userID)
		if streak.LastLoggedDate == nil {
			write = write.Where("last_logged_date IS NULL")
		} else {
			write = write.Where("last_logged_date = ?", *streak.LastLoggedDate)
		}
		res := write.Updates(map[string]interface{}{
			"current_streak":   newCurrent,
			"longest_streak":   newLongest,
			"last_logged_date": today,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update streak: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Lost a race: someone else counted today already.
			result = Result{
				CurrentStreak: streak.CurrentStreak,
				LongestStreak: streak.LongestStreak,
				Milestone:     nil,
			}
			return nil
		}

		result = Result{
			CurrentStreak: newCurrent,
			LongestStreak: newLongest,
			Milestone:     milestone,
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
