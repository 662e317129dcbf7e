package models

import (
	"time"

	"github.com/google/uuid"
)

// Streak tracks consecutive UTC calendar days on which the user logged food.
// LongestStreak >= CurrentStreak holds after every update. The record is
// created when the first food entry is persisted, never by the streak update
// itself.
type Streak struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         string     `gorm:"size:64;not null;uniqueIndex" json:"user_id"`
	CurrentStreak  int        `gorm:"default:0" json:"current_streak"`
	LongestStreak  int        `gorm:"default:0" json:"longest_streak"`
	LastLoggedDate *time.Time `json:"last_logged_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
