package services

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate   = errors.New("date must be formatted YYYY-MM-DD")
	ErrUserNotFound  = errors.New("user not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrMealNotFound  = errors.New("meal not found")
)

const dateLayout = "2006-01-02"

// entryDate resolves an optional YYYY-MM-DD string to a storage timestamp.
// Explicit dates are pinned to noon UTC so the value never crosses a day
// boundary under timezone conversion; empty means now.
func entryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

// dayRange returns the [start, end) UTC window for an optional YYYY-MM-DD
// string, defaulting to today.
func dayRange(s string) (time.Time, time.Time, error) {
	var day time.Time
	if s == "" {
		now := time.Now().UTC()
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		day = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	}
	return day, day.Add(24 * time.Hour), nil
}
