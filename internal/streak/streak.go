package streak

import (
	"time"
)

// Result is returned from every streak update. Milestone is non-nil only on
// the update that first reaches one of the milestone values.
type Result struct {
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	Milestone     *int `json:"milestone"`
}

var milestones = []int{3, 7, 14, 30, 50, 100}

// dayOf truncates a time to its UTC calendar day (00:00 UTC boundary).
func dayOf(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// advance applies one logging event to a streak state. It returns the new
// counters, whether the record needs persisting (already-counted-today is a
// no-op), and the milestone hit, if any.
func advance(current, longest int, lastLogged *time.Time, now time.Time) (newCurrent, newLongest int, changed bool, milestone *int) {
	today := dayOf(now)
	yesterday := today.Add(-24 * time.Hour)

	if lastLogged != nil && dayOf(*lastLogged).Equal(today) {
		return current, longest, false, nil
	}

	if lastLogged != nil && dayOf(*lastLogged).Equal(yesterday) {
		newCurrent = current + 1
	} else {
		newCurrent = 1
	}

	newLongest = longest
	if newCurrent > newLongest {
		newLongest = newCurrent
	}

	for _, m := range milestones {
		if newCurrent == m {
			v := m
			milestone = &v
			break
		}
	}

	return newCurrent, newLongest, true, milestone
}
