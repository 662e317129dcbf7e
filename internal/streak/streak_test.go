package streak

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAdvance_FirstLogStartsAtOne(t *testing.T) {
	current, longest, changed, milestone := advance(0, 0, nil, day("2025-03-10"))

	if current != 1 || longest != 1 {
		t.Fatalf("expected 1/1, got %d/%d", current, longest)
	}
	if !changed {
		t.Error("expected a persisted change on first log")
	}
	if milestone != nil {
		t.Errorf("expected no milestone, got %d", *milestone)
	}
}

func TestAdvance_ConsecutiveDaysIncrement(t *testing.T) {
	var lastLogged *time.Time
	current, longest := 0, 0

	for i := 0; i < 5; i++ {
		now := day("2025-03-10").AddDate(0, 0, i)
		var changed bool
		current, longest, changed, _ = advance(current, longest, lastLogged, now)
		if !changed {
			t.Fatalf("day %d: expected change", i)
		}
		d := dayOf(now)
		lastLogged = &d
	}

	if current != 5 {
		t.Errorf("expected streak of 5 after 5 consecutive days, got %d", current)
	}
	if longest != 5 {
		t.Errorf("expected longest of 5, got %d", longest)
	}
}

func TestAdvance_SameDayIsNoOp(t *testing.T) {
	logged := day("2025-03-10")
	// Second log later the same day, wall clock well past midnight UTC
	now := logged.Add(20 * time.Hour)

	current, longest, changed, milestone := advance(4, 6, &logged, now)

	if changed {
		t.Error("same-day log must not persist anything")
	}
	if current != 4 || longest != 6 {
		t.Errorf("expected unchanged 4/6, got %d/%d", current, longest)
	}
	if milestone != nil {
		t.Errorf("same-day log must not fire a milestone, got %d", *milestone)
	}
}

func TestAdvance_MissedDayResets(t *testing.T) {
	logged := day("2025-03-10")
	now := day("2025-03-12") // skipped the 11th

	current, longest, changed, _ := advance(8, 8, &logged, now)

	if !changed {
		t.Fatal("expected a persisted change")
	}
	if current != 1 {
		t.Errorf("expected reset to 1, got %d", current)
	}
	if longest != 8 {
		t.Errorf("longest must survive a reset, got %d", longest)
	}
}

func TestAdvance_LongestNeverBelowCurrent(t *testing.T) {
	logged := day("2025-03-10")
	now := day("2025-03-11")

	current, longest, _, _ := advance(7, 7, &logged, now)

	if current != 8 || longest != 8 {
		t.Errorf("expected 8/8, got %d/%d", current, longest)
	}
	if longest < current {
		t.Errorf("invariant violated: longest %d < current %d", longest, current)
	}
}

func TestAdvance_MilestonesFireOncePerCrossing(t *testing.T) {
	logged := day("2025-03-10")
	now := day("2025-03-11")

	// Crossing into 3 fires the milestone
	current, _, _, milestone := advance(2, 2, &logged, now)
	if current != 3 {
		t.Fatalf("expected streak 3, got %d", current)
	}
	if milestone == nil || *milestone != 3 {
		t.Fatal("expected milestone 3 on the crossing")
	}

	// The next distinct day (streak 4) is silent
	d := dayOf(now)
	current, _, _, milestone = advance(current, 3, &d, now.AddDate(0, 0, 1))
	if current != 4 {
		t.Fatalf("expected streak 4, got %d", current)
	}
	if milestone != nil {
		t.Errorf("expected no milestone at streak 4, got %d", *milestone)
	}
}

func TestAdvance_AllMilestoneValues(t *testing.T) {
	for _, want := range []int{3, 7, 14, 30, 50, 100} {
		logged := day("2025-03-10")
		now := day("2025-03-11")
		_, _, _, milestone := advance(want-1, want-1, &logged, now)
		if milestone == nil || *milestone != want {
			t.Errorf("expected milestone %d", want)
		}
	}
}

func TestAdvance_TimestampWithinDayTruncates(t *testing.T) {
	// lastLoggedDate stored with a time-of-day component still counts as
	// that calendar day
	logged := day("2025-03-10").Add(14*time.Hour + 30*time.Minute)
	now := day("2025-03-11").Add(9 * time.Hour)

	current, _, changed, _ := advance(2, 2, &logged, now)

	if !changed || current != 3 {
		t.Errorf("expected increment to 3, got %d (changed=%v)", current, changed)
	}
}
