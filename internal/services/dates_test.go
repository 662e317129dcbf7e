package services

import (
	"errors"
	"testing"
	"time"
)

func TestEntryDate_ExplicitDatePinnedToNoonUTC(t *testing.T) {
	got, err := entryDate("2026-03-15")
	if err != nil {
		t.Fatalf("entryDate: %v", err)
	}
	want := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEntryDate_EmptyMeansNow(t *testing.T) {
	before := time.Now().UTC()
	got, err := entryDate("")
	if err != nil {
		t.Fatalf("entryDate: %v", err)
	}
	if got.Before(before) || got.After(time.Now().UTC()) {
		t.Errorf("empty date should resolve to now, got %v", got)
	}
}

func TestEntryDate_Malformed(t *testing.T) {
	for _, s := range []string{"15-03-2026", "2026/03/15", "yesterday"} {
		if _, err := entryDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("entryDate(%q) err = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestDayRange_CoversExactlyOneDay(t *testing.T) {
	start, end, err := dayRange("2026-03-15")
	if err != nil {
		t.Fatalf("dayRange: %v", err)
	}
	if start != time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("window = %v, want 24h", end.Sub(start))
	}

	// Noon-pinned entry dates always fall inside their day's window.
	stored, _ := entryDate("2026-03-15")
	if stored.Before(start) || !stored.Before(end) {
		t.Errorf("entry date %v outside [%v, %v)", stored, start, end)
	}
}

func TestDayRange_DefaultsToToday(t *testing.T) {
	start, end, err := dayRange("")
	if err != nil {
		t.Fatalf("dayRange: %v", err)
	}
	now := time.Now().UTC()
	if now.Before(start) || !now.Before(end) {
		t.Errorf("now %v outside today's window [%v, %v)", now, start, end)
	}
}
