package services

import (
	"errors"
	"testing"

	"github.com/nutritrack/nutritrack-backend/internal/streak"
)

type stubTracker struct {
	ensureErr error
	updateErr error
	result    streak.Result
	ensured   bool
	updated   bool
}

func (s *stubTracker) Ensure(userID string) error { s.ensured = true; return s.ensureErr }

func (s *stubTracker) Update(userID string) (streak.Result, error) {
	s.updated = true
	return s.result, s.updateErr
}

func TestCountLog_EnsuresBeforeUpdating(t *testing.T) {
	tracker := &stubTracker{result: streak.Result{CurrentStreak: 4, LongestStreak: 9}}

	result, err := countLog(tracker, "user-1")
	if err != nil {
		t.Fatalf("countLog: %v", err)
	}
	if !tracker.ensured || !tracker.updated {
		t.Errorf("ensured = %v, updated = %v, want both", tracker.ensured, tracker.updated)
	}
	if result.CurrentStreak != 4 || result.LongestStreak != 9 {
		t.Errorf("result = %+v", result)
	}
}

func TestCountLog_UpdateFailureSurfaces(t *testing.T) {
	tracker := &stubTracker{updateErr: errors.New("connection reset")}

	result, err := countLog(tracker, "user-1")
	if !errors.Is(err, ErrStreakUpdate) {
		t.Fatalf("err = %v, want ErrStreakUpdate", err)
	}
	if result != (streak.Result{}) {
		t.Errorf("result = %+v, want zero", result)
	}
}

func TestCountLog_EnsureFailureSurfaces(t *testing.T) {
	tracker := &stubTracker{ensureErr: errors.New("connection reset")}

	_, err := countLog(tracker, "user-1")
	if !errors.Is(err, ErrStreakUpdate) {
		t.Fatalf("err = %v, want ErrStreakUpdate", err)
	}
	if tracker.updated {
		t.Error("update must not run when ensure fails")
	}
}
