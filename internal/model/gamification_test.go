package model

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

func TestUpdateStreakSequence(t *testing.T) {
	// Same day twice, then consecutive, then a two-day gap.
	dates := []string{"2024-03-01", "2024-03-01", "2024-03-02", "2024-03-04"}
	wantStreak := []int{1, 1, 2, 1}

	p := &GamificationProfile{}
	for i, d := range dates {
		p.UpdateStreak(day(d))
		if p.CurrentStreakDays != wantStreak[i] {
			t.Errorf("after %s: streak = %d, want %d", d, p.CurrentStreakDays, wantStreak[i])
		}
	}

	if p.LongestStreakDays != 2 {
		t.Errorf("longest streak = %d, want 2", p.LongestStreakDays)
	}
	if p.LastActivityDate == nil || p.LastActivityDate.Format("2006-01-02") != "2024-03-04" {
		t.Errorf("last activity date not refreshed: %v", p.LastActivityDate)
	}
}

func TestUpdateStreakSameDayRefreshesDate(t *testing.T) {
	p := &GamificationProfile{}
	p.UpdateStreak(day("2024-03-01"))

	// A later timestamp on the same calendar day must not change counters.
	p.UpdateStreak(day("2024-03-01").Add(23 * time.Hour))

	if p.CurrentStreakDays != 1 || p.LongestStreakDays != 1 {
		t.Errorf("same-day repeat changed counters: current=%d longest=%d", p.CurrentStreakDays, p.LongestStreakDays)
	}
	if p.LastActivityDate.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("last activity date = %v", p.LastActivityDate)
	}
}

func TestUpdateStreakLongestIsMonotonic(t *testing.T) {
	p := &GamificationProfile{}
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10", "2024-01-11"} {
		p.UpdateStreak(day(d))
	}
	if p.CurrentStreakDays != 2 {
		t.Errorf("current streak = %d, want 2", p.CurrentStreakDays)
	}
	if p.LongestStreakDays != 3 {
		t.Errorf("longest streak = %d, want 3", p.LongestStreakDays)
	}
}

func TestAddXPAccumulatesHistory(t *testing.T) {
	p := &GamificationProfile{}
	p.AddXP(5, day("2024-01-01"))
	p.AddXP(5, day("2024-01-01"))
	p.AddXP(3, day("2024-01-02"))

	if p.TotalXP != 13 {
		t.Errorf("total XP = %d, want 13", p.TotalXP)
	}
	if got := p.XPHistory["2024-01-01"]; got != 10 {
		t.Errorf("history[2024-01-01] = %d, want 10", got)
	}
	if got := p.XPHistory["2024-01-02"]; got != 3 {
		t.Errorf("history[2024-01-02] = %d, want 3", got)
	}
}

func TestComputeXPIdempotent(t *testing.T) {
	a := &TaskAttempt{IsCorrect: true}
	a.ComputeXP(3)
	if a.XPGained != 30 {
		t.Errorf("XP = %d, want 30", a.XPGained)
	}
	a.ComputeXP(3)
	if a.XPGained != 30 {
		t.Errorf("XP recomputed on second call: %d", a.XPGained)
	}

	wrong := &TaskAttempt{IsCorrect: false}
	wrong.ComputeXP(2)
	if wrong.XPGained != 0 {
		t.Errorf("incorrect attempt awarded XP: %d", wrong.XPGained)
	}
}
