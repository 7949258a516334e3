package profile

import (
	"testing"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

func TestAdvanceStreak(t *testing.T) {
	p := &store.Profile{StudentID: "stu"}

	AdvanceStreak(p, "2026-03-09")
	if p.Streak != 1 {
		t.Fatalf("first activity: streak = %d, want 1", p.Streak)
	}

	AdvanceStreak(p, "2026-03-10")
	if p.Streak != 2 {
		t.Fatalf("next-day activity: streak = %d, want 2", p.Streak)
	}

	AdvanceStreak(p, "2026-03-10")
	if p.Streak != 2 {
		t.Fatalf("same-day repeat: streak = %d, want 2", p.Streak)
	}

	AdvanceStreak(p, "2026-03-12")
	if p.Streak != 1 {
		t.Fatalf("gap of two days: streak = %d, want 1", p.Streak)
	}
	if p.LastActiveDay != "2026-03-12" {
		t.Errorf("LastActiveDay = %q, want 2026-03-12", p.LastActiveDay)
	}
}

func TestAdvanceStreakAcrossMonth(t *testing.T) {
	p := &store.Profile{StudentID: "stu", Streak: 3, LastActiveDay: "2026-02-28"}
	AdvanceStreak(p, "2026-03-01")
	if p.Streak != 4 {
		t.Errorf("month boundary: streak = %d, want 4", p.Streak)
	}
}

func TestGainedPoints(t *testing.T) {
	tests := []struct {
		correct int
		streak  int
		want    int
	}{
		{0, 1, 22},   // 0*8 + 20 + 2
		{10, 1, 102}, // 80 + 20 + 2
		{10, 2, 104},
		{5, 15, 90},  // bonus capped at 30
		{5, 100, 90}, // still capped
	}
	for _, tt := range tests {
		if got := GainedPoints(tt.correct, tt.streak); got != tt.want {
			t.Errorf("GainedPoints(%d, %d) = %d, want %d", tt.correct, tt.streak, got, tt.want)
		}
	}
}
