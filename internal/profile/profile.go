// Package profile holds the level-points and streak rules applied when a
// practice session completes.
package profile

import (
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// Points formula constants.
const (
	pointsPerCorrect = 8
	completionBonus  = 20
	streakBonusCap   = 30
)

// AdvanceStreak applies the consecutive-day rule for an activity on the
// given day (YYYY-MM-DD): a same-day repeat keeps the streak, exactly one
// day after the last activity increments it, any other gap resets it to 1.
func AdvanceStreak(p *store.Profile, day string) {
	switch {
	case p.LastActiveDay == day && p.Streak > 0:
		// Same-day repeat, streak unchanged.
	case p.LastActiveDay != "" && store.NextDay(p.LastActiveDay) == day:
		p.Streak++
	default:
		p.Streak = 1
	}
	p.LastActiveDay = day
}

// GainedPoints computes the points awarded for a completed session.
func GainedPoints(correctCount, streak int) int {
	bonus := streak * 2
	if bonus > streakBonusCap {
		bonus = streakBonusCap
	}
	return correctCount*pointsPerCorrect + completionBonus + bonus
}
