// Package progress computes per-unit mastery from attempt history blended
// with formal mastery-quiz results, and ranks the learner's weak topics.
package progress

import (
	"math"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// Blend weights and thresholds for the mastery computation.
const (
	attemptWeight = 0.6
	quizWeight    = 0.4

	// PassScore is the mastery-quiz score at or above which a quiz passes.
	PassScore = 80

	// passFloor is the minimum blended percent once a quiz has passed.
	passFloor = 90
)

// StatusFor derives the coarse progress label. No attempts at all override
// every threshold.
func StatusFor(masteryPercent, totalAttempts int) store.ProgressStatus {
	if totalAttempts == 0 {
		return store.ProgressNotStarted
	}
	switch {
	case masteryPercent < 25:
		return store.ProgressStarted
	case masteryPercent < 65:
		return store.ProgressInProgress
	case masteryPercent < 85:
		return store.ProgressAlmostMastered
	default:
		return store.ProgressMastered
	}
}

// ComputeUnit derives a fresh progress record for (student, unit) from the
// given document snapshot. Pure: it reads the snapshot and touches nothing.
func ComputeUnit(doc *store.Document, studentID, unitID string, now string) store.UnitProgress {
	ownedSessions := make(map[string]bool)
	for _, s := range doc.Sessions {
		if s.StudentID == studentID {
			ownedSessions[s.ID] = true
		}
	}
	itemUnit := make(map[string]string, len(doc.Items))
	for _, it := range doc.Items {
		itemUnit[it.ID] = it.UnitID
	}

	total, correct := 0, 0
	lastPracticed := ""
	for _, a := range doc.Attempts {
		if !ownedSessions[a.SessionID] || itemUnit[a.ItemID] != unitID {
			continue
		}
		total++
		if a.Correct {
			correct++
		}
		if a.CreatedAt > lastPracticed {
			lastPracticed = a.CreatedAt
		}
	}

	rawPercent := 0
	if total > 0 {
		rawPercent = roundPercent(correct, total)
	}

	percent := rawPercent
	if latest := latestMasteryResult(doc, studentID, unitID); latest != nil {
		percent = int(math.Round(float64(rawPercent)*attemptWeight + float64(latest.Score)*quizWeight))
		if latest.Passed && percent < passFloor {
			percent = passFloor
		}
	}
	percent = clampPercent(percent)

	return store.UnitProgress{
		StudentID:       studentID,
		UnitID:          unitID,
		MasteryPercent:  percent,
		Status:          StatusFor(percent, total),
		LastPracticedAt: lastPracticed,
		UpdatedAt:       now,
	}
}

// latestMasteryResult finds the most recent quiz result for (student, unit).
func latestMasteryResult(doc *store.Document, studentID, unitID string) *store.MasteryResult {
	var latest *store.MasteryResult
	for i := range doc.MasteryResults {
		r := &doc.MasteryResults[i]
		if r.StudentID != studentID || r.UnitID != unitID {
			continue
		}
		if latest == nil || r.CreatedAt > latest.CreatedAt {
			latest = r
		}
	}
	return latest
}

func roundPercent(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
