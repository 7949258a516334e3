// Package session plans and runs practice sessions.
package session

import (
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
)

// Mood is the learner's self-reported disposition for a session.
type Mood string

const (
	MoodLow  Mood = "low"
	MoodOK   Mood = "ok"
	MoodHigh Mood = "high"
)

// Source selects where a session draws its units from.
type Source string

const (
	SourceTrack  Source = "track"
	SourceUnit   Source = "unit"
	SourceErrors Source = "errors"
)

// Time-box sizes in minutes.
const (
	TimeBoxShort  = 5
	TimeBoxMedium = 15
	TimeBoxLong   = 30
)

// Item-count bounds per session.
const (
	MinSessionItems = 3
	MaxSessionItems = 25
)

// Config is the learner's requested session shape.
type Config struct {
	SubjectKey string
	Source     Source
	TrackID    string
	UnitID     string
	Mode       catalog.FocusMode
	Mood       Mood
	TimeBoxMin int
	GradeYear  string
}

// Plan is a materializable session blueprint. Templates has exactly the
// target item count; when the candidate pool is smaller the pool is cycled,
// so a plan is never shorter than requested.
type Plan struct {
	SubjectKey string
	UnitIDs    []string
	Mode       catalog.FocusMode
	Mood       Mood
	TimeBoxMin int
	Source     Source
	TrackID    string
	Templates  []catalog.ItemTemplate
}

// ItemCount maps (mood, time box) onto a session length. The two hand-tuned
// extremes are exact; everything else follows base(timeBox) + mood
// adjustment, clamped to [MinSessionItems, MaxSessionItems].
func ItemCount(mood Mood, timeBoxMin int) int {
	if mood == MoodLow && timeBoxMin <= TimeBoxShort {
		return 4
	}
	if mood == MoodHigh && timeBoxMin >= TimeBoxLong {
		return 20
	}

	var base int
	switch {
	case timeBoxMin <= TimeBoxShort:
		base = 5
	case timeBoxMin <= TimeBoxMedium:
		base = 10
	default:
		base = 16
	}

	switch mood {
	case MoodLow:
		base--
	case MoodHigh:
		base += 3
	}

	if base < MinSessionItems {
		return MinSessionItems
	}
	if base > MaxSessionItems {
		return MaxSessionItems
	}
	return base
}
