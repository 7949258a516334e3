package store

import (
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
)

// SessionStatus is the practice-session state machine.
// PLANNED → IN_PROGRESS → COMPLETED | ABANDONED; both ends are terminal.
type SessionStatus string

const (
	SessionPlanned    SessionStatus = "PLANNED"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionAbandoned  SessionStatus = "ABANDONED"
)

// ProgressStatus is the coarse label derived from mastery percent.
type ProgressStatus string

const (
	ProgressNotStarted     ProgressStatus = "NOT_STARTED"
	ProgressStarted        ProgressStatus = "STARTED"
	ProgressInProgress     ProgressStatus = "IN_PROGRESS"
	ProgressAlmostMastered ProgressStatus = "ALMOST_MASTERED"
	ProgressMastered       ProgressStatus = "MASTERED"
)

// StudentTrack is a learner-chosen bundle of units. Immutable once created.
type StudentTrack struct {
	ID         string            `json:"id"`
	StudentID  string            `json:"studentId"`
	Name       string            `json:"name"`
	SubjectKey string            `json:"subjectKey"`
	UnitIDs    []string          `json:"unitIds"`
	Mode       catalog.FocusMode `json:"mode"`
	Objective  string            `json:"objective,omitempty"`
	CreatedAt  string            `json:"createdAt"`
}

// PracticeSession is one bounded practice run.
type PracticeSession struct {
	ID            string            `json:"id"`
	StudentID     string            `json:"studentId"`
	SubjectKey    string            `json:"subjectKey"`
	UnitIDs       []string          `json:"unitIds"`
	Mode          catalog.FocusMode `json:"mode"`
	Mood          string            `json:"mood"`
	TimeBoxMin    int               `json:"timeBoxMin"`
	Source        string            `json:"source"`
	Status        SessionStatus     `json:"status"`
	TrackID       string            `json:"trackId,omitempty"`
	StartedAt     string            `json:"startedAt,omitempty"`
	EndedAt       string            `json:"endedAt,omitempty"`
	PlanItemCount int               `json:"planItemCount"`
	CreatedAt     string            `json:"createdAt"`
}

// PracticeItem is a session-scoped copy of a catalog template. Copying
// decouples history from later template edits. Immutable once created.
type PracticeItem struct {
	ID               string            `json:"id"`
	SessionID        string            `json:"sessionId"`
	TemplateID       string            `json:"templateId"`
	UnitID           string            `json:"unitId"`
	TopicID          string            `json:"topicId"`
	Kind             catalog.ItemKind  `json:"kind"`
	Mode             catalog.FocusMode `json:"mode"`
	Difficulty       int               `json:"difficulty"`
	Prompt           string            `json:"prompt"`
	Options          []string          `json:"options,omitempty"`
	CorrectAnswer    string            `json:"correctAnswer"`
	AcceptedKeywords []string          `json:"acceptedKeywords,omitempty"`
	Explanation      string            `json:"explanation"`
	ErrorKind        catalog.ErrorKind `json:"errorKind"`
}

// PracticeAttempt is one graded answer. At most one attempt is kept per
// (session, item) pair; a resubmission replaces the earlier record.
type PracticeAttempt struct {
	ID          string            `json:"id"`
	SessionID   string            `json:"sessionId"`
	ItemID      string            `json:"itemId"`
	Answer      string            `json:"answer"`
	Correct     bool              `json:"correct"`
	TimeSpentMs int               `json:"timeSpentMs"`
	ErrorKind   catalog.ErrorKind `json:"errorKind,omitempty"`
	CreatedAt   string            `json:"createdAt"`
}

// MasteryResult is one formal mastery-quiz outcome. Append-only.
type MasteryResult struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	UnitID    string `json:"unitId"`
	Score     int    `json:"score"`
	Passed    bool   `json:"passed"`
	CreatedAt string `json:"createdAt"`
}

// UnitProgress is the cached result of the progress aggregation for one
// (student, unit). Rows here may be stale; fresh computations overwrite.
type UnitProgress struct {
	StudentID       string         `json:"studentId"`
	UnitID          string         `json:"unitId"`
	MasteryPercent  int            `json:"masteryPercent"`
	Status          ProgressStatus `json:"status"`
	LastPracticedAt string         `json:"lastPracticedAt,omitempty"`
	UpdatedAt       string         `json:"updatedAt"`
}

// LessonFocus attaches a unit/topic/comment to an external lesson id.
// At most one live record per (student, lesson).
type LessonFocus struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	LessonID  string `json:"lessonId"`
	UnitID    string `json:"unitId"`
	TopicID   string `json:"topicId,omitempty"`
	Comment   string `json:"comment,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

// Profile holds a student's cumulative points and consecutive-day streak.
type Profile struct {
	StudentID     string `json:"studentId"`
	Points        int    `json:"points"`
	Streak        int    `json:"streak"`
	LastActiveDay string `json:"lastActiveDay,omitempty"`
}

// Document is the single serialized value holding all knowledge-engine
// state for an installation. Every mutation flows through the gateway's
// read-transform-write primitive, so readers always observe a document
// written in full.
type Document struct {
	CustomUnits    []catalog.Unit    `json:"customUnits,omitempty"`
	CustomTopics   []catalog.Topic   `json:"customTopics,omitempty"`
	Tracks         []StudentTrack    `json:"tracks,omitempty"`
	Sessions       []PracticeSession `json:"sessions,omitempty"`
	Items          []PracticeItem    `json:"items,omitempty"`
	Attempts       []PracticeAttempt `json:"attempts,omitempty"`
	MasteryResults []MasteryResult   `json:"masteryResults,omitempty"`
	Progress       []UnitProgress    `json:"progress,omitempty"`
	LessonFocus    []LessonFocus     `json:"lessonFocus,omitempty"`
	Profiles       []Profile         `json:"profiles,omitempty"`
}

// NewDocument returns the empty default document used both for first runs
// and for recovery from a malformed blob.
func NewDocument() *Document {
	return &Document{}
}

// SessionByID finds a session, optionally scoped to a student. An empty
// studentID matches any owner.
func (d *Document) SessionByID(id, studentID string) *PracticeSession {
	for i := range d.Sessions {
		s := &d.Sessions[i]
		if s.ID == id && (studentID == "" || s.StudentID == studentID) {
			return s
		}
	}
	return nil
}

// ItemsBySession returns the materialized items of a session in plan order.
func (d *Document) ItemsBySession(sessionID string) []PracticeItem {
	var out []PracticeItem
	for _, it := range d.Items {
		if it.SessionID == sessionID {
			out = append(out, it)
		}
	}
	return out
}

// ItemInSession finds one item within one session.
func (d *Document) ItemInSession(sessionID, itemID string) *PracticeItem {
	for i := range d.Items {
		it := &d.Items[i]
		if it.SessionID == sessionID && it.ID == itemID {
			return it
		}
	}
	return nil
}

// AttemptsBySession returns the retained attempts of a session.
func (d *Document) AttemptsBySession(sessionID string) []PracticeAttempt {
	var out []PracticeAttempt
	for _, a := range d.Attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out
}

// UpsertAttempt stores an attempt, dropping any prior attempt for the same
// (session, item) pair. Last answer wins.
func (d *Document) UpsertAttempt(a PracticeAttempt) {
	kept := d.Attempts[:0]
	for _, old := range d.Attempts {
		if old.SessionID == a.SessionID && old.ItemID == a.ItemID {
			continue
		}
		kept = append(kept, old)
	}
	d.Attempts = append(kept, a)
}

// UpsertProgress replaces the cached progress row for (student, unit).
func (d *Document) UpsertProgress(p UnitProgress) {
	for i := range d.Progress {
		if d.Progress[i].StudentID == p.StudentID && d.Progress[i].UnitID == p.UnitID {
			d.Progress[i] = p
			return
		}
	}
	d.Progress = append(d.Progress, p)
}

// ProgressFor returns the cached progress row for (student, unit), if any.
func (d *Document) ProgressFor(studentID, unitID string) *UnitProgress {
	for i := range d.Progress {
		if d.Progress[i].StudentID == studentID && d.Progress[i].UnitID == unitID {
			return &d.Progress[i]
		}
	}
	return nil
}

// UpsertLessonFocus replaces the live record for (student, lesson).
func (d *Document) UpsertLessonFocus(f LessonFocus) {
	for i := range d.LessonFocus {
		if d.LessonFocus[i].StudentID == f.StudentID && d.LessonFocus[i].LessonID == f.LessonID {
			d.LessonFocus[i] = f
			return
		}
	}
	d.LessonFocus = append(d.LessonFocus, f)
}

// EnsureProfile returns the student's profile, creating it if absent.
func (d *Document) EnsureProfile(studentID string) *Profile {
	for i := range d.Profiles {
		if d.Profiles[i].StudentID == studentID {
			return &d.Profiles[i]
		}
	}
	d.Profiles = append(d.Profiles, Profile{StudentID: studentID})
	return &d.Profiles[len(d.Profiles)-1]
}

// TrackByID finds a track owned by the student.
func (d *Document) TrackByID(id, studentID string) *StudentTrack {
	for i := range d.Tracks {
		t := &d.Tracks[i]
		if t.ID == id && (studentID == "" || t.StudentID == studentID) {
			return t
		}
	}
	return nil
}

// View builds a catalog view including this learner document's custom
// units and topics.
func (d *Document) View() catalog.View {
	return catalog.NewView(d.CustomUnits, d.CustomTopics)
}
