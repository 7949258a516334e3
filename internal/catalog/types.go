package catalog

// Subject is a top-level content domain.
type Subject struct {
	Key  string
	Name string
	Icon string
}

// GradeRange is the inclusive grade span a unit applies to.
// A zero Max means the range is open-ended.
type GradeRange struct {
	Min int
	Max int
}

// Contains reports whether grade falls inside the range.
// Grade 0 means "unknown grade" and matches every range.
func (r GradeRange) Contains(grade int) bool {
	if grade == 0 {
		return true
	}
	if grade < r.Min {
		return false
	}
	return r.Max == 0 || grade <= r.Max
}

// Unit is a coherent chunk of curriculum within a subject.
type Unit struct {
	ID            string     `json:"id"`
	SubjectKey    string     `json:"subjectKey"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Grades        GradeRange `json:"-"`
	Prerequisites []string   `json:"prerequisites,omitempty"`
	Custom        bool       `json:"custom,omitempty"`
}

// Topic is a sub-concept within a unit, the finest granularity
// at which weak-area tracking happens.
type Topic struct {
	ID          string `json:"id"`
	UnitID      string `json:"unitId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Custom      bool   `json:"custom,omitempty"`
}

// FocusMode selects the practice difficulty tier.
type FocusMode string

const (
	ModeN1    FocusMode = "N1"
	ModeN2    FocusMode = "N2"
	ModeMixed FocusMode = "MIXED"
)

// ItemKind is the closed set of practice-item shapes.
type ItemKind string

const (
	KindTrueFalse      ItemKind = "true_false"
	KindMultipleChoice ItemKind = "multiple_choice"
	KindShortAnswer    ItemKind = "short_answer"
)

// ErrorKind classifies what a wrong answer most likely reveals.
type ErrorKind string

const (
	ErrorConcept     ErrorKind = "concept"
	ErrorCalculation ErrorKind = "calculation"
)

// ItemTemplate is a seeded practice question. Sessions copy templates into
// session-scoped items, so editing a template never rewrites history.
type ItemTemplate struct {
	ID               string
	UnitID           string
	TopicID          string
	Kind             ItemKind
	Mode             FocusMode
	Difficulty       int
	Prompt           string
	Options          []string
	CorrectAnswer    string
	AcceptedKeywords []string
	Explanation      string
	ErrorKind        ErrorKind
}

// TrackTemplate is a curated bundle of units recommended as a path.
type TrackTemplate struct {
	ID         string
	SubjectKey string
	Name       string
	Objective  string
	UnitIDs    []string
}

// Insight is a cross-subject pedagogical tip, scored for relevance
// against the learner's active subjects and units.
type Insight struct {
	ID          string
	Title       string
	Body        string
	SubjectKeys []string
	UnitIDs     []string
}
