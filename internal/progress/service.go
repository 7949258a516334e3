package progress

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/evaluate"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// DefaultQuizLength is the question count of a mastery quiz.
const DefaultQuizLength = 20

// Question is one mastery-quiz question handed to the caller. It carries
// no answer key; grading looks the template up again by id.
type Question struct {
	TemplateID string
	UnitID     string
	TopicID    string
	Kind       catalog.ItemKind
	Prompt     string
	Options    []string
}

// Outcome is the result of a submitted mastery quiz.
type Outcome struct {
	Result     store.MasteryResult
	Progress   store.UnitProgress
	WeakTopics []WeakTopic
}

// Service exposes progress reads and the mastery-quiz flow.
type Service struct {
	gw    *store.Gateway
	clock store.Clock
	idGen func() string
	log   *zap.Logger
}

// NewService wires a progress service with production defaults.
func NewService(gw *store.Gateway, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gw: gw, clock: store.NowISO, idGen: uuid.NewString, log: log}
}

// WithClock overrides the clock, for tests.
func (s *Service) WithClock(c store.Clock) *Service { s.clock = c; return s }

// WithIDGen overrides the id generator, for tests.
func (s *Service) WithIDGen(g func() string) *Service { s.idGen = g; return s }

// UnitProgress returns the cached progress row for (student, unit),
// computing and persisting one on first read. Guests get an empty
// NOT_STARTED record.
func (s *Service) UnitProgress(ctx context.Context, studentID, unitID string) (store.UnitProgress, error) {
	if studentID == "" {
		return store.UnitProgress{UnitID: unitID, Status: store.ProgressNotStarted}, nil
	}
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return store.UnitProgress{}, err
	}
	if cached := doc.ProgressFor(studentID, unitID); cached != nil {
		return *cached, nil
	}

	var fresh store.UnitProgress
	err = s.gw.Update(ctx, func(d *store.Document) error {
		fresh = ComputeUnit(d, studentID, unitID, s.clock())
		d.UpsertProgress(fresh)
		return nil
	})
	if err != nil {
		return store.UnitProgress{}, err
	}
	return fresh, nil
}

// WeakTopics returns the student's current weak-topic ranking. Guests get
// an empty ranking.
func (s *Service) WeakTopics(ctx context.Context, studentID string, limit int) ([]WeakTopic, error) {
	if studentID == "" {
		return nil, nil
	}
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}
	return WeakTopicsFor(doc, studentID, limit), nil
}

// Insights ranks catalog insights against the student's active subjects and
// units (tracks plus sessions). Guests get an empty list.
func (s *Service) Insights(ctx context.Context, studentID string, limit int) ([]catalog.Insight, error) {
	if studentID == "" {
		return nil, nil
	}
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	var subjects, units []string
	for _, t := range doc.Tracks {
		if t.StudentID == studentID {
			subjects = append(subjects, t.SubjectKey)
			units = append(units, t.UnitIDs...)
		}
	}
	for _, sess := range doc.Sessions {
		if sess.StudentID == studentID {
			subjects = append(subjects, sess.SubjectKey)
			units = append(units, sess.UnitIDs...)
		}
	}
	return catalog.RankInsights(subjects, units, limit), nil
}

// GenerateMasteryQuestions samples count questions from the unit's template
// pool, cycling when the pool is smaller than count. Units without
// templates sample from the entire bank. Answer keys stay behind.
func (s *Service) GenerateMasteryQuestions(unitID string, count int) []Question {
	if count <= 0 {
		count = DefaultQuizLength
	}
	pool := catalog.ItemsByUnit(unitID)
	if len(pool) == 0 {
		pool = catalog.Items()
	}
	if len(pool) == 0 {
		return nil
	}

	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		t := pool[i%len(pool)]
		out = append(out, Question{
			TemplateID: t.ID,
			UnitID:     t.UnitID,
			TopicID:    t.TopicID,
			Kind:       t.Kind,
			Prompt:     t.Prompt,
			Options:    t.Options,
		})
	}
	return out
}

// SubmitMasteryResult grades the quiz against the original templates,
// appends a MasteryResult, and recomputes the unit's progress so a passing
// quiz is reflected immediately. answers align with questions by index;
// missing answers count as wrong.
func (s *Service) SubmitMasteryResult(ctx context.Context, studentID, unitID string, questions []Question, answers []string) (*Outcome, error) {
	if studentID == "" {
		return nil, store.ErrNotAuthenticated
	}

	correct := 0
	var wrongAttempts []store.PracticeAttempt
	var quizItems []store.PracticeItem
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		tpl, ok := catalog.ItemByID(q.TemplateID)
		ok = ok && evaluate.Answer(evaluate.TemplateKey(tpl), answer)
		if ok {
			correct++
			continue
		}
		// Synthetic records feed the per-quiz weak-topic ranking only;
		// they are never persisted.
		itemID := q.TemplateID
		wrongAttempts = append(wrongAttempts, store.PracticeAttempt{ItemID: itemID, Correct: false})
		quizItems = append(quizItems, store.PracticeItem{ID: itemID, TopicID: q.TopicID, UnitID: q.UnitID})
	}

	score := 0
	if len(questions) > 0 {
		score = int(math.Round(100 * float64(correct) / float64(len(questions))))
	}

	result := store.MasteryResult{
		ID:        s.idGen(),
		StudentID: studentID,
		UnitID:    unitID,
		Score:     score,
		Passed:    score >= PassScore,
		CreatedAt: s.clock(),
	}

	var fresh store.UnitProgress
	err := s.gw.Update(ctx, func(d *store.Document) error {
		d.MasteryResults = append(d.MasteryResults, result)
		fresh = ComputeUnit(d, studentID, unitID, s.clock())
		d.UpsertProgress(fresh)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("mastery quiz submitted",
		zap.String("unit", unitID),
		zap.Int("score", score),
		zap.Bool("passed", result.Passed))

	return &Outcome{
		Result:     result,
		Progress:   fresh,
		WeakTopics: RankWeakTopics(wrongAttempts, quizItems, DefaultWeakTopicLimit),
	}, nil
}
