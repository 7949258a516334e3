package session

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/evaluate"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/profile"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/progress"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// summaryTopicLimit caps the wrong-topic list on a completion summary.
const summaryTopicLimit = 3

// AttemptInput is one answer submission against a session item.
type AttemptInput struct {
	SessionID   string
	ItemID      string
	Answer      string
	TimeSpentMs int
}

// Feedback is the immediate grading result returned to the caller for
// rendering.
type Feedback struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string
	ErrorKind     catalog.ErrorKind
}

// Summary is the result of completing a session.
type Summary struct {
	ScorePercent int
	CorrectCount int
	WrongCount   int
	GainedPoints int
	Streak       int
	TotalPoints  int
	WeakTopics   []progress.WeakTopic
}

// Service is the session lifecycle manager: it creates, starts, records
// attempts against, completes, and abandons practice sessions.
type Service struct {
	gw      *store.Gateway
	planner *Planner
	clock   store.Clock
	idGen   func() string
	log     *zap.Logger
}

// NewService wires a lifecycle service with production defaults.
func NewService(gw *store.Gateway, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		gw:      gw,
		planner: NewPlanner(gw, log),
		clock:   store.NowISO,
		idGen:   uuid.NewString,
		log:     log,
	}
}

// WithClock overrides the clock, for tests.
func (s *Service) WithClock(c store.Clock) *Service { s.clock = c; return s }

// WithIDGen overrides the id generator, for tests.
func (s *Service) WithIDGen(g func() string) *Service { s.idGen = g; return s }

// Planner exposes the underlying planner for plan previews.
func (s *Service) Planner() *Planner { return s.planner }

// Create plans and materializes a new session in PLANNED status, persisting
// the session and its items in a single store write.
func (s *Service) Create(ctx context.Context, studentID string, cfg Config) (*store.PracticeSession, []store.PracticeItem, error) {
	if studentID == "" {
		return nil, nil, store.ErrNotAuthenticated
	}
	plan, err := s.planner.BuildPlan(ctx, studentID, cfg)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil || len(plan.Templates) == 0 {
		return nil, nil, store.ErrPlanUnavailable
	}

	now := s.clock()
	sess := store.PracticeSession{
		ID:            s.idGen(),
		StudentID:     studentID,
		SubjectKey:    plan.SubjectKey,
		UnitIDs:       plan.UnitIDs,
		Mode:          plan.Mode,
		Mood:          string(plan.Mood),
		TimeBoxMin:    plan.TimeBoxMin,
		Source:        string(plan.Source),
		Status:        store.SessionPlanned,
		TrackID:       plan.TrackID,
		StartedAt:     now,
		PlanItemCount: len(plan.Templates),
		CreatedAt:     now,
	}

	items := make([]store.PracticeItem, 0, len(plan.Templates))
	for _, t := range plan.Templates {
		items = append(items, store.PracticeItem{
			ID:               s.idGen(),
			SessionID:        sess.ID,
			TemplateID:       t.ID,
			UnitID:           t.UnitID,
			TopicID:          t.TopicID,
			Kind:             t.Kind,
			Mode:             t.Mode,
			Difficulty:       t.Difficulty,
			Prompt:           t.Prompt,
			Options:          t.Options,
			CorrectAnswer:    t.CorrectAnswer,
			AcceptedKeywords: t.AcceptedKeywords,
			Explanation:      t.Explanation,
			ErrorKind:        t.ErrorKind,
		})
	}

	err = s.gw.Update(ctx, func(d *store.Document) error {
		d.Sessions = append(d.Sessions, sess)
		d.Items = append(d.Items, items...)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("practice session created",
		zap.String("session", sess.ID),
		zap.String("subject", sess.SubjectKey),
		zap.Int("items", sess.PlanItemCount))
	return &sess, items, nil
}

// Start transitions PLANNED to IN_PROGRESS. Completed sessions and unknown
// ids are silently ignored.
func (s *Service) Start(ctx context.Context, studentID, sessionID string) error {
	return s.gw.Update(ctx, func(d *store.Document) error {
		sess := d.SessionByID(sessionID, studentID)
		if sess == nil || sess.Status == store.SessionCompleted {
			return nil
		}
		if sess.Status == store.SessionPlanned {
			sess.Status = store.SessionInProgress
		}
		if sess.StartedAt == "" {
			sess.StartedAt = s.clock()
		}
		return nil
	})
}

// SaveAttempt grades an answer and upserts the attempt for its
// (session, item) pair; the last answer wins. A first attempt implicitly
// moves a PLANNED session to IN_PROGRESS.
func (s *Service) SaveAttempt(ctx context.Context, in AttemptInput) (*Feedback, error) {
	var fb *Feedback
	err := s.gw.Update(ctx, func(d *store.Document) error {
		item := d.ItemInSession(in.SessionID, in.ItemID)
		if item == nil {
			return store.ErrItemNotFound
		}

		correct := evaluate.Answer(evaluate.Key{
			Kind:             item.Kind,
			CorrectAnswer:    item.CorrectAnswer,
			AcceptedKeywords: item.AcceptedKeywords,
		}, in.Answer)

		attempt := store.PracticeAttempt{
			ID:          s.idGen(),
			SessionID:   in.SessionID,
			ItemID:      in.ItemID,
			Answer:      in.Answer,
			Correct:     correct,
			TimeSpentMs: in.TimeSpentMs,
			CreatedAt:   s.clock(),
		}
		if !correct {
			attempt.ErrorKind = item.ErrorKind
		}
		d.UpsertAttempt(attempt)

		if sess := d.SessionByID(in.SessionID, ""); sess != nil && sess.Status == store.SessionPlanned {
			sess.Status = store.SessionInProgress
		}

		fb = &Feedback{
			Correct:       correct,
			CorrectAnswer: item.CorrectAnswer,
			Explanation:   item.Explanation,
		}
		if !correct {
			fb.ErrorKind = item.ErrorKind
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// Complete marks the session COMPLETED, updates the learner's streak and
// points, recomputes progress for every unit the session touched, and
// returns the score summary with the top wrong topics.
func (s *Service) Complete(ctx context.Context, studentID, sessionID string) (*Summary, error) {
	if studentID == "" {
		return nil, store.ErrNotAuthenticated
	}

	var summary *Summary
	err := s.gw.Update(ctx, func(d *store.Document) error {
		sess := d.SessionByID(sessionID, studentID)
		if sess == nil {
			return store.ErrSessionNotFound
		}

		attempts := d.AttemptsBySession(sessionID)
		items := d.ItemsBySession(sessionID)

		correct := 0
		for _, a := range attempts {
			if a.Correct {
				correct++
			}
		}
		total := sess.PlanItemCount
		if total < 1 {
			total = 1
		}
		score := int(math.Round(100 * float64(correct) / float64(total)))
		wrong := total - correct

		if sess.Status == store.SessionCompleted {
			// Completed sessions are immutable: report the stored outcome
			// without touching profile or progress again.
			prof := d.EnsureProfile(studentID)
			summary = &Summary{
				ScorePercent: score,
				CorrectCount: correct,
				WrongCount:   wrong,
				Streak:       prof.Streak,
				TotalPoints:  prof.Points,
				WeakTopics:   progress.RankWeakTopics(attempts, items, summaryTopicLimit),
			}
			return nil
		}

		now := s.clock()
		prof := d.EnsureProfile(studentID)
		profile.AdvanceStreak(prof, store.Day(now))
		gained := profile.GainedPoints(correct, prof.Streak)
		prof.Points += gained

		sess.Status = store.SessionCompleted
		sess.EndedAt = now
		if sess.StartedAt == "" {
			sess.StartedAt = now
		}

		for _, unitID := range touchedUnits(items) {
			d.UpsertProgress(progress.ComputeUnit(d, studentID, unitID, now))
		}

		summary = &Summary{
			ScorePercent: score,
			CorrectCount: correct,
			WrongCount:   wrong,
			GainedPoints: gained,
			Streak:       prof.Streak,
			TotalPoints:  prof.Points,
			WeakTopics:   progress.RankWeakTopics(attempts, items, summaryTopicLimit),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("practice session completed",
		zap.String("session", sessionID),
		zap.Int("score", summary.ScorePercent),
		zap.Int("streak", summary.Streak))
	return summary, nil
}

// Abandon marks the session ABANDONED with an end timestamp. Completed
// sessions cannot be abandoned retroactively; unknown ids are ignored.
func (s *Service) Abandon(ctx context.Context, studentID, sessionID string) error {
	return s.gw.Update(ctx, func(d *store.Document) error {
		sess := d.SessionByID(sessionID, studentID)
		if sess == nil || sess.Status == store.SessionCompleted {
			return nil
		}
		sess.Status = store.SessionAbandoned
		sess.EndedAt = s.clock()
		return nil
	})
}

// touchedUnits lists the distinct unit ids of a session's items in
// deterministic order.
func touchedUnits(items []store.PracticeItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.UnitID != "" && !seen[it.UnitID] {
			seen[it.UnitID] = true
			out = append(out, it.UnitID)
		}
	}
	sort.Strings(out)
	return out
}
