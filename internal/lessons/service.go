// Package lessons attaches knowledge-engine focus notes to external
// lessons. It shares the store-gateway discipline with the rest of the
// engine; the lessons themselves live outside this system.
package lessons

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// FocusInput attaches a unit (and optionally a topic and comment) to an
// external lesson id.
type FocusInput struct {
	LessonID string
	UnitID   string
	TopicID  string
	Comment  string
}

// Service upserts and looks up lesson focus records.
type Service struct {
	gw    *store.Gateway
	clock store.Clock
	idGen func() string
}

// NewService wires a lessons service with production defaults.
func NewService(gw *store.Gateway) *Service {
	return &Service{gw: gw, clock: store.NowISO, idGen: uuid.NewString}
}

// WithClock overrides the clock, for tests.
func (s *Service) WithClock(c store.Clock) *Service { s.clock = c; return s }

// SaveFocus upserts the focus record for (student, lesson). The referenced
// unit must resolve in the seeded catalog or the learner's custom units.
func (s *Service) SaveFocus(ctx context.Context, studentID string, in FocusInput) (*store.LessonFocus, error) {
	if studentID == "" {
		return nil, store.ErrNotAuthenticated
	}
	if in.LessonID == "" {
		return nil, fmt.Errorf("lesson id is required")
	}

	focus := store.LessonFocus{
		ID:        s.idGen(),
		StudentID: studentID,
		LessonID:  in.LessonID,
		UnitID:    in.UnitID,
		TopicID:   in.TopicID,
		Comment:   in.Comment,
		UpdatedAt: s.clock(),
	}

	err := s.gw.Update(ctx, func(d *store.Document) error {
		if _, ok := d.View().Unit(in.UnitID); !ok {
			return fmt.Errorf("%w: %s", store.ErrUnknownUnit, in.UnitID)
		}
		d.UpsertLessonFocus(focus)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &focus, nil
}

// FocusByLesson returns the live record for (student, lesson), or nil when
// none exists. Guests get nil.
func (s *Service) FocusByLesson(ctx context.Context, studentID, lessonID string) (*store.LessonFocus, error) {
	if studentID == "" {
		return nil, nil
	}
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.LessonFocus {
		f := doc.LessonFocus[i]
		if f.StudentID == studentID && f.LessonID == lessonID {
			return &f, nil
		}
	}
	return nil, nil
}
