// Package tracks manages learner-created study tracks and custom
// curriculum units.
package tracks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// TrackInput describes a new track. Tracks are immutable once created.
type TrackInput struct {
	Name       string
	SubjectKey string
	UnitIDs    []string
	Mode       catalog.FocusMode
	Objective  string
}

// CustomUnitInput describes a learner-authored unit. Custom units get an
// open grade range and no prerequisites.
type CustomUnitInput struct {
	SubjectKey  string
	Title       string
	Description string
	Topics      []catalog.TopicImport
}

// Service creates and lists tracks and custom units.
type Service struct {
	gw    *store.Gateway
	clock store.Clock
	idGen func() string
	log   *zap.Logger
}

// NewService wires a tracks service with production defaults.
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

// Create validates that every referenced unit resolves (seeded or custom)
// and persists the new track.
func (s *Service) Create(ctx context.Context, studentID string, in TrackInput) (*store.StudentTrack, error) {
	if studentID == "" {
		return nil, store.ErrNotAuthenticated
	}
	if len(in.UnitIDs) == 0 {
		return nil, fmt.Errorf("track needs at least one unit")
	}

	track := store.StudentTrack{
		ID:         s.idGen(),
		StudentID:  studentID,
		Name:       in.Name,
		SubjectKey: in.SubjectKey,
		UnitIDs:    in.UnitIDs,
		Mode:       in.Mode,
		Objective:  in.Objective,
		CreatedAt:  s.clock(),
	}

	err := s.gw.Update(ctx, func(d *store.Document) error {
		view := d.View()
		for _, unitID := range in.UnitIDs {
			if _, ok := view.Unit(unitID); !ok {
				return fmt.Errorf("%w: %s", store.ErrUnknownUnit, unitID)
			}
		}
		d.Tracks = append(d.Tracks, track)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// List returns the student's tracks. Guests get an empty list.
func (s *Service) List(ctx context.Context, studentID string) ([]store.StudentTrack, error) {
	if studentID == "" {
		return nil, nil
	}
	doc, err := s.gw.Read(ctx)
	if err != nil {
		return nil, err
	}
	var out []store.StudentTrack
	for _, t := range doc.Tracks {
		if t.StudentID == studentID {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateCustomUnit appends a learner-authored unit (and its topics) to the
// resolvable catalog.
func (s *Service) CreateCustomUnit(ctx context.Context, studentID string, in CustomUnitInput) (*catalog.Unit, error) {
	if studentID == "" {
		return nil, store.ErrNotAuthenticated
	}
	if _, ok := catalog.SubjectByKey(in.SubjectKey); !ok {
		return nil, fmt.Errorf("unknown subject %q", in.SubjectKey)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("custom unit needs a title")
	}

	unit := catalog.Unit{
		ID:          s.idGen(),
		SubjectKey:  in.SubjectKey,
		Title:       in.Title,
		Description: in.Description,
		Custom:      true,
	}
	topics := make([]catalog.Topic, 0, len(in.Topics))
	for _, t := range in.Topics {
		topics = append(topics, catalog.Topic{
			ID:          s.idGen(),
			UnitID:      unit.ID,
			Title:       t.Title,
			Description: t.Description,
			Custom:      true,
		})
	}

	err := s.gw.Update(ctx, func(d *store.Document) error {
		d.CustomUnits = append(d.CustomUnits, unit)
		d.CustomTopics = append(d.CustomTopics, topics...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("custom unit created",
		zap.String("unit", unit.ID),
		zap.String("subject", unit.SubjectKey))
	return &unit, nil
}

// Import validates a learner-authored unit file against the catalog schema
// and appends every unit it defines. Returns how many units were imported.
func (s *Service) Import(ctx context.Context, studentID string, raw []byte) (int, error) {
	if studentID == "" {
		return 0, store.ErrNotAuthenticated
	}
	units, err := catalog.ParseImport(raw)
	if err != nil {
		return 0, err
	}
	for _, u := range units {
		if _, err := s.CreateCustomUnit(ctx, studentID, CustomUnitInput{
			SubjectKey:  u.SubjectKey,
			Title:       u.Title,
			Description: u.Description,
			Topics:      u.Topics,
		}); err != nil {
			return 0, err
		}
	}
	return len(units), nil
}
