package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/grade"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/progress"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// fallbackUnitCount caps how many units the grade/subject fallbacks add.
const fallbackUnitCount = 3

// Planner resolves a session configuration into a concrete plan:
// a subject, a deduplicated unit list, and a cycled template list of the
// target length, biased toward the learner's weak topics.
type Planner struct {
	gw  *store.Gateway
	log *zap.Logger
}

// NewPlanner creates a planner over the learner document.
func NewPlanner(gw *store.Gateway, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{gw: gw, log: log}
}

// BuildPlan previews a session for the given learner. Returns (nil, nil)
// when no learner context is available.
func (p *Planner) BuildPlan(ctx context.Context, studentID string, cfg Config) (*Plan, error) {
	if studentID == "" {
		return nil, nil
	}
	doc, err := p.gw.Read(ctx)
	if err != nil {
		return nil, err
	}

	view := doc.View()
	gradeLevel := grade.Parse(cfg.GradeYear)

	var track *store.StudentTrack
	if cfg.TrackID != "" {
		track = doc.TrackByID(cfg.TrackID, studentID)
	}

	subjectKey := p.resolveSubject(cfg, track, view, gradeLevel)
	weak := progress.WeakTopicsFor(doc, studentID, progress.DefaultWeakTopicLimit)
	unitIDs := p.resolveUnits(cfg, track, doc, weak, subjectKey, gradeLevel)

	mode := cfg.Mode
	if mode == "" {
		mode = catalog.ModeMixed
	}

	pool := candidatePool(unitIDs, mode)
	if len(pool) == 0 {
		p.log.Debug("empty candidate pool",
			zap.String("subject", subjectKey),
			zap.Strings("units", unitIDs))
		return nil, nil
	}
	pool = partitionByWeakTopics(pool, weak)

	count := ItemCount(cfg.Mood, cfg.TimeBoxMin)
	templates := make([]catalog.ItemTemplate, 0, count)
	for i := 0; i < count; i++ {
		templates = append(templates, pool[i%len(pool)])
	}

	return &Plan{
		SubjectKey: subjectKey,
		UnitIDs:    unitIDs,
		Mode:       mode,
		Mood:       cfg.Mood,
		TimeBoxMin: cfg.TimeBoxMin,
		Source:     cfg.Source,
		TrackID:    cfg.TrackID,
		Templates:  templates,
	}, nil
}

// resolveSubject applies the subject precedence chain: explicit config,
// linked track, linked unit, first grade-appropriate unit, hard default.
func (p *Planner) resolveSubject(cfg Config, track *store.StudentTrack, view catalog.View, gradeLevel int) string {
	if cfg.SubjectKey != "" {
		return cfg.SubjectKey
	}
	if track != nil {
		return track.SubjectKey
	}
	if cfg.UnitID != "" {
		if u, ok := view.Unit(cfg.UnitID); ok {
			return u.SubjectKey
		}
	}
	for _, u := range catalog.Units() {
		if u.Grades.Contains(gradeLevel) {
			return u.SubjectKey
		}
	}
	return catalog.DefaultSubject().Key
}

// resolveUnits picks candidate unit ids by source, then falls back to
// grade-appropriate and finally any subject units. First-seen order is
// preserved through deduplication.
func (p *Planner) resolveUnits(cfg Config, track *store.StudentTrack, doc *store.Document, weak []progress.WeakTopic, subjectKey string, gradeLevel int) []string {
	var ids []string
	switch cfg.Source {
	case SourceTrack:
		if track != nil {
			ids = append(ids, track.UnitIDs...)
		}
	case SourceUnit:
		if cfg.UnitID != "" {
			ids = append(ids, cfg.UnitID)
		}
	case SourceErrors:
		for _, w := range weak {
			if unitID, ok := progress.UnitForWeakTopic(doc, w.TopicID); ok {
				ids = append(ids, unitID)
			}
		}
	}

	if len(ids) == 0 {
		for _, u := range catalog.UnitsForGrade(subjectKey, gradeLevel) {
			ids = append(ids, u.ID)
			if len(ids) == fallbackUnitCount {
				break
			}
		}
	}
	if len(ids) == 0 {
		for _, u := range catalog.UnitsBySubject(subjectKey) {
			ids = append(ids, u.ID)
			if len(ids) == fallbackUnitCount {
				break
			}
		}
	}
	return dedupe(ids)
}

// candidatePool selects templates for the units and mode, widening to all
// modes for those units when a non-MIXED request matches nothing, and to
// the entire bank as a last resort.
func candidatePool(unitIDs []string, mode catalog.FocusMode) []catalog.ItemTemplate {
	unitSet := make(map[string]bool, len(unitIDs))
	for _, id := range unitIDs {
		unitSet[id] = true
	}

	var pool []catalog.ItemTemplate
	for _, t := range catalog.Items() {
		if unitSet[t.UnitID] && catalog.ModeMatches(t.Mode, mode) {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 && mode != catalog.ModeMixed {
		for _, t := range catalog.Items() {
			if unitSet[t.UnitID] {
				pool = append(pool, t)
			}
		}
	}
	if len(pool) == 0 {
		pool = catalog.Items()
	}
	return pool
}

// partitionByWeakTopics moves weak-topic templates to the front, keeping
// relative order inside both partitions, so cycling favors weak material.
func partitionByWeakTopics(pool []catalog.ItemTemplate, weak []progress.WeakTopic) []catalog.ItemTemplate {
	if len(weak) == 0 {
		return pool
	}
	weakSet := make(map[string]bool, len(weak))
	for _, w := range weak {
		weakSet[w.TopicID] = true
	}

	out := make([]catalog.ItemTemplate, 0, len(pool))
	var rest []catalog.ItemTemplate
	for _, t := range pool {
		if weakSet[t.TopicID] {
			out = append(out, t)
		} else {
			rest = append(rest, t)
		}
	}
	return append(out, rest...)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
