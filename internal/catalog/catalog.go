package catalog

// bank holds the seeded reference data with precomputed indices.
type bank struct {
	subjects []Subject
	units    []Unit
	topics   []Topic
	items    []ItemTemplate
	tracks   []TrackTemplate
	insights []Insight

	unitByID       map[string]*Unit
	topicByID      map[string]*Topic
	itemByID       map[string]*ItemTemplate
	unitsBySubject map[string][]Unit
	topicsByUnit   map[string][]Topic
	itemsByUnit    map[string][]ItemTemplate
}

// b is the package-level bank singleton, set by init() in seed.go.
var b *bank

func buildBank(subjects []Subject, units []Unit, topics []Topic, items []ItemTemplate, tracks []TrackTemplate, insights []Insight) *bank {
	bk := &bank{
		subjects:       subjects,
		units:          units,
		topics:         topics,
		items:          items,
		tracks:         tracks,
		insights:       insights,
		unitByID:       make(map[string]*Unit, len(units)),
		topicByID:      make(map[string]*Topic, len(topics)),
		itemByID:       make(map[string]*ItemTemplate, len(items)),
		unitsBySubject: make(map[string][]Unit),
		topicsByUnit:   make(map[string][]Topic),
		itemsByUnit:    make(map[string][]ItemTemplate),
	}
	for i := range bk.units {
		u := &bk.units[i]
		bk.unitByID[u.ID] = u
		bk.unitsBySubject[u.SubjectKey] = append(bk.unitsBySubject[u.SubjectKey], *u)
	}
	for i := range bk.topics {
		t := &bk.topics[i]
		bk.topicByID[t.ID] = t
		bk.topicsByUnit[t.UnitID] = append(bk.topicsByUnit[t.UnitID], *t)
	}
	for i := range bk.items {
		it := &bk.items[i]
		bk.itemByID[it.ID] = it
		bk.itemsByUnit[it.UnitID] = append(bk.itemsByUnit[it.UnitID], *it)
	}
	return bk
}

// Subjects returns all subjects in display order.
func Subjects() []Subject {
	out := make([]Subject, len(b.subjects))
	copy(out, b.subjects)
	return out
}

// SubjectByKey looks up a subject by its key.
func SubjectByKey(key string) (Subject, bool) {
	for _, s := range b.subjects {
		if s.Key == key {
			return s, true
		}
	}
	return Subject{}, false
}

// DefaultSubject is the hard fallback when nothing else resolves a subject.
func DefaultSubject() Subject {
	return b.subjects[0]
}

// UnitByID looks up a seeded unit.
func UnitByID(id string) (Unit, bool) {
	if u, ok := b.unitByID[id]; ok {
		return *u, true
	}
	return Unit{}, false
}

// Units returns all seeded units in catalog order.
func Units() []Unit {
	out := make([]Unit, len(b.units))
	copy(out, b.units)
	return out
}

// UnitsBySubject returns the seeded units of a subject in catalog order.
func UnitsBySubject(subjectKey string) []Unit {
	return append([]Unit(nil), b.unitsBySubject[subjectKey]...)
}

// UnitsForGrade returns the subject's units applicable to the given grade.
// Grade 0 disables the filter and returns every unit of the subject.
func UnitsForGrade(subjectKey string, grade int) []Unit {
	var out []Unit
	for _, u := range b.unitsBySubject[subjectKey] {
		if u.Grades.Contains(grade) {
			out = append(out, u)
		}
	}
	return out
}

// TopicByID looks up a seeded topic.
func TopicByID(id string) (Topic, bool) {
	if t, ok := b.topicByID[id]; ok {
		return *t, true
	}
	return Topic{}, false
}

// TopicsByUnit returns the seeded topics of a unit.
func TopicsByUnit(unitID string) []Topic {
	return append([]Topic(nil), b.topicsByUnit[unitID]...)
}

// ItemByID looks up a practice-item template.
func ItemByID(id string) (ItemTemplate, bool) {
	if it, ok := b.itemByID[id]; ok {
		return *it, true
	}
	return ItemTemplate{}, false
}

// Items returns the entire item bank in catalog order.
func Items() []ItemTemplate {
	out := make([]ItemTemplate, len(b.items))
	copy(out, b.items)
	return out
}

// ItemsByUnit returns a unit's templates in catalog order.
func ItemsByUnit(unitID string) []ItemTemplate {
	return append([]ItemTemplate(nil), b.itemsByUnit[unitID]...)
}

// Tracks returns the curated track templates.
func Tracks() []TrackTemplate {
	out := make([]TrackTemplate, len(b.tracks))
	copy(out, b.tracks)
	return out
}

// TracksBySubject returns curated tracks for a subject.
func TracksBySubject(subjectKey string) []TrackTemplate {
	var out []TrackTemplate
	for _, t := range b.tracks {
		if t.SubjectKey == subjectKey {
			out = append(out, t)
		}
	}
	return out
}

// ModeMatches reports whether an item tagged with mode satisfies a request.
// A MIXED request accepts everything; a MIXED item satisfies any request.
func ModeMatches(item, requested FocusMode) bool {
	if requested == "" || requested == ModeMixed || item == ModeMixed {
		return true
	}
	return item == requested
}

// RankInsights scores insights against the learner's active subjects and
// units and returns up to limit of the best matches. An insight scores two
// points per shared unit and one per shared subject; zero-score insights
// are excluded.
func RankInsights(subjectKeys, unitIDs []string, limit int) []Insight {
	subjects := make(map[string]bool, len(subjectKeys))
	for _, k := range subjectKeys {
		subjects[k] = true
	}
	units := make(map[string]bool, len(unitIDs))
	for _, id := range unitIDs {
		units[id] = true
	}

	type scored struct {
		insight Insight
		score   int
	}
	var ranked []scored
	for _, in := range b.insights {
		score := 0
		for _, id := range in.UnitIDs {
			if units[id] {
				score += 2
			}
		}
		for _, k := range in.SubjectKeys {
			if subjects[k] {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{insight: in, score: score})
		}
	}
	// Stable by catalog order for equal scores.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]Insight, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.insight)
	}
	return out
}
