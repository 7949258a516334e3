package catalog

// View widens the seeded bank with learner-created units and topics.
// Resolution checks the seeded data first, then the custom entries, which
// matches how references are validated at creation time: a unit id is valid
// if it resolves in the seeded bank or among the learner's custom units.
type View struct {
	customUnits  []Unit
	customTopics []Topic
}

// NewView builds a view over the learner's custom additions.
func NewView(customUnits []Unit, customTopics []Topic) View {
	return View{customUnits: customUnits, customTopics: customTopics}
}

// Unit resolves a unit id against the seeded bank then the custom units.
func (v View) Unit(id string) (Unit, bool) {
	if u, ok := UnitByID(id); ok {
		return u, true
	}
	for _, u := range v.customUnits {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// Topic resolves a topic id against the seeded bank then the custom topics.
func (v View) Topic(id string) (Topic, bool) {
	if t, ok := TopicByID(id); ok {
		return t, true
	}
	for _, t := range v.customTopics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// UnitsBySubject returns seeded plus custom units for a subject.
func (v View) UnitsBySubject(subjectKey string) []Unit {
	out := UnitsBySubject(subjectKey)
	for _, u := range v.customUnits {
		if u.SubjectKey == subjectKey {
			out = append(out, u)
		}
	}
	return out
}
