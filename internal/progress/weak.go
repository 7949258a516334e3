package progress

import (
	"sort"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

// DefaultWeakTopicLimit caps how many weak topics rankings return.
const DefaultWeakTopicLimit = 5

// WeakTopic is one entry of the weak-topic ranking.
type WeakTopic struct {
	TopicID string
	Count   int
}

// RankWeakTopics counts incorrect attempts grouped by the topic of their
// session-scoped item and returns the top limit topics by descending error
// count. Ties break by ascending topic id, which keeps the ranking
// deterministic without implying pedagogy.
func RankWeakTopics(attempts []store.PracticeAttempt, items []store.PracticeItem, limit int) []WeakTopic {
	if limit <= 0 {
		limit = DefaultWeakTopicLimit
	}
	itemTopic := make(map[string]string, len(items))
	for _, it := range items {
		itemTopic[it.ID] = it.TopicID
	}

	counts := make(map[string]int)
	for _, a := range attempts {
		if a.Correct {
			continue
		}
		topicID, ok := itemTopic[a.ItemID]
		if !ok || topicID == "" {
			continue
		}
		counts[topicID]++
	}

	out := make([]WeakTopic, 0, len(counts))
	for id, n := range counts {
		out = append(out, WeakTopic{TopicID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TopicID < out[j].TopicID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// WeakTopicsFor ranks the student's weak topics across every retained
// attempt in the document.
func WeakTopicsFor(doc *store.Document, studentID string, limit int) []WeakTopic {
	owned := make(map[string]bool)
	for _, s := range doc.Sessions {
		if s.StudentID == studentID {
			owned[s.ID] = true
		}
	}
	var attempts []store.PracticeAttempt
	for _, a := range doc.Attempts {
		if owned[a.SessionID] {
			attempts = append(attempts, a)
		}
	}
	return RankWeakTopics(attempts, doc.Items, limit)
}

// UnitForWeakTopic resolves the unit backing a weak topic, preferring the
// session items that produced the ranking, with the catalog as fallback.
func UnitForWeakTopic(doc *store.Document, topicID string) (string, bool) {
	for _, it := range doc.Items {
		if it.TopicID == topicID && it.UnitID != "" {
			return it.UnitID, true
		}
	}
	if t, ok := doc.View().Topic(topicID); ok {
		return t.UnitID, true
	}
	return "", false
}
