// Package evaluate normalizes learner input and judges it against an
// item's expected answer shape. There is no partial credit.
package evaluate

import (
	"strings"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
)

// Truthy and falsy word sets let template authors write either
// "true"/"false" or the localized words.
var (
	truthy = map[string]bool{"true": true, "verdadeiro": true, "v": true, "sim": true}
	falsy  = map[string]bool{"false": true, "falso": true, "f": true, "nao": true}
)

// Key is the answer shape an item is graded against.
type Key struct {
	Kind             catalog.ItemKind
	CorrectAnswer    string
	AcceptedKeywords []string
}

// Answer reports whether rawAnswer is correct for the given key.
// Empty normalized input is always incorrect.
func Answer(key Key, rawAnswer string) bool {
	got := Normalize(rawAnswer)
	if got == "" {
		return false
	}

	switch key.Kind {
	case catalog.KindTrueFalse:
		want := Normalize(key.CorrectAnswer)
		if truthy[want] {
			return truthy[got]
		}
		return falsy[got]

	case catalog.KindShortAnswer:
		if len(key.AcceptedKeywords) > 0 {
			// Conjunctive keyword match, order-independent.
			for _, kw := range key.AcceptedKeywords {
				if !strings.Contains(got, Normalize(kw)) {
					return false
				}
			}
			return true
		}
		return strings.Contains(got, Normalize(key.CorrectAnswer))

	case catalog.KindMultipleChoice:
		return got == Normalize(key.CorrectAnswer)

	default:
		// Unknown kinds degrade to exact normalized equality.
		return got == Normalize(key.CorrectAnswer)
	}
}

// TemplateKey builds a grading key from a catalog template.
func TemplateKey(t catalog.ItemTemplate) Key {
	return Key{Kind: t.Kind, CorrectAnswer: t.CorrectAnswer, AcceptedKeywords: t.AcceptedKeywords}
}
