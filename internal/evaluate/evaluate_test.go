package evaluate

import (
	"testing"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
)

func TestAnswerTrueFalse(t *testing.T) {
	tests := []struct {
		correct string
		answer  string
		want    bool
	}{
		{"verdadeiro", "verdadeiro", true},
		{"verdadeiro", "V", true},
		{"verdadeiro", "sim", true},
		{"verdadeiro", "true", true},
		{"verdadeiro", "falso", false},
		{"true", "Verdadeiro", true},
		{"falso", "falso", true},
		{"falso", "não", true},
		{"falso", "NAO", true},
		{"falso", "verdadeiro", false},
		{"false", "f", true},
		{"verdadeiro", "", false},
		{"verdadeiro", "talvez", false},
	}

	for _, tt := range tests {
		key := Key{Kind: catalog.KindTrueFalse, CorrectAnswer: tt.correct}
		if got := Answer(key, tt.answer); got != tt.want {
			t.Errorf("Answer(true_false %q, %q) = %v, want %v", tt.correct, tt.answer, got, tt.want)
		}
	}
}

func TestAnswerMultipleChoice(t *testing.T) {
	key := Key{Kind: catalog.KindMultipleChoice, CorrectAnswer: "40 cm²"}

	if !Answer(key, "40 cm²") {
		t.Error("exact option text should be correct")
	}
	if !Answer(key, "  40 CM² ") {
		t.Error("normalization should make case and spacing irrelevant")
	}
	if Answer(key, "26 cm²") {
		t.Error("wrong option should be incorrect")
	}
	if Answer(key, "") {
		t.Error("empty answer should be incorrect")
	}
}

func TestAnswerShortAnswerKeywords(t *testing.T) {
	key := Key{
		Kind:             catalog.KindShortAnswer,
		CorrectAnswer:    "multiplicar pela fração inversa",
		AcceptedKeywords: []string{"multiplicar", "inversa"},
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"é só multiplicar pela fração inversa", true},
		{"a fração INVERSA serve para multiplicar", true}, // order-independent
		{"multiplicar pela mesma fração", false},          // missing keyword
		{"usar a inversa", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Answer(key, tt.answer); got != tt.want {
			t.Errorf("Answer(keywords, %q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestAnswerShortAnswerSubstring(t *testing.T) {
	key := Key{Kind: catalog.KindShortAnswer, CorrectAnswer: "60"}

	if !Answer(key, "60") {
		t.Error("literal answer should be correct")
	}
	if !Answer(key, "a velocidade é 60 km/h") {
		t.Error("answer containing the expected value should be correct")
	}
	if Answer(key, "50") {
		t.Error("different value should be incorrect")
	}
}

// Every seeded template must accept its own literal correct answer and
// reject a deliberately wrong one.
func TestAnswerAgainstSeededBank(t *testing.T) {
	for _, item := range catalog.Items() {
		key := TemplateKey(item)
		if !Answer(key, item.CorrectAnswer) {
			t.Errorf("item %s rejects its own correct answer %q", item.ID, item.CorrectAnswer)
		}
		if Answer(key, "") {
			t.Errorf("item %s accepts an empty answer", item.ID)
		}

		if item.Kind == catalog.KindTrueFalse {
			wrong := "falso"
			if !truthy[Normalize(item.CorrectAnswer)] {
				wrong = "verdadeiro"
			}
			if Answer(key, wrong) {
				t.Errorf("item %s accepts the swapped boolean %q", item.ID, wrong)
			}
		}
	}
}
