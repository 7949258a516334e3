package progress

import (
	"testing"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		percent  int
		attempts int
		want     store.ProgressStatus
	}{
		{0, 0, store.ProgressNotStarted},
		{90, 0, store.ProgressNotStarted},
		{0, 1, store.ProgressStarted},
		{24, 3, store.ProgressStarted},
		{25, 3, store.ProgressInProgress},
		{64, 3, store.ProgressInProgress},
		{65, 3, store.ProgressAlmostMastered},
		{84, 3, store.ProgressAlmostMastered},
		{85, 3, store.ProgressMastered},
		{100, 3, store.ProgressMastered},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.percent, tt.attempts); got != tt.want {
			t.Errorf("StatusFor(%d, %d) = %q, want %q", tt.percent, tt.attempts, got, tt.want)
		}
	}
}

func docWithAttempts(studentID, unitID string, results []bool) *store.Document {
	doc := store.NewDocument()
	doc.Sessions = append(doc.Sessions, store.PracticeSession{ID: "sess-1", StudentID: studentID})
	for i, correct := range results {
		itemID := "it-" + string(rune('a'+i))
		doc.Items = append(doc.Items, store.PracticeItem{
			ID:        itemID,
			SessionID: "sess-1",
			UnitID:    unitID,
			TopicID:   "top-1",
		})
		doc.Attempts = append(doc.Attempts, store.PracticeAttempt{
			SessionID: "sess-1",
			ItemID:    itemID,
			Correct:   correct,
			CreatedAt: "2026-03-10T10:00:0" + string(rune('0'+i)) + ".000Z",
		})
	}
	return doc
}

func TestComputeUnitNoAttempts(t *testing.T) {
	doc := store.NewDocument()
	got := ComputeUnit(doc, "stu", "mat-fracoes", "2026-03-10T12:00:00.000Z")

	if got.MasteryPercent != 0 {
		t.Errorf("MasteryPercent = %d, want 0", got.MasteryPercent)
	}
	if got.Status != store.ProgressNotStarted {
		t.Errorf("Status = %q, want %q", got.Status, store.ProgressNotStarted)
	}
	if got.LastPracticedAt != "" {
		t.Errorf("LastPracticedAt = %q, want empty", got.LastPracticedAt)
	}
}

func TestComputeUnitRawAccuracy(t *testing.T) {
	doc := docWithAttempts("stu", "mat-fracoes", []bool{true, true, true, false})
	got := ComputeUnit(doc, "stu", "mat-fracoes", "2026-03-10T12:00:00.000Z")

	if got.MasteryPercent != 75 {
		t.Errorf("MasteryPercent = %d, want 75", got.MasteryPercent)
	}
	if got.Status != store.ProgressAlmostMastered {
		t.Errorf("Status = %q, want %q", got.Status, store.ProgressAlmostMastered)
	}
	if got.LastPracticedAt != "2026-03-10T10:00:03.000Z" {
		t.Errorf("LastPracticedAt = %q", got.LastPracticedAt)
	}
}

func TestComputeUnitBlendsQuizScore(t *testing.T) {
	// Raw 50%, latest quiz 70 and not passed: 50*0.6 + 70*0.4 = 58.
	doc := docWithAttempts("stu", "mat-fracoes", []bool{true, false})
	doc.MasteryResults = append(doc.MasteryResults, store.MasteryResult{
		StudentID: "stu",
		UnitID:    "mat-fracoes",
		Score:     70,
		Passed:    false,
		CreatedAt: "2026-03-10T11:00:00.000Z",
	})
	got := ComputeUnit(doc, "stu", "mat-fracoes", "2026-03-10T12:00:00.000Z")
	if got.MasteryPercent != 58 {
		t.Errorf("MasteryPercent = %d, want 58", got.MasteryPercent)
	}
}

func TestComputeUnitPassedQuizFloors(t *testing.T) {
	// Raw 40% with a passed quiz at 85 blends to 74, floored to 90.
	doc := docWithAttempts("stu", "mat-fracoes", []bool{true, true, false, false, false})
	doc.MasteryResults = append(doc.MasteryResults, store.MasteryResult{
		StudentID: "stu",
		UnitID:    "mat-fracoes",
		Score:     85,
		Passed:    true,
		CreatedAt: "2026-03-10T11:00:00.000Z",
	})
	got := ComputeUnit(doc, "stu", "mat-fracoes", "2026-03-10T12:00:00.000Z")

	if got.MasteryPercent != 90 {
		t.Errorf("MasteryPercent = %d, want 90", got.MasteryPercent)
	}
	if got.Status != store.ProgressMastered {
		t.Errorf("Status = %q, want %q", got.Status, store.ProgressMastered)
	}
}

func TestComputeUnitUsesLatestQuizOnly(t *testing.T) {
	doc := docWithAttempts("stu", "mat-fracoes", []bool{true, false})
	doc.MasteryResults = append(doc.MasteryResults,
		store.MasteryResult{
			StudentID: "stu", UnitID: "mat-fracoes",
			Score: 100, Passed: true,
			CreatedAt: "2026-03-09T10:00:00.000Z",
		},
		store.MasteryResult{
			StudentID: "stu", UnitID: "mat-fracoes",
			Score: 50, Passed: false,
			CreatedAt: "2026-03-10T11:00:00.000Z",
		},
	)
	// Latest quiz (50, failed) wins: 50*0.6 + 50*0.4 = 50, no floor.
	got := ComputeUnit(doc, "stu", "mat-fracoes", "2026-03-10T12:00:00.000Z")
	if got.MasteryPercent != 50 {
		t.Errorf("MasteryPercent = %d, want 50", got.MasteryPercent)
	}
}

func TestComputeUnitIgnoresOtherStudentsAndUnits(t *testing.T) {
	doc := docWithAttempts("stu", "mat-fracoes", []bool{true})
	other := docWithAttempts("other", "mat-fracoes", []bool{false, false})
	other.Sessions[0].ID = "sess-2"
	for i := range other.Items {
		other.Items[i].SessionID = "sess-2"
	}
	for i := range other.Attempts {
		other.Attempts[i].SessionID = "sess-2"
	}
	doc.Sessions = append(doc.Sessions, other.Sessions...)
	doc.Items = append(doc.Items, other.Items...)
	doc.Attempts = append(doc.Attempts, other.Attempts...)

	got := ComputeUnit(doc, "stu", "mat-fracoes", "2026-03-10T12:00:00.000Z")
	if got.MasteryPercent != 100 {
		t.Errorf("MasteryPercent = %d, want 100", got.MasteryPercent)
	}
	if got := ComputeUnit(doc, "stu", "mat-equacoes-1grau", "2026-03-10T12:00:00.000Z"); got.Status != store.ProgressNotStarted {
		t.Errorf("unrelated unit status = %q, want %q", got.Status, store.ProgressNotStarted)
	}
}
