package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Gateway) {
	t.Helper()
	gw := store.NewGateway(store.NewMemoryBlob(), nil)
	n := 0
	svc := NewService(gw, nil).
		WithClock(func() string { return "2026-03-10T12:00:00.000Z" }).
		WithIDGen(func() string { n++; return fmt.Sprintf("id-%d", n) })
	return svc, gw
}

func TestUnitProgressGuest(t *testing.T) {
	svc, _ := newTestService(t)
	got, err := svc.UnitProgress(context.Background(), "", "mat-fracoes")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != store.ProgressNotStarted || got.MasteryPercent != 0 {
		t.Errorf("guest progress = %+v", got)
	}
}

func TestUnitProgressComputesAndCaches(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	got, err := svc.UnitProgress(ctx, "stu", "mat-fracoes")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != store.ProgressNotStarted {
		t.Errorf("Status = %q", got.Status)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ProgressFor("stu", "mat-fracoes") == nil {
		t.Error("first read should persist the computed record")
	}

	// A stale cached record is returned as-is; reads never recompute.
	err = gw.Update(ctx, func(d *store.Document) error {
		d.UpsertProgress(store.UnitProgress{
			StudentID: "stu", UnitID: "mat-fracoes",
			MasteryPercent: 42, Status: store.ProgressInProgress,
		})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err = svc.UnitProgress(ctx, "stu", "mat-fracoes")
	if err != nil {
		t.Fatal(err)
	}
	if got.MasteryPercent != 42 {
		t.Errorf("cached MasteryPercent = %d, want 42", got.MasteryPercent)
	}
}

func TestGenerateMasteryQuestionsCyclesPool(t *testing.T) {
	svc, _ := newTestService(t)

	qs := svc.GenerateMasteryQuestions("mat-geometria-plana", 7)
	if len(qs) != 7 {
		t.Fatalf("got %d questions, want 7", len(qs))
	}
	// The unit has three templates; position 3 cycles back to the first.
	if qs[3].TemplateID != qs[0].TemplateID {
		t.Errorf("qs[3] = %q, want %q", qs[3].TemplateID, qs[0].TemplateID)
	}
	for _, q := range qs {
		if q.UnitID != "mat-geometria-plana" {
			t.Errorf("question %q from unit %q", q.TemplateID, q.UnitID)
		}
	}
}

func TestGenerateMasteryQuestionsDefaultCount(t *testing.T) {
	svc, _ := newTestService(t)
	if got := len(svc.GenerateMasteryQuestions("mat-fracoes", 0)); got != DefaultQuizLength {
		t.Errorf("default count = %d, want %d", got, DefaultQuizLength)
	}
}

func TestGenerateMasteryQuestionsUnknownUnitUsesFullBank(t *testing.T) {
	svc, _ := newTestService(t)
	qs := svc.GenerateMasteryQuestions("does-not-exist", 5)
	if len(qs) != 5 {
		t.Fatalf("got %d questions, want 5", len(qs))
	}
}

func TestSubmitMasteryResultRequiresStudent(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.SubmitMasteryResult(context.Background(), "", "mat-fracoes", nil, nil)
	if !errors.Is(err, store.ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestSubmitMasteryResultPerfectScore(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	qs := svc.GenerateMasteryQuestions("mat-geometria-plana", 3)
	answers := []string{"40 cm²", "verdadeiro", "base vezes altura dividido por dois"}

	out, err := svc.SubmitMasteryResult(ctx, "stu", "mat-geometria-plana", qs, answers)
	if err != nil {
		t.Fatal(err)
	}
	if out.Result.Score != 100 || !out.Result.Passed {
		t.Errorf("result = %+v, want score 100 passed", out.Result)
	}
	if len(out.WeakTopics) != 0 {
		t.Errorf("weak topics = %v, want none", out.WeakTopics)
	}
	// No practice attempts, so the blend is 0*0.6 + 100*0.4 floored to 90.
	if out.Progress.MasteryPercent != 90 {
		t.Errorf("MasteryPercent = %d, want 90", out.Progress.MasteryPercent)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.MasteryResults) != 1 {
		t.Errorf("persisted %d results, want 1", len(doc.MasteryResults))
	}
}

func TestSubmitMasteryResultRanksWrongTopics(t *testing.T) {
	svc, _ := newTestService(t)

	qs := svc.GenerateMasteryQuestions("mat-geometria-plana", 3)
	// Everything wrong, missing answers included.
	out, err := svc.SubmitMasteryResult(context.Background(), "stu", "mat-geometria-plana", qs, []string{"nope"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Result.Score != 0 || out.Result.Passed {
		t.Errorf("result = %+v, want score 0 failed", out.Result)
	}
	if len(out.WeakTopics) == 0 {
		t.Error("expected per-quiz weak topics for the missed questions")
	}
	for _, w := range out.WeakTopics {
		if w.Count <= 0 {
			t.Errorf("weak topic %+v with non-positive count", w)
		}
	}
}
