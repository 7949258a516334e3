package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

func newTestSession(t *testing.T) (*Service, *store.Gateway) {
	t.Helper()
	gw := store.NewGateway(store.NewMemoryBlob(), nil)
	n := 0
	svc := NewService(gw, nil).
		WithClock(func() string { return "2026-03-10T12:00:00.000Z" }).
		WithIDGen(func() string { n++; return fmt.Sprintf("id-%d", n) })
	return svc, gw
}

func geometryConfig() Config {
	return Config{
		Source:     SourceUnit,
		UnitID:     "mat-geometria-plana",
		Mode:       catalog.ModeN1,
		Mood:       MoodOK,
		TimeBoxMin: TimeBoxMedium,
	}
}

func TestCreateRequiresStudent(t *testing.T) {
	svc, _ := newTestSession(t)
	_, _, err := svc.Create(context.Background(), "", geometryConfig())
	if !errors.Is(err, store.ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestCreatePersistsPlannedSession(t *testing.T) {
	svc, gw := newTestSession(t)
	ctx := context.Background()

	sess, items, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != store.SessionPlanned {
		t.Errorf("Status = %q, want %q", sess.Status, store.SessionPlanned)
	}
	if sess.PlanItemCount != 10 || len(items) != 10 {
		t.Fatalf("PlanItemCount = %d, items = %d, want 10", sess.PlanItemCount, len(items))
	}
	for i, it := range items {
		want := "item-geo-1"
		if i%2 == 1 {
			want = "item-geo-2"
		}
		if it.TemplateID != want {
			t.Errorf("items[%d].TemplateID = %q, want %q", i, it.TemplateID, want)
		}
		if it.SessionID != sess.ID {
			t.Errorf("items[%d] bound to session %q", i, it.SessionID)
		}
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Sessions) != 1 || len(doc.Items) != 10 {
		t.Errorf("persisted %d sessions, %d items", len(doc.Sessions), len(doc.Items))
	}
}

func TestStartTransitions(t *testing.T) {
	svc, gw := newTestSession(t)
	ctx := context.Background()

	sess, _, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(ctx, "stu", sess.ID); err != nil {
		t.Fatal(err)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.SessionByID(sess.ID, "stu").Status; got != store.SessionInProgress {
		t.Errorf("Status = %q, want %q", got, store.SessionInProgress)
	}

	// Unknown ids are ignored without error.
	if err := svc.Start(ctx, "stu", "no-such-session"); err != nil {
		t.Errorf("unknown session start: %v", err)
	}
}

func TestSaveAttemptUnknownItem(t *testing.T) {
	svc, _ := newTestSession(t)
	sess, _, err := svc.Create(context.Background(), "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.SaveAttempt(context.Background(), AttemptInput{
		SessionID: sess.ID,
		ItemID:    "ghost",
		Answer:    "40 cm²",
	})
	if !errors.Is(err, store.ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
}

func TestSaveAttemptUpsertsAndStartsSession(t *testing.T) {
	svc, gw := newTestSession(t)
	ctx := context.Background()

	sess, items, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}

	fb, err := svc.SaveAttempt(ctx, AttemptInput{
		SessionID: sess.ID, ItemID: items[0].ID, Answer: "26 cm²",
	})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct {
		t.Error("wrong answer graded correct")
	}
	if fb.CorrectAnswer != "40 cm²" || fb.Explanation == "" {
		t.Errorf("feedback = %+v", fb)
	}
	if fb.ErrorKind != catalog.ErrorCalculation {
		t.Errorf("ErrorKind = %q, want %q", fb.ErrorKind, catalog.ErrorCalculation)
	}

	// Retrying the same item replaces the attempt; the last answer wins.
	fb, err = svc.SaveAttempt(ctx, AttemptInput{
		SessionID: sess.ID, ItemID: items[0].ID, Answer: "40 cm²",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct {
		t.Error("correct answer graded wrong")
	}
	if fb.ErrorKind != "" {
		t.Errorf("correct feedback carries ErrorKind %q", fb.ErrorKind)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	attempts := doc.AttemptsBySession(sess.ID)
	if len(attempts) != 1 {
		t.Fatalf("retained %d attempts, want 1", len(attempts))
	}
	if !attempts[0].Correct {
		t.Error("retained attempt should be the correct retry")
	}
	if got := doc.SessionByID(sess.ID, "stu").Status; got != store.SessionInProgress {
		t.Errorf("Status = %q, want implicit %q", got, store.SessionInProgress)
	}
}

func TestCompleteFullSession(t *testing.T) {
	svc, gw := newTestSession(t)
	ctx := context.Background()

	sess, items, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range items {
		answer := "40 cm²"
		if it.TemplateID == "item-geo-2" {
			answer = "verdadeiro"
		}
		if _, err := svc.SaveAttempt(ctx, AttemptInput{
			SessionID: sess.ID, ItemID: it.ID, Answer: answer,
		}); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := svc.Complete(ctx, "stu", sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if sum.ScorePercent != 100 || sum.CorrectCount != 10 || sum.WrongCount != 0 {
		t.Errorf("summary = %+v, want 100%% with 10 correct", sum)
	}
	// First activity day: streak 1, points 10*8 + 20 + 2.
	if sum.Streak != 1 {
		t.Errorf("Streak = %d, want 1", sum.Streak)
	}
	if sum.GainedPoints != 102 || sum.TotalPoints != 102 {
		t.Errorf("points = %d gained, %d total, want 102/102", sum.GainedPoints, sum.TotalPoints)
	}
	if len(sum.WeakTopics) != 0 {
		t.Errorf("WeakTopics = %v, want none", sum.WeakTopics)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	got := doc.SessionByID(sess.ID, "stu")
	if got.Status != store.SessionCompleted || got.EndedAt == "" {
		t.Errorf("session = %+v", got)
	}
	prog := doc.ProgressFor("stu", "mat-geometria-plana")
	if prog == nil {
		t.Fatal("unit progress not recomputed")
	}
	if prog.MasteryPercent != 100 || prog.Status != store.ProgressMastered {
		t.Errorf("progress = %+v", prog)
	}
}

func TestCompleteScoresAgainstPlanCount(t *testing.T) {
	svc, _ := newTestSession(t)
	ctx := context.Background()

	sess, items, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	// Answer only four of ten items, three correctly.
	answers := []string{"40 cm²", "verdadeiro", "13 cm²", "verdadeiro"}
	for i, a := range answers {
		if _, err := svc.SaveAttempt(ctx, AttemptInput{
			SessionID: sess.ID, ItemID: items[i].ID, Answer: a,
		}); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := svc.Complete(ctx, "stu", sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Unanswered items count as wrong: 3/10.
	if sum.ScorePercent != 30 || sum.CorrectCount != 3 || sum.WrongCount != 7 {
		t.Errorf("summary = %+v, want 30%% with 3 correct, 7 wrong", sum)
	}
	if len(sum.WeakTopics) == 0 {
		t.Error("expected wrong topics in the summary")
	}
}

func TestCompleteUnknownSession(t *testing.T) {
	svc, _ := newTestSession(t)
	_, err := svc.Complete(context.Background(), "stu", "no-such-session")
	if !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestCompleteTwiceDoesNotDoubleCount(t *testing.T) {
	svc, _ := newTestSession(t)
	ctx := context.Background()

	sess, items, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SaveAttempt(ctx, AttemptInput{
		SessionID: sess.ID, ItemID: items[0].ID, Answer: "40 cm²",
	}); err != nil {
		t.Fatal(err)
	}

	first, err := svc.Complete(ctx, "stu", sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Complete(ctx, "stu", sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if second.GainedPoints != 0 {
		t.Errorf("second completion gained %d points", second.GainedPoints)
	}
	if second.TotalPoints != first.TotalPoints {
		t.Errorf("TotalPoints drifted: %d then %d", first.TotalPoints, second.TotalPoints)
	}
	if second.ScorePercent != first.ScorePercent {
		t.Errorf("score drifted: %d then %d", first.ScorePercent, second.ScorePercent)
	}
}

func TestAbandon(t *testing.T) {
	svc, gw := newTestSession(t)
	ctx := context.Background()

	sess, _, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Abandon(ctx, "stu", sess.ID); err != nil {
		t.Fatal(err)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	got := doc.SessionByID(sess.ID, "stu")
	if got.Status != store.SessionAbandoned || got.EndedAt == "" {
		t.Errorf("session = %+v", got)
	}

	// Unknown ids are ignored.
	if err := svc.Abandon(ctx, "stu", "no-such-session"); err != nil {
		t.Errorf("unknown session abandon: %v", err)
	}
}

func TestAbandonCompletedSessionIsNoOp(t *testing.T) {
	svc, gw := newTestSession(t)
	ctx := context.Background()

	sess, _, err := svc.Create(ctx, "stu", geometryConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Complete(ctx, "stu", sess.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Abandon(ctx, "stu", sess.ID); err != nil {
		t.Fatal(err)
	}

	doc, err := gw.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.SessionByID(sess.ID, "stu").Status; got != store.SessionCompleted {
		t.Errorf("Status = %q, want %q", got, store.SessionCompleted)
	}
}
