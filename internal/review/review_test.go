package review_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devpik/quantix-nutri-ai/internal/game"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/review"
	"github.com/devpik/quantix-nutri-ai/internal/store"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s, err := store.Open(filepath.Join(t.TempDir(), "quantix.db"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	l := ledger.New(s)
	l.SetClock(func() time.Time {
		return time.Date(2026, 8, 31, 13, 0, 0, 0, time.Local)
	})
	return l
}

func threeItems() []review.Item {
	return []review.Item{
		{Desc: "arroz", WeightG: 150, Cals: 190, Macros: model.Macros{Carbs: 42}},
		{Desc: "feijão", WeightG: 100, Cals: 95, Macros: model.Macros{Protein: 6}},
		{Desc: "bife", WeightG: 120, Cals: 250, Macros: model.Macros{Protein: 32}},
	}
}

func TestNewSessionSanitizesItems(t *testing.T) {
	t.Parallel()
	s := review.NewSession([]review.Item{
		{Desc: "  ", Cals: -10},
	})
	items := s.Items()
	if items[0].Desc == "" || items[0].Cals != 0 || items[0].Score != 5 {
		t.Fatalf("item not sanitized: %+v", items[0])
	}
}

func TestSessionEditing(t *testing.T) {
	t.Parallel()
	s := review.NewSession(threeItems())

	s.UpdateItem(0, review.Item{Desc: "arroz integral", Cals: 170, Score: 7})
	s.RemoveItem(2)
	s.AddItem(review.Item{Desc: "salada", Cals: 40, Score: 9})

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Desc != "arroz integral" {
		t.Fatalf("update not applied: %+v", items[0])
	}
	if s.TotalCalories() != 170+95+40 {
		t.Fatalf("unexpected total %.0f", s.TotalCalories())
	}

	// out-of-range edits are no-ops
	s.UpdateItem(10, review.Item{Desc: "x"})
	s.RemoveItem(-1)
	if len(s.Items()) != 3 {
		t.Fatal("out-of-range edit mutated the batch")
	}
}

func TestConfirmCommitsBatchWithSingleXPTransaction(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	s := review.NewSession(threeItems())

	res, err := s.Confirm(l, review.ConfirmOptions{Category: model.CategoryLunch})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if s.State() != review.StateCommitted {
		t.Fatalf("unexpected state %q", s.State())
	}
	if len(res.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(res.Entries))
	}
	for _, e := range res.Entries[1:] {
		if !e.Timestamp.Equal(res.Entries[0].Timestamp) {
			t.Fatal("entries do not share one timestamp")
		}
	}

	p := l.Profile()
	// one meal_entry transaction with the plate bonus, plus first-day
	// streak and the first_step badge
	if p.XP != 50+30+50 {
		t.Fatalf("unexpected XP %d", p.XP)
	}
	if p.StreakDays != 1 {
		t.Fatalf("streak not started: %d", p.StreakDays)
	}
	if !p.HasAchievement("first_step") {
		t.Fatal("first_step badge not unlocked")
	}

	// a committed session cannot commit again
	if _, err := s.Confirm(l, review.ConfirmOptions{}); err == nil {
		t.Fatal("expected error on double confirm")
	}
}

func TestConfirmSaveAsCombo(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	s := review.NewSession(threeItems())

	res, err := s.Confirm(l, review.ConfirmOptions{
		Category:    model.CategoryLunch,
		SaveAsCombo: true,
		ComboName:   "PF completo",
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Combo == nil || res.Combo.Name != "PF completo" || len(res.Combo.Items) != 3 {
		t.Fatalf("combo not saved: %+v", res.Combo)
	}
	for _, e := range res.Entries {
		if e.ParentID != res.Combo.ID || e.ParentName != res.Combo.Name {
			t.Fatalf("entry not linked to combo: %+v", e)
		}
	}
	// combo_entry rate with plate bonus, streak start, first_step badge
	if p := l.Profile(); p.XP != 100+30+50 {
		t.Fatalf("unexpected XP %d", p.XP)
	}
}

func TestConfirmRequiresComboName(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	s := review.NewSession(threeItems())

	if _, err := s.Confirm(l, review.ConfirmOptions{SaveAsCombo: true}); err == nil {
		t.Fatal("expected error without combo name")
	}
	if s.State() != review.StateReviewing {
		t.Fatal("failed confirm changed the state")
	}
	if len(l.Meals()) != 0 {
		t.Fatal("failed confirm wrote entries")
	}
}

func TestConfirmRejectsEmptyBatch(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	s := review.NewSession(threeItems())
	s.RemoveItem(0)
	s.RemoveItem(0)
	s.RemoveItem(0)

	if _, err := s.Confirm(l, review.ConfirmOptions{}); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestCancelDiscardsWithoutWriting(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)
	s := review.NewSession(threeItems())
	s.Cancel()

	if s.State() != review.StateCancelled {
		t.Fatalf("unexpected state %q", s.State())
	}
	if len(l.Meals()) != 0 || l.Profile().XP != 0 {
		t.Fatal("cancel mutated the ledger")
	}
}

func TestApplyComboReplaysBatch(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)

	combo, err := l.AddCombo("café reforçado", []model.ComboItem{
		{Desc: "pão", Cals: 150, Score: 4},
		{Desc: "ovos", Cals: 160, Score: 8},
	})
	if err != nil {
		t.Fatalf("add combo: %v", err)
	}

	res, err := review.ApplyCombo(l, combo.ID, model.CategoryBreakfast)
	if err != nil {
		t.Fatalf("apply combo: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res.Entries))
	}
	for _, e := range res.Entries {
		if e.ParentID != combo.ID || e.Category != model.CategoryBreakfast {
			t.Fatalf("unexpected entry: %+v", e)
		}
	}
	// combo_entry rate, no plate bonus for 2 items, plus streak + badge
	if p := l.Profile(); p.XP != 100+50 {
		t.Fatalf("unexpected XP %d", p.XP)
	}
}

func TestSettleRewardsDirectEntry(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)

	if _, err := l.AddMeal(model.MealEntry{Desc: "pão com ovo", Cals: 300}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	// the bare add awards nothing until the settlement pass runs
	if p := l.Profile(); p.XP != 0 || p.StreakDays != 0 || p.LastActivity != nil {
		t.Fatalf("add alone mutated gamification state: %+v", p)
	}

	events, err := review.Settle(l, game.ActionMealEntry, 1)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	p := l.Profile()
	// meal_entry rate plus the first_step badge
	if p.XP != 50+50 {
		t.Fatalf("unexpected XP %d", p.XP)
	}
	if p.StreakDays != 1 || p.LastActivity == nil {
		t.Fatalf("streak not started: %+v", p)
	}
	if !p.HasAchievement("first_step") {
		t.Fatal("first_step badge not unlocked")
	}
	if len(events) == 0 {
		t.Fatal("expected settlement events")
	}
}

func TestConfirmMultiItemBatchSharesParentID(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)

	res, err := review.NewSession(threeItems()).Confirm(l, review.ConfirmOptions{Category: model.CategoryLunch})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Entries[0].ParentID == "" {
		t.Fatal("multi-item batch has no parent id")
	}
	for _, e := range res.Entries[1:] {
		if e.ParentID != res.Entries[0].ParentID {
			t.Fatal("entries do not share one parent id")
		}
	}

	single, err := review.NewSession(threeItems()[:1]).Confirm(l, review.ConfirmOptions{})
	if err != nil {
		t.Fatalf("confirm single: %v", err)
	}
	if single.Entries[0].ParentID != "" {
		t.Fatalf("single entry got a parent id: %q", single.Entries[0].ParentID)
	}
}

func TestApplyComboMissingID(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t)

	_, err := review.ApplyCombo(l, "nope", "")
	if !errors.Is(err, review.ErrComboNotFound) {
		t.Fatalf("expected ErrComboNotFound, got %v", err)
	}
	if len(l.Meals()) != 0 {
		t.Fatal("missing combo wrote entries")
	}
}
