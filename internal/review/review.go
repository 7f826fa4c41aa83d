package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devpik/quantix-nutri-ai/internal/game"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

// Session states.
const (
	StateIdle      = "idle"
	StateReviewing = "reviewing"
	StateCommitted = "committed"
	StateCancelled = "cancelled"
)

// ErrComboNotFound reports a replay of a combo id that no longer exists.
var ErrComboNotFound = errors.New("combo not found")

// Item is one pending entry under review, editable until confirmed.
type Item struct {
	Desc    string
	WeightG float64
	Cals    float64
	Macros  model.Macros
	Micros  model.Micros
	Score   int
}

// Session holds a batch of estimated items between analysis and commit.
// Nothing touches the ledger until Confirm.
type Session struct {
	state string
	items []Item
}

// NewSession opens a review over the given items, sanitized so the editing
// surface never sees missing fields: blank descriptions get a placeholder,
// scores default to 5.
func NewSession(items []Item) *Session {
	s := &Session{state: StateReviewing}
	for _, it := range items {
		s.items = append(s.items, sanitize(it))
	}
	return s
}

func sanitize(it Item) Item {
	it.Desc = strings.TrimSpace(it.Desc)
	if it.Desc == "" {
		it.Desc = "Item sem descrição"
	}
	if it.Cals < 0 {
		it.Cals = 0
	}
	if it.Score <= 0 {
		it.Score = 5
	}
	return it
}

func (s *Session) State() string { return s.state }

// Items returns a copy of the pending batch.
func (s *Session) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Session) AddItem(it Item) {
	if s.state != StateReviewing {
		return
	}
	s.items = append(s.items, sanitize(it))
}

// UpdateItem replaces the item at idx; out-of-range indexes are a no-op.
func (s *Session) UpdateItem(idx int, it Item) {
	if s.state != StateReviewing || idx < 0 || idx >= len(s.items) {
		return
	}
	s.items[idx] = sanitize(it)
}

func (s *Session) RemoveItem(idx int) {
	if s.state != StateReviewing || idx < 0 || idx >= len(s.items) {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

func (s *Session) TotalCalories() float64 {
	var total float64
	for _, it := range s.items {
		total += it.Cals
	}
	return total
}

// Cancel discards the batch without touching the ledger.
func (s *Session) Cancel() {
	if s.state == StateReviewing {
		s.state = StateCancelled
	}
}

// ConfirmOptions controls the commit: the category stamped on every entry
// and, when SaveAsCombo is set, the name of the combo created from the
// batch before commit.
type ConfirmOptions struct {
	Category    string
	SaveAsCombo bool
	ComboName   string
}

// Result reports what a commit produced.
type Result struct {
	Entries []model.MealEntry
	Combo   *model.Combo
	Events  []game.Event
}

// Confirm commits the batch: every item becomes a ledger entry sharing one
// timestamp and parent linkage, the profile is charged exactly one XP
// transaction for the whole batch, then streak and badge checks run. A
// save-as-combo commit persists the combo first and links the entries to
// it.
func (s *Session) Confirm(l *ledger.Ledger, opts ConfirmOptions) (Result, error) {
	if s.state != StateReviewing {
		return Result{}, fmt.Errorf("session is %s, not reviewing", s.state)
	}
	if len(s.items) == 0 {
		return Result{}, fmt.Errorf("nothing to confirm")
	}
	if opts.SaveAsCombo && strings.TrimSpace(opts.ComboName) == "" {
		return Result{}, fmt.Errorf("combo name is required")
	}

	var res Result
	action := game.ActionMealEntry
	parentID, parentName := "", ""
	if opts.SaveAsCombo {
		items := make([]model.ComboItem, len(s.items))
		for i, it := range s.items {
			items[i] = model.ComboItem{
				Desc:    it.Desc,
				WeightG: it.WeightG,
				Cals:    it.Cals,
				Macros:  it.Macros,
				Micros:  it.Micros,
				Score:   it.Score,
			}
		}
		combo, err := l.AddCombo(strings.TrimSpace(opts.ComboName), items)
		if err != nil {
			return Result{}, err
		}
		res.Combo = &combo
		action = game.ActionComboEntry
		parentID, parentName = combo.ID, combo.Name
	}

	entries, err := commitBatch(l, s.items, opts.Category, parentID, parentName)
	if err != nil {
		return Result{}, err
	}
	res.Entries = entries
	res.Events, err = settleRewards(l, action, len(entries))
	if err != nil {
		return Result{}, err
	}
	s.state = StateCommitted
	return res, nil
}

// ApplyCombo replays a stored combo as a fresh batch under the combo-entry
// XP rule. A stale combo id commits nothing and returns ErrComboNotFound.
func ApplyCombo(l *ledger.Ledger, comboID, category string) (Result, error) {
	combo, ok := l.ComboByID(comboID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrComboNotFound, comboID)
	}
	items := make([]Item, len(combo.Items))
	for i, it := range combo.Items {
		items[i] = sanitize(Item{
			Desc:    it.Desc,
			WeightG: it.WeightG,
			Cals:    it.Cals,
			Macros:  it.Macros,
			Micros:  it.Micros,
			Score:   it.Score,
		})
	}
	entries, err := commitBatch(l, items, category, combo.ID, combo.Name)
	if err != nil {
		return Result{}, err
	}
	events, err := settleRewards(l, game.ActionComboEntry, len(entries))
	if err != nil {
		return Result{}, err
	}
	return Result{Entries: entries, Events: events}, nil
}

// commitBatch writes the items as food entries sharing one timestamp and,
// for multi-item batches, one parent id, so the batch reads as a single
// meal in day views.
func commitBatch(l *ledger.Ledger, items []Item, category, parentID, parentName string) ([]model.MealEntry, error) {
	ts := l.Now()
	if parentID == "" && len(items) > 1 {
		parentID = ledger.NewBatchID(ts)
	}
	entries := make([]model.MealEntry, 0, len(items))
	for _, it := range items {
		micros := it.Micros
		e, err := l.AddMeal(model.MealEntry{
			Timestamp:  ts,
			Desc:       it.Desc,
			Type:       model.EntryFood,
			Cals:       it.Cals,
			WeightG:    it.WeightG,
			Macros:     it.Macros,
			Micros:     &micros,
			Category:   category,
			Score:      it.Score,
			ParentID:   parentID,
			ParentName: parentName,
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Settle charges the XP transaction and runs the streak and badge passes
// for a ledger mutation made outside a review session, such as a manual
// entry. Commits inside a session already settle once per batch.
func Settle(l *ledger.Ledger, action string, itemCount int) ([]game.Event, error) {
	return settleRewards(l, action, itemCount)
}

// settleRewards applies the single per-batch XP transaction, then the
// streak and badge passes, persisting the profile once.
func settleRewards(l *ledger.Ledger, action string, itemCount int) ([]game.Event, error) {
	p := l.Profile()
	events := game.TransactionXP(&p, action, itemCount)
	events = append(events, game.CheckStreak(&p, l.Now())...)
	stats := l.TodayStats()
	events = append(events, game.CheckBadges(&p, foodCount(l), stats.WaterMl, p.StreakDays)...)
	if err := l.SaveProfile(p); err != nil {
		return nil, err
	}
	return events, nil
}

func foodCount(l *ledger.Ledger) int {
	n := 0
	for _, m := range l.Meals() {
		if m.Type == model.EntryFood {
			n++
		}
	}
	return n
}
