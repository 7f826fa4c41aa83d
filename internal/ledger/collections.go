package ledger

import (
	"fmt"

	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/store"
)

func (l *Ledger) Combos() []model.Combo {
	return store.Get(l.store, keyCombos, []model.Combo{})
}

func (l *Ledger) SaveCombos(combos []model.Combo) error {
	return store.Set(l.store, keyCombos, combos)
}

// AddCombo persists a new named combo with a deep copy of its items and
// returns it with a generated id.
func (l *Ledger) AddCombo(name string, items []model.ComboItem) (model.Combo, error) {
	if name == "" {
		return model.Combo{}, fmt.Errorf("combo name is required")
	}
	copied := make([]model.ComboItem, len(items))
	copy(copied, items)
	combo := model.Combo{ID: newEntryID(l.now()), Name: name, Items: copied}
	combos := append(l.Combos(), combo)
	if err := l.SaveCombos(combos); err != nil {
		return model.Combo{}, err
	}
	return combo, nil
}

// ComboByID returns the combo and whether it exists.
func (l *Ledger) ComboByID(id string) (model.Combo, bool) {
	for _, c := range l.Combos() {
		if c.ID == id {
			return c, true
		}
	}
	return model.Combo{}, false
}

// DeleteCombo removes by id; unknown ids are a silent no-op.
func (l *Ledger) DeleteCombo(id string) error {
	combos := l.Combos()
	kept := combos[:0]
	found := false
	for _, c := range combos {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil
	}
	return l.SaveCombos(kept)
}

func (l *Ledger) Planner() model.PlannerWeek {
	return store.Get(l.store, keyPlanner, model.PlannerWeek{})
}

func (l *Ledger) SetPlanner(week model.PlannerWeek) error {
	return store.Set(l.store, keyPlanner, week)
}

func (l *Ledger) ShoppingList() model.ShoppingList {
	return store.Get(l.store, keyShopping, model.ShoppingList{})
}

func (l *Ledger) SetShoppingList(list model.ShoppingList) error {
	return store.Set(l.store, keyShopping, list)
}

// ToggleShoppingItem flips the checked flag, the only locally mutated
// shopping field. Out-of-range indexes are a silent no-op.
func (l *Ledger) ToggleShoppingItem(categoryIdx, itemIdx int) error {
	list := l.ShoppingList()
	if categoryIdx < 0 || categoryIdx >= len(list.Categories) {
		return nil
	}
	items := list.Categories[categoryIdx].Items
	if itemIdx < 0 || itemIdx >= len(items) {
		return nil
	}
	items[itemIdx].Checked = !items[itemIdx].Checked
	return l.SetShoppingList(list)
}
