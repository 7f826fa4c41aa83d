package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/store"
)

// Storage keys, one JSON blob per logical entity.
const (
	keyProfile  = "profile"
	keyMeals    = "meals"
	keyDayStats = "day_stats"
	keyCombos   = "combos"
	keyPlanner  = "planner"
	keyShopping = "shopping_list"
)

// DateKeyLayout is the calendar-day partition key format, local time.
const DateKeyLayout = "2006-01-02"

// Ledger owns every persisted entity and is the single write path to the
// store. Reads return detached values; callers must go through the
// corresponding setter to persist a mutation.
type Ledger struct {
	store *store.Store
	now   func() time.Time
}

func New(s *store.Store) *Ledger {
	return &Ledger{store: s, now: time.Now}
}

// SetClock overrides the ledger's notion of now. Tests only.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

func (l *Ledger) Now() time.Time {
	return l.now()
}

// TodayKey returns the dateKey for the current local calendar day.
func (l *Ledger) TodayKey() string {
	return l.now().Local().Format(DateKeyLayout)
}

func DateKey(t time.Time) string {
	return t.Local().Format(DateKeyLayout)
}

func defaultProfile() model.Profile {
	return model.Profile{
		WeightKg:     70,
		HeightCm:     170,
		Age:          30,
		Gender:       "male",
		TargetKcal:   2000,
		FiberTargetG: 25,
		Strategy:     model.StrategyBalanced,
		CustomMacros: model.Macros{Protein: 30, Carbs: 40, Fat: 30},
		MicroTargets: model.MicroTargets{SodiumMg: 2300, SugarG: 50},
		Credits:      50,
		Level:        1,
	}
}

// Profile reads the stored profile, created lazily with defaults on first
// read. Sub-fields absent from an older blob are default-filled on every
// read so callers never see a partially populated profile.
func (l *Ledger) Profile() model.Profile {
	p := store.Get(l.store, keyProfile, defaultProfile())
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Strategy == "" {
		p.Strategy = model.StrategyBalanced
	}
	if p.TargetKcal <= 0 {
		p.TargetKcal = 2000
	}
	if p.FiberTargetG <= 0 {
		p.FiberTargetG = 25
	}
	if p.MicroTargets == (model.MicroTargets{}) {
		p.MicroTargets = model.MicroTargets{SodiumMg: 2300, SugarG: 50}
	}
	if p.CustomMacros == (model.Macros{}) {
		p.CustomMacros = model.Macros{Protein: 30, Carbs: 40, Fat: 30}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.WeightHistory == nil {
		p.WeightHistory = []model.WeightRecord{}
	}
	if p.MeasurementsHistory == nil {
		p.MeasurementsHistory = []model.MeasurementRecord{}
	}
	return p
}

func (l *Ledger) SaveProfile(p model.Profile) error {
	return store.Set(l.store, keyProfile, p)
}

// RecordWeight upserts today's weight-history entry and the current weight.
// At most one entry exists per calendar date.
func (l *Ledger) RecordWeight(weightKg float64) error {
	if weightKg <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	p := l.Profile()
	today := l.TodayKey()
	kept := p.WeightHistory[:0]
	for _, h := range p.WeightHistory {
		if h.Date != today {
			kept = append(kept, h)
		}
	}
	p.WeightHistory = append(kept, model.WeightRecord{Date: today, WeightKg: weightKg})
	sort.Slice(p.WeightHistory, func(i, j int) bool { return p.WeightHistory[i].Date < p.WeightHistory[j].Date })
	p.WeightKg = weightKg
	return l.SaveProfile(p)
}

// RecordMeasurements upserts today's waist/hip/fat measurements.
func (l *Ledger) RecordMeasurements(m model.MeasurementRecord) error {
	p := l.Profile()
	if m.Date == "" {
		m.Date = l.TodayKey()
	}
	kept := p.MeasurementsHistory[:0]
	for _, h := range p.MeasurementsHistory {
		if h.Date != m.Date {
			kept = append(kept, h)
		}
	}
	p.MeasurementsHistory = append(kept, m)
	sort.Slice(p.MeasurementsHistory, func(i, j int) bool {
		return p.MeasurementsHistory[i].Date < p.MeasurementsHistory[j].Date
	})
	return l.SaveProfile(p)
}

// Meals returns the full unfiltered entry list, oldest first.
func (l *Ledger) Meals() []model.MealEntry {
	return store.Get(l.store, keyMeals, []model.MealEntry{})
}

// MealsOn filters the full history down to one calendar day.
func (l *Ledger) MealsOn(dateKey string) []model.MealEntry {
	out := make([]model.MealEntry, 0)
	for _, m := range l.Meals() {
		if m.DateKey == dateKey {
			out = append(out, m)
		}
	}
	return out
}

// MealsBetween returns entries with from <= dateKey <= to, boundaries
// inclusive. Date keys sort lexicographically.
func (l *Ledger) MealsBetween(from, to string) []model.MealEntry {
	out := make([]model.MealEntry, 0)
	for _, m := range l.Meals() {
		if m.DateKey >= from && m.DateKey <= to {
			out = append(out, m)
		}
	}
	return out
}

// AddMeal validates and appends one entry, generating its id and dateKey.
// The list is re-read on every call so two adds in the same tick cannot
// lose a write to a stale cached slice.
func (l *Ledger) AddMeal(e model.MealEntry) (model.MealEntry, error) {
	e.Desc = strings.TrimSpace(e.Desc)
	if e.Desc == "" {
		return model.MealEntry{}, fmt.Errorf("entry description is required")
	}
	if e.Cals < 0 {
		return model.MealEntry{}, fmt.Errorf("calories must be >= 0")
	}
	if e.Type == "" {
		e.Type = model.EntryFood
	}
	if e.Type != model.EntryFood && e.Type != model.EntryExercise {
		return model.MealEntry{}, fmt.Errorf("invalid entry type %q", e.Type)
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	if e.Type == model.EntryExercise {
		e.Macros = model.Macros{}
		e.Micros = nil
		if e.Category == "" {
			e.Category = model.CategoryExercise
		}
	} else if e.Score == 0 {
		e.Score = 5
	}
	e.ID = newEntryID(e.Timestamp)
	e.DateKey = DateKey(e.Timestamp)

	meals := l.Meals()
	meals = append(meals, e)
	if err := store.Set(l.store, keyMeals, meals); err != nil {
		return model.MealEntry{}, err
	}
	return e, nil
}

// DeleteMeal removes exactly one entry by id. A stale or unknown id is a
// silent no-op.
func (l *Ledger) DeleteMeal(id string) error {
	meals := l.Meals()
	kept := meals[:0]
	found := false
	for _, m := range meals {
		if m.ID == id && !found {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return nil
	}
	return store.Set(l.store, keyMeals, kept)
}

// UpdateMeal replaces the entry with the same id; used for symptom tagging.
// An unknown id is a silent no-op.
func (l *Ledger) UpdateMeal(e model.MealEntry) error {
	meals := l.Meals()
	for i := range meals {
		if meals[i].ID == e.ID {
			meals[i] = e
			return store.Set(l.store, keyMeals, meals)
		}
	}
	return nil
}

func newEntryID(t time.Time) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), uuid.NewString()[:8])
}

// NewBatchID generates the shared parent id linking the entries of one
// multi-item commit.
func NewBatchID(t time.Time) string {
	return newEntryID(t)
}
