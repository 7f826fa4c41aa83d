package model

import "time"

// Macro strategy identifiers accepted on Profile.Strategy.
const (
	StrategyBalanced  = "balanced"
	StrategyLowCarb   = "lowcarb"
	StrategyKetogenic = "ketogenic"
	StrategyCustom    = "custom"
)

// Entry types stored on MealEntry.Type. Exercise entries carry burned
// calories and zero macros.
const (
	EntryFood     = "food"
	EntryExercise = "exercise"
)

// Meal categories used by the app. Category is free text; these are the
// well-known slots.
const (
	CategoryBreakfast = "Café da Manhã"
	CategoryLunch     = "Almoço"
	CategorySnack     = "Lanche"
	CategoryDinner    = "Jantar"
	CategoryExercise  = "Exercício"
)

type Macros struct {
	Protein float64 `json:"p"`
	Carbs   float64 `json:"c"`
	Fat     float64 `json:"f"`
	Fiber   float64 `json:"fib"`
}

type Micros struct {
	SodiumMg  float64            `json:"sodium"`
	SugarG    float64            `json:"sugar"`
	Potassium float64            `json:"potassium"`
	Vitamins  map[string]float64 `json:"vitamins,omitempty"`
}

type MicroTargets struct {
	SodiumMg float64 `json:"sodium"`
	SugarG   float64 `json:"sugar"`
}

type WeightRecord struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
}

type MeasurementRecord struct {
	Date    string  `json:"date"`
	WaistCm float64 `json:"waist"`
	HipCm   float64 `json:"hip"`
	FatPct  float64 `json:"fatPct"`
}

// Profile is the single per-installation user record. Gamification state
// (credits, xp, level, streak, achievements) lives here alongside the
// biometric and target fields.
type Profile struct {
	Name                string              `json:"name"`
	WeightKg            float64             `json:"weight"`
	HeightCm            float64             `json:"height"`
	Age                 int                 `json:"age"`
	Gender              string              `json:"gender"`
	TargetKcal          float64             `json:"target"`
	FiberTargetG        float64             `json:"fiberTarget"`
	Strategy            string              `json:"strategy"`
	CustomMacros        Macros              `json:"customMacros"`
	MicroTargets        MicroTargets        `json:"microTargets"`
	Credits             int                 `json:"credits"`
	XP                  int                 `json:"xp"`
	Level               int                 `json:"level"`
	StreakDays          int                 `json:"streak_days"`
	LastActivity        *time.Time          `json:"last_activity_timestamp,omitempty"`
	Achievements        []string            `json:"achievements_unlocked"`
	WeightHistory       []WeightRecord      `json:"weightHistory"`
	MeasurementsHistory []MeasurementRecord `json:"measurementsHistory"`
	OnboardingDone      bool                `json:"onboardingDone"`
}

func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// MealEntry is one row of the daily ledger, either a food intake or an
// exercise burn. DateKey is derived from Timestamp in local time and is the
// partition key for every day-scoped query.
type MealEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	DateKey    string    `json:"dateKey"`
	Desc       string    `json:"desc"`
	Type       string    `json:"type"`
	Cals       float64   `json:"cals"`
	WeightG    float64   `json:"weight,omitempty"`
	Macros     Macros    `json:"macros"`
	Micros     *Micros   `json:"micros,omitempty"`
	Category   string    `json:"category"`
	Score      int       `json:"score,omitempty"`
	Symptoms   []string  `json:"symptoms,omitempty"`
	ParentID   string    `json:"parent_id,omitempty"`
	ParentName string    `json:"parent_name,omitempty"`
}

// DayStats holds per-day state that is not a ledger entry. FastingStart
// non-nil means a fast is running; FastingMinutes accumulates completed
// fasts for that day only.
type DayStats struct {
	WaterMl        float64    `json:"water"`
	FastingStart   *time.Time `json:"fastingStart,omitempty"`
	FastingMinutes float64    `json:"fastingMinutes"`
	Notes          string     `json:"notes"`
	Mood           string     `json:"mood"`
}

func NewDayStats() DayStats {
	return DayStats{Mood: "neutral"}
}

// ComboItem mirrors the review-item shape so a combo replays exactly what
// was confirmed.
type ComboItem struct {
	Desc    string  `json:"desc"`
	WeightG float64 `json:"weight"`
	Cals    float64 `json:"cals"`
	Macros  Macros  `json:"macros"`
	Micros  Micros  `json:"micros"`
	Score   int     `json:"score"`
}

type Combo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Items []ComboItem `json:"items"`
}

// PlannedMeal is one slot of a planner day; generated externally and stored
// opaquely.
type PlannedMeal struct {
	Desc          string  `json:"desc"`
	EstimatedCals float64 `json:"estimated_cals"`
}

type PlannerDay struct {
	Breakfast PlannedMeal `json:"breakfast"`
	Lunch     PlannedMeal `json:"lunch"`
	Snack     PlannedMeal `json:"snack"`
	Dinner    PlannedMeal `json:"dinner"`
}

type PlannerWeek struct {
	Days []PlannerDay `json:"days"`
}

type ShoppingItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
}

type ShoppingCategory struct {
	Name  string         `json:"name"`
	Items []ShoppingItem `json:"items"`
}

type ShoppingList struct {
	Categories []ShoppingCategory `json:"categories"`
}
