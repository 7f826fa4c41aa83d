package metrics

import "github.com/devpik/quantix-nutri-ai/internal/model"

// DailyTotals aggregates one day's entries. Food entries contribute to
// intake and macro sums; exercise entries contribute only to burned.
type DailyTotals struct {
	IntakeKcal    float64
	BurnedKcal    float64
	NetKcal       float64
	RemainingKcal float64
	Macros        model.Macros
	Over          bool
}

// ComputeDailyTotals sums the entries for a single day against the
// profile's calorie target. Remaining < 0 sets Over, the overrun flag the
// presentation layer renders distinctly.
func ComputeDailyTotals(p model.Profile, meals []model.MealEntry) DailyTotals {
	out := DailyTotals{}
	for _, m := range meals {
		if m.Type == model.EntryExercise {
			out.BurnedKcal += m.Cals
			continue
		}
		out.IntakeKcal += m.Cals
		out.Macros.Protein += m.Macros.Protein
		out.Macros.Carbs += m.Macros.Carbs
		out.Macros.Fat += m.Macros.Fat
		out.Macros.Fiber += m.Macros.Fiber
	}
	out.NetKcal = out.IntakeKcal - out.BurnedKcal
	out.RemainingKcal = p.TargetKcal - out.NetKcal
	out.Over = out.RemainingKcal < 0
	return out
}

// Day balance buckets for the calendar heatmap.
const (
	BalanceNoData   = "no_data"
	BalanceOnTarget = "on_target"
	BalanceUnder    = "under"
	BalanceOver     = "over"
)

// DayBalance classifies a day's net intake against the target: within 10%
// is on target, otherwise under or over; days with no food logged are
// no-data, not zero-intake.
func DayBalance(p model.Profile, meals []model.MealEntry) string {
	t := ComputeDailyTotals(p, meals)
	if t.IntakeKcal == 0 {
		return BalanceNoData
	}
	diff := t.NetKcal - p.TargetKcal
	if diff < 0 {
		diff = -diff
	}
	if diff <= p.TargetKcal*0.1 {
		return BalanceOnTarget
	}
	if t.NetKcal < p.TargetKcal {
		return BalanceUnder
	}
	return BalanceOver
}
