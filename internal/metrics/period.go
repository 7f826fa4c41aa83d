package metrics

import "github.com/devpik/quantix-nutri-ai/internal/model"

// DayAggregate is one day's worth of period analytics. AvgQualityScore is
// nil when no food was logged that day; WeightKg is carried forward from
// the last known history entry; waist/hip/fat are sparse, never carried.
type DayAggregate struct {
	DateKey         string
	IntakeKcal      float64
	BurnKcal        float64
	Macros          model.Macros
	AvgQualityScore *float64
	WaterMl         float64
	WeightKg        float64
	Waist           *float64
	Hip             *float64
	FatPct          *float64
	Balance         string
}

// AggregatePeriod produces per-day aggregates for an ordered list of date
// keys. Meals and dayStats are the full ledger snapshots; the function
// filters per key, preserving the O(n)-scan semantics of the ledger.
func AggregatePeriod(p model.Profile, dateKeys []string, meals []model.MealEntry, dayStats map[string]model.DayStats) []DayAggregate {
	weightByDate := make(map[string]float64, len(p.WeightHistory))
	for _, h := range p.WeightHistory {
		weightByDate[h.Date] = h.WeightKg
	}
	measureByDate := make(map[string]model.MeasurementRecord, len(p.MeasurementsHistory))
	for _, h := range p.MeasurementsHistory {
		measureByDate[h.Date] = h
	}

	out := make([]DayAggregate, 0, len(dateKeys))
	lastWeight := p.WeightKg
	for _, key := range dateKeys {
		agg := DayAggregate{DateKey: key}
		dayMeals := make([]model.MealEntry, 0)
		var scoreSum float64
		var foodCount int
		for _, m := range meals {
			if m.DateKey != key {
				continue
			}
			dayMeals = append(dayMeals, m)
			if m.Type == model.EntryExercise {
				agg.BurnKcal += m.Cals
				continue
			}
			agg.IntakeKcal += m.Cals
			agg.Macros.Protein += m.Macros.Protein
			agg.Macros.Carbs += m.Macros.Carbs
			agg.Macros.Fat += m.Macros.Fat
			agg.Macros.Fiber += m.Macros.Fiber
			score := m.Score
			if score == 0 {
				score = 5
			}
			scoreSum += float64(score)
			foodCount++
		}
		if foodCount > 0 {
			avg := scoreSum / float64(foodCount)
			agg.AvgQualityScore = &avg
		}
		if stats, ok := dayStats[key]; ok {
			agg.WaterMl = stats.WaterMl
		}
		if w, ok := weightByDate[key]; ok {
			lastWeight = w
		}
		agg.WeightKg = lastWeight
		if m, ok := measureByDate[key]; ok {
			waist, hip, fat := m.WaistCm, m.HipCm, m.FatPct
			agg.Waist, agg.Hip, agg.FatPct = &waist, &hip, &fat
		}
		agg.Balance = DayBalance(p, dayMeals)
		out = append(out, agg)
	}
	return out
}

type PeakHourResult struct {
	Hour    int
	AvgKcal float64
}

// PeakHour finds the hour of day with the highest average calorie intake.
// Buckets sum food calories per hour across the given entries, then divide
// by the number of distinct days that logged at least one food entry, not
// the span of the range. Returns false when no food entries exist.
func PeakHour(meals []model.MealEntry) (PeakHourResult, bool) {
	var buckets [24]float64
	activeDays := make(map[string]struct{})
	for _, m := range meals {
		if m.Type == model.EntryExercise {
			continue
		}
		buckets[m.Timestamp.Local().Hour()] += m.Cals
		activeDays[m.DateKey] = struct{}{}
	}
	if len(activeDays) == 0 {
		return PeakHourResult{}, false
	}
	best := 0
	for h := 1; h < 24; h++ {
		if buckets[h] > buckets[best] {
			best = h
		}
	}
	return PeakHourResult{
		Hour:    best,
		AvgKcal: buckets[best] / float64(len(activeDays)),
	}, true
}

// Metabolic load classifications against the profile micro targets.
const (
	LoadGood    = "good"
	LoadCaution = "caution"
	LoadOver    = "over"
)

type MicroLoad struct {
	AvgDaily float64
	Target   float64
	Status   string
}

type MetabolicLoad struct {
	Sodium     MicroLoad
	Sugar      MicroLoad
	ActiveDays int
}

// ComputeMetabolicLoad averages daily sodium and sugar intake over active
// days only — days with zero food entries are excluded from the
// denominator, not treated as zero-intake days. Zero active days yields
// zero averages with the good status.
func ComputeMetabolicLoad(targets model.MicroTargets, dateKeys []string, meals []model.MealEntry) MetabolicLoad {
	var sodium, sugar float64
	active := 0
	for _, key := range dateKeys {
		dayHasFood := false
		for _, m := range meals {
			if m.DateKey != key || m.Type == model.EntryExercise {
				continue
			}
			dayHasFood = true
			if m.Micros != nil {
				sodium += m.Micros.SodiumMg
				sugar += m.Micros.SugarG
			}
		}
		if dayHasFood {
			active++
		}
	}
	out := MetabolicLoad{ActiveDays: active}
	if active > 0 {
		sodium /= float64(active)
		sugar /= float64(active)
	} else {
		sodium, sugar = 0, 0
	}
	out.Sodium = MicroLoad{AvgDaily: sodium, Target: targets.SodiumMg, Status: loadStatus(sodium, targets.SodiumMg)}
	out.Sugar = MicroLoad{AvgDaily: sugar, Target: targets.SugarG, Status: loadStatus(sugar, targets.SugarG)}
	return out
}

func loadStatus(value, target float64) string {
	if target <= 0 {
		return LoadGood
	}
	pct := value / target
	switch {
	case pct < 0.7:
		return LoadGood
	case pct <= 1.0:
		return LoadCaution
	default:
		return LoadOver
	}
}
