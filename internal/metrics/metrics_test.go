package metrics_test

import (
	"testing"
	"time"

	"github.com/devpik/quantix-nutri-ai/internal/metrics"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

func baseProfile() model.Profile {
	return model.Profile{
		WeightKg:     70,
		HeightCm:     175,
		Age:          30,
		Gender:       "male",
		TargetKcal:   2000,
		FiberTargetG: 25,
		Strategy:     model.StrategyBalanced,
		MicroTargets: model.MicroTargets{SodiumMg: 2300, SugarG: 50},
	}
}

func foodEntry(day string, hour int, cals float64) model.MealEntry {
	t, _ := time.ParseInLocation("2006-01-02", day, time.Local)
	return model.MealEntry{
		Timestamp: t.Add(time.Duration(hour) * time.Hour),
		DateKey:   day,
		Type:      model.EntryFood,
		Cals:      cals,
		Score:     5,
	}
}

func TestMacroTargetsBalanced(t *testing.T) {
	t.Parallel()
	got := metrics.MacroTargets(baseProfile())
	if got.Protein != 150 || got.Carbs != 200 || got.Fat != 67 || got.Fiber != 25 {
		t.Fatalf("unexpected targets: %+v", got)
	}
}

func TestMacroTargetsKetogenic(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Strategy = model.StrategyKetogenic
	got := metrics.MacroTargets(p)
	if got.Protein != 125 || got.Carbs != 25 || got.Fat != 156 {
		t.Fatalf("unexpected keto targets: %+v", got)
	}
}

func TestMacroTargetsCustom(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.Strategy = model.StrategyCustom
	p.CustomMacros = model.Macros{Protein: 40, Carbs: 30, Fat: 30}
	got := metrics.MacroTargets(p)
	if got.Protein != 200 || got.Carbs != 150 || got.Fat != 67 {
		t.Fatalf("unexpected custom targets: %+v", got)
	}
}

func TestBMIClassification(t *testing.T) {
	t.Parallel()
	got := metrics.BMI(70, 175)
	if got.Value < 22.85 || got.Value > 22.87 {
		t.Fatalf("unexpected BMI value %.2f", got.Value)
	}
	if got.Classification != metrics.BMINormal {
		t.Fatalf("unexpected classification %q", got.Classification)
	}
	if metrics.BMI(50, 175).Classification != metrics.BMIUnderweight {
		t.Fatal("expected underweight")
	}
	if metrics.BMI(85, 175).Classification != metrics.BMIOverweight {
		t.Fatal("expected overweight")
	}
	if metrics.BMI(100, 175).Classification != metrics.BMIObese {
		t.Fatal("expected obese")
	}
}

func TestBMRMifflinStJeor(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	if got := metrics.BMR(p); got != 1648.75 {
		t.Fatalf("unexpected male BMR %.2f", got)
	}
	p.Gender = "female"
	if got := metrics.BMR(p); got != 1482.75 {
		t.Fatalf("unexpected female BMR %.2f", got)
	}
}

func TestComputeDailyTotalsOrderIndependent(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	meals := []model.MealEntry{
		{Type: model.EntryFood, Cals: 600, Macros: model.Macros{Protein: 30}},
		{Type: model.EntryExercise, Cals: 250},
		{Type: model.EntryFood, Cals: 900, Macros: model.Macros{Protein: 45}},
	}
	a := metrics.ComputeDailyTotals(p, meals)
	b := metrics.ComputeDailyTotals(p, []model.MealEntry{meals[2], meals[0], meals[1]})
	if a != b {
		t.Fatalf("order changed the totals: %+v vs %+v", a, b)
	}
	if a.IntakeKcal != 1500 || a.BurnedKcal != 250 || a.NetKcal != 1250 {
		t.Fatalf("unexpected totals: %+v", a)
	}
	if a.RemainingKcal != 750 || a.Over {
		t.Fatalf("unexpected remaining: %+v", a)
	}
}

func TestDayBalanceBuckets(t *testing.T) {
	t.Parallel()
	p := baseProfile()

	if got := metrics.DayBalance(p, nil); got != metrics.BalanceNoData {
		t.Fatalf("expected no_data, got %q", got)
	}
	within := []model.MealEntry{{Type: model.EntryFood, Cals: 1900}}
	if got := metrics.DayBalance(p, within); got != metrics.BalanceOnTarget {
		t.Fatalf("expected on_target, got %q", got)
	}
	under := []model.MealEntry{{Type: model.EntryFood, Cals: 1200}}
	if got := metrics.DayBalance(p, under); got != metrics.BalanceUnder {
		t.Fatalf("expected under, got %q", got)
	}
	over := []model.MealEntry{{Type: model.EntryFood, Cals: 2600}}
	if got := metrics.DayBalance(p, over); got != metrics.BalanceOver {
		t.Fatalf("expected over, got %q", got)
	}
}

func TestProjectWeightChange(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	proj := metrics.ProjectWeightChange(p, 0, metrics.BMR(p)-770, 30)
	if proj.DailyDeficit != 770 {
		t.Fatalf("unexpected deficit %.0f", proj.DailyDeficit)
	}
	if proj.WeightChangeKg != 3 {
		t.Fatalf("expected 3kg over 30 days, got %.2f", proj.WeightChangeKg)
	}
	if proj.ProjectedKg != 67 {
		t.Fatalf("unexpected projected weight %.2f", proj.ProjectedKg)
	}
}

func TestAggregatePeriodCarriesWeightForward(t *testing.T) {
	t.Parallel()
	p := baseProfile()
	p.WeightHistory = []model.WeightRecord{{Date: "2026-08-29", WeightKg: 69}}
	keys := []string{"2026-08-28", "2026-08-29", "2026-08-30"}
	meals := []model.MealEntry{
		foodEntry("2026-08-28", 9, 400),
		foodEntry("2026-08-28", 13, 800),
	}
	stats := map[string]model.DayStats{"2026-08-29": {WaterMl: 1500}}

	days := metrics.AggregatePeriod(p, keys, meals, stats)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].IntakeKcal != 1200 || days[0].AvgQualityScore == nil || *days[0].AvgQualityScore != 5 {
		t.Fatalf("unexpected first day: %+v", days[0])
	}
	if days[1].AvgQualityScore != nil {
		t.Fatal("expected nil score on empty day")
	}
	if days[0].WeightKg != 70 || days[1].WeightKg != 69 || days[2].WeightKg != 69 {
		t.Fatalf("weight not carried forward: %.1f %.1f %.1f",
			days[0].WeightKg, days[1].WeightKg, days[2].WeightKg)
	}
	if days[1].WaterMl != 1500 {
		t.Fatalf("unexpected water %.0f", days[1].WaterMl)
	}
}

func TestPeakHourUsesActiveDayDenominator(t *testing.T) {
	t.Parallel()
	meals := []model.MealEntry{
		foodEntry("2026-08-28", 12, 600),
		foodEntry("2026-08-29", 12, 800),
		foodEntry("2026-08-29", 8, 300),
	}
	peak, ok := metrics.PeakHour(meals)
	if !ok {
		t.Fatal("expected a peak hour")
	}
	if peak.Hour != 12 {
		t.Fatalf("unexpected hour %d", peak.Hour)
	}
	// 1400 kcal at noon over 2 active days, not 3 calendar days
	if peak.AvgKcal != 700 {
		t.Fatalf("unexpected average %.0f", peak.AvgKcal)
	}

	if _, ok := metrics.PeakHour(nil); ok {
		t.Fatal("expected no peak for empty input")
	}
}

func TestMetabolicLoadClassification(t *testing.T) {
	t.Parallel()
	targets := model.MicroTargets{SodiumMg: 2300, SugarG: 50}
	keys := []string{"2026-08-28", "2026-08-29"}

	e1 := foodEntry("2026-08-28", 12, 500)
	e1.Micros = &model.Micros{SodiumMg: 3000, SugarG: 20}
	e2 := foodEntry("2026-08-29", 12, 500)
	e2.Micros = &model.Micros{SodiumMg: 2000, SugarG: 20}

	load := metrics.ComputeMetabolicLoad(targets, keys, []model.MealEntry{e1, e2})
	if load.ActiveDays != 2 {
		t.Fatalf("unexpected active days %d", load.ActiveDays)
	}
	if load.Sodium.AvgDaily != 2500 || load.Sodium.Status != metrics.LoadOver {
		t.Fatalf("unexpected sodium load: %+v", load.Sodium)
	}
	if load.Sugar.AvgDaily != 20 || load.Sugar.Status != metrics.LoadGood {
		t.Fatalf("unexpected sugar load: %+v", load.Sugar)
	}

	empty := metrics.ComputeMetabolicLoad(targets, keys, nil)
	if empty.ActiveDays != 0 || empty.Sodium.AvgDaily != 0 || empty.Sodium.Status != metrics.LoadGood {
		t.Fatalf("unexpected empty load: %+v", empty)
	}
}
