package sched_test

import (
	"testing"
	"time"

	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/sched"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.Local)
}

func TestWaterTickFiresInsideWindow(t *testing.T) {
	t.Parallel()
	stats := model.DayStats{WaterMl: 500}

	if _, ok := sched.WaterTick(at(10, 0), stats); !ok {
		t.Fatal("expected nudge at 10:00 with 500ml")
	}
	if _, ok := sched.WaterTick(at(10, 30), stats); ok {
		t.Fatal("nudge outside minute 0")
	}
	if _, ok := sched.WaterTick(at(7, 0), stats); ok {
		t.Fatal("nudge before the waking window")
	}
	if _, ok := sched.WaterTick(at(23, 0), stats); ok {
		t.Fatal("nudge after the waking window")
	}
	if _, ok := sched.WaterTick(at(10, 0), model.DayStats{WaterMl: 2000}); ok {
		t.Fatal("nudge with goal already met")
	}
}

func TestMealTickFiresAtCueTimes(t *testing.T) {
	t.Parallel()
	oneMeal := []model.MealEntry{{Type: model.EntryFood}}

	if _, ok := sched.MealTick(at(12, 15), oneMeal); !ok {
		t.Fatal("expected nudge at 12:15 with one meal")
	}
	if _, ok := sched.MealTick(at(20, 15), nil); !ok {
		t.Fatal("expected nudge at 20:15 with no meals")
	}
	if _, ok := sched.MealTick(at(12, 16), nil); ok {
		t.Fatal("nudge off the cue minute")
	}

	twoMeals := []model.MealEntry{{Type: model.EntryFood}, {Type: model.EntryFood}}
	if _, ok := sched.MealTick(at(12, 15), twoMeals); ok {
		t.Fatal("nudge with enough meals logged")
	}

	// exercise entries do not count as meals
	mixed := []model.MealEntry{{Type: model.EntryFood}, {Type: model.EntryExercise}}
	if _, ok := sched.MealTick(at(12, 15), mixed); !ok {
		t.Fatal("exercise entry counted as a meal")
	}
}

func TestRolloverTickDetectsDateChange(t *testing.T) {
	t.Parallel()
	before := time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)
	after := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	ev, ok := sched.RolloverTick(before, after)
	if !ok {
		t.Fatal("expected rollover event")
	}
	if ev.Kind != sched.EventRollover {
		t.Fatalf("unexpected kind %q", ev.Kind)
	}
	if _, ok := sched.RolloverTick(before, before.Add(time.Second)); !ok {
		// 23:59:59 -> 00:00:00 crosses midnight
		t.Fatal("expected rollover one second later")
	}
	if _, ok := sched.RolloverTick(after, after.Add(time.Second)); ok {
		t.Fatal("rollover without a date change")
	}
}
