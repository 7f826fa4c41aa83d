package sched

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

// Reminder thresholds and schedule windows.
const (
	waterGoalMl   = 2000
	waterHourFrom = 8
	waterHourTo   = 22
	minMealsByCue = 2
)

// Event kinds emitted by the ticks.
const (
	EventWater    = "water"
	EventMeal     = "meal"
	EventRollover = "rollover"
)

type Event struct {
	Kind    string
	Message string
}

// WaterTick fires a hydration nudge at the top of the hour inside the
// waking window when the day's water intake is below goal.
func WaterTick(now time.Time, stats model.DayStats) (Event, bool) {
	h := now.Local().Hour()
	if now.Local().Minute() != 0 || h < waterHourFrom || h > waterHourTo {
		return Event{}, false
	}
	if stats.WaterMl >= waterGoalMl {
		return Event{}, false
	}
	return Event{
		Kind:    EventWater,
		Message: fmt.Sprintf("Hora de beber água! %.0fml de %dml hoje.", stats.WaterMl, waterGoalMl),
	}, true
}

// MealTick fires shortly after lunch and dinner time when fewer than two
// meals were logged for the day.
func MealTick(now time.Time, meals []model.MealEntry) (Event, bool) {
	local := now.Local()
	h, m := local.Hour(), local.Minute()
	if !((h == 12 && m == 15) || (h == 20 && m == 15)) {
		return Event{}, false
	}
	food := 0
	for _, e := range meals {
		if e.Type == model.EntryFood {
			food++
		}
	}
	if food >= minMealsByCue {
		return Event{}, false
	}
	return Event{
		Kind:    EventMeal,
		Message: "Você ainda não registrou suas refeições de hoje.",
	}, true
}

// RolloverTick reports a local-midnight date change between two instants.
func RolloverTick(prev, now time.Time) (Event, bool) {
	prevKey, nowKey := ledger.DateKey(prev), ledger.DateKey(now)
	if prevKey == nowKey {
		return Event{}, false
	}
	return Event{
		Kind:    EventRollover,
		Message: fmt.Sprintf("Novo dia: %s", nowKey),
	}, true
}

// Scheduler drives the reminder and rollover ticks off a seconds-enabled
// cron runner. Events go to the handler; tick evaluation stays in the
// pure functions above.
type Scheduler struct {
	ledger  *ledger.Ledger
	log     *logrus.Logger
	cron    *cron.Cron
	handler func(Event)

	// mu guards lastDay; cron runs overlapping jobs on separate goroutines
	mu      sync.Mutex
	lastDay time.Time
}

func New(l *ledger.Ledger, log *logrus.Logger, handler func(Event)) *Scheduler {
	return &Scheduler{
		ledger:  l,
		log:     log,
		cron:    cron.New(cron.WithSeconds()),
		handler: handler,
	}
}

// Start registers the jobs and launches the runner. The reminder job runs
// at second 0 of every minute; the rollover probe every second.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.lastDay = s.ledger.Now()
	s.mu.Unlock()
	if _, err := s.cron.AddFunc("0 * * * * *", s.reminderJob); err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	if _, err := s.cron.AddFunc("* * * * * *", s.rolloverJob); err != nil {
		return fmt.Errorf("schedule rollover job: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) reminderJob() {
	now := s.ledger.Now()
	if ev, ok := WaterTick(now, s.ledger.TodayStats()); ok {
		s.emit(ev)
	}
	if ev, ok := MealTick(now, s.ledger.MealsOn(s.ledger.TodayKey())); ok {
		s.emit(ev)
	}
}

func (s *Scheduler) rolloverJob() {
	if ev, ok := s.advanceDay(s.ledger.Now()); ok {
		s.emit(ev)
	}
}

// advanceDay moves the rollover cursor to now and reports whether the
// local calendar day changed. At most one tick observes each change.
func (s *Scheduler) advanceDay(now time.Time) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := RolloverTick(s.lastDay, now)
	s.lastDay = now
	return ev, ok
}

func (s *Scheduler) emit(ev Event) {
	if s.handler != nil {
		s.handler(ev)
		return
	}
	s.log.WithField("kind", ev.Kind).Info(ev.Message)
}
