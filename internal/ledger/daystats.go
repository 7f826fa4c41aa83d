package ledger

import (
	"fmt"
	"time"

	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/store"
)

// DayStats returns the full per-day stats map, auto-vivifying today's entry
// with zero defaults. The vivified entry is persisted only on the next
// SetDayStats, matching the read-then-set contract.
func (l *Ledger) DayStats() map[string]model.DayStats {
	stats := store.Get(l.store, keyDayStats, map[string]model.DayStats{})
	today := l.TodayKey()
	if _, ok := stats[today]; !ok {
		stats[today] = model.NewDayStats()
	}
	return stats
}

func (l *Ledger) SetDayStats(stats map[string]model.DayStats) error {
	return store.Set(l.store, keyDayStats, stats)
}

// TodayStats is a convenience read of today's entry.
func (l *Ledger) TodayStats() model.DayStats {
	return l.DayStats()[l.TodayKey()]
}

// AddWater adjusts today's water by delta ml, clamped at zero. Negative
// deltas remove water.
func (l *Ledger) AddWater(deltaMl float64) (float64, error) {
	stats := l.DayStats()
	today := l.TodayKey()
	day := stats[today]
	day.WaterMl += deltaMl
	if day.WaterMl < 0 {
		day.WaterMl = 0
	}
	stats[today] = day
	if err := l.SetDayStats(stats); err != nil {
		return 0, err
	}
	return day.WaterMl, nil
}

// StartFast begins a fast now. Starting while one is already running is a
// no-op.
func (l *Ledger) StartFast() error {
	stats := l.DayStats()
	today := l.TodayKey()
	day := stats[today]
	if day.FastingStart != nil {
		return nil
	}
	start := l.now()
	day.FastingStart = &start
	stats[today] = day
	return l.SetDayStats(stats)
}

// EndFast closes the running fast, folding its elapsed minutes into today's
// accumulated total. Ending with no active fast is a no-op.
func (l *Ledger) EndFast() (float64, error) {
	stats := l.DayStats()
	today := l.TodayKey()
	day := stats[today]
	if day.FastingStart == nil {
		return 0, nil
	}
	elapsed := l.now().Sub(*day.FastingStart).Minutes()
	if elapsed < 0 {
		elapsed = 0
	}
	day.FastingMinutes += elapsed
	day.FastingStart = nil
	stats[today] = day
	if err := l.SetDayStats(stats); err != nil {
		return 0, err
	}
	return elapsed, nil
}

// LogCompletedFast records a manually entered fast window against today,
// clearing any active fast since the user has explicitly closed it.
func (l *Ledger) LogCompletedFast(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("fast end must be after start")
	}
	stats := l.DayStats()
	today := l.TodayKey()
	day := stats[today]
	day.FastingMinutes += end.Sub(start).Minutes()
	day.FastingStart = nil
	stats[today] = day
	return l.SetDayStats(stats)
}
