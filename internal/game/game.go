package game

import (
	"time"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

// XP actions and their point values.
const (
	ActionMealEntry   = "meal_entry"
	ActionComboEntry  = "combo_entry"
	ActionDailyStreak = "daily_streak"
)

const (
	xpMealEntry   = 50
	xpComboEntry  = 100
	xpDailyStreak = 100
	xpPlateBonus  = 30
	xpBadgeUnlock = 50

	creditsPerLevel = 5
	plateBonusItems = 3
)

// Event is a gamification side effect surfaced to the presentation layer.
type Event struct {
	Kind  string
	Level int
	Badge Badge
	XP    int
}

const (
	EventLevelUp     = "level_up"
	EventBadgeUnlock = "badge_unlock"
	EventStreak      = "streak"
)

// NextLevelXP is the XP threshold to leave the given level.
func NextLevelXP(level int) int {
	return level * 500
}

// AddXP credits XP onto the profile and resolves level-ups in place. XP in
// excess of a threshold carries into the next level, so one large grant can
// advance several levels. Every level-up grants credits and appends a
// LevelUp event.
func AddXP(p *model.Profile, amount int) []Event {
	if amount <= 0 {
		return nil
	}
	if p.Level < 1 {
		p.Level = 1
	}
	p.XP += amount
	var events []Event
	for p.XP >= NextLevelXP(p.Level) {
		p.XP -= NextLevelXP(p.Level)
		p.Level++
		p.Credits += creditsPerLevel
		events = append(events, Event{Kind: EventLevelUp, Level: p.Level})
	}
	return events
}

// TransactionXP awards the XP for one committed batch: a flat rate per
// action plus the colorful-plate bonus for multi-item meals.
func TransactionXP(p *model.Profile, action string, itemCount int) []Event {
	amount := 0
	switch action {
	case ActionMealEntry:
		amount = xpMealEntry
	case ActionComboEntry:
		amount = xpComboEntry
	case ActionDailyStreak:
		amount = xpDailyStreak
	}
	if amount == 0 {
		return nil
	}
	if itemCount >= plateBonusItems && action != ActionDailyStreak {
		amount += xpPlateBonus
	}
	return AddXP(p, amount)
}

// CheckStreak advances the daily streak off the last-activity timestamp.
// A second activity on the same calendar day is a no-op; an activity the
// day after the last one extends the streak and pays the daily bonus; any
// longer gap resets the streak to 1.
func CheckStreak(p *model.Profile, now time.Time) []Event {
	today := ledger.DateKey(now)
	if p.LastActivity != nil && ledger.DateKey(*p.LastActivity) == today {
		return nil
	}
	var events []Event
	yesterday := ledger.DateKey(now.AddDate(0, 0, -1))
	if p.LastActivity != nil && ledger.DateKey(*p.LastActivity) == yesterday {
		p.StreakDays++
		events = append(events, Event{Kind: EventStreak, XP: xpDailyStreak})
		events = append(events, TransactionXP(p, ActionDailyStreak, 0)...)
	} else {
		p.StreakDays = 1
	}
	t := now
	p.LastActivity = &t
	return events
}
