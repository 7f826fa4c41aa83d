package game

import "github.com/devpik/quantix-nutri-ai/internal/model"

// Badge ids as stored in the profile's unlocked set.
const (
	BadgeFirstStep   = "first_step"
	BadgeWaterMaster = "water_master"
	BadgeStreak3     = "streak_3"
	BadgeStreak7     = "streak_7"
	BadgeExpert      = "expert"
)

type Badge struct {
	ID   string
	Name string
	Desc string
}

// Catalog lists every badge in unlock-check order.
var Catalog = []Badge{
	{ID: BadgeFirstStep, Name: "Primeiro Passo", Desc: "Registre sua primeira refeição"},
	{ID: BadgeWaterMaster, Name: "Mestre da Hidratação", Desc: "Beba 2500ml de água em um dia"},
	{ID: BadgeStreak3, Name: "Consistência", Desc: "3 dias seguidos de registros"},
	{ID: BadgeStreak7, Name: "Semana Perfeita", Desc: "7 dias seguidos de registros"},
	{ID: BadgeExpert, Name: "Expert", Desc: "Registre 50 refeições"},
}

// BadgeByID looks a badge up in the catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// CheckBadges unlocks every badge whose condition holds and is not already
// in the profile's set. Each unlock pays bonus XP, so a badge can itself
// trigger a level-up. Already-unlocked badges are never re-awarded.
func CheckBadges(p *model.Profile, mealCount int, todayWaterMl float64, streakDays int) []Event {
	var events []Event
	unlock := func(id string) {
		if p.HasAchievement(id) {
			return
		}
		p.Achievements = append(p.Achievements, id)
		badge, _ := BadgeByID(id)
		events = append(events, Event{Kind: EventBadgeUnlock, Badge: badge, XP: xpBadgeUnlock})
		events = append(events, AddXP(p, xpBadgeUnlock)...)
	}
	if mealCount >= 1 {
		unlock(BadgeFirstStep)
	}
	if todayWaterMl >= 2500 {
		unlock(BadgeWaterMaster)
	}
	if streakDays >= 3 {
		unlock(BadgeStreak3)
	}
	if streakDays >= 7 {
		unlock(BadgeStreak7)
	}
	if mealCount >= 50 {
		unlock(BadgeExpert)
	}
	return events
}
