package gemini

import (
	"fmt"
	"strings"

	"github.com/devpik/quantix-nutri-ai/internal/model"
)

// MealPrompt builds the meal-analysis prompt. The portion multiplier
// scales the whole description; category is passed for context only.
func MealPrompt(desc string, portion float64, category string) string {
	if portion <= 0 {
		portion = 1
	}
	var b strings.Builder
	b.WriteString("You are a nutrition analyst. Analyze the meal described below and respond with JSON only, no markdown.\n")
	fmt.Fprintf(&b, "Meal: %s\n", desc)
	fmt.Fprintf(&b, "Portion multiplier: %.2fx\n", portion)
	if category != "" {
		fmt.Fprintf(&b, "Meal category: %s\n", category)
	}
	b.WriteString(`If the description contains multiple distinct foods, respond with:
{"items":[{"desc":"...","weight":grams,"cals":n,"macros":{"p":g,"c":g,"f":g,"fib":g},"micros":{"sodium":mg,"sugar":g,"potassium":mg},"score":1-10}],"total_cals":n}
For a single food, respond with one bare item object of the same shape.
Score rates nutritional quality, 1 worst to 10 best. Use realistic estimates for unspecified amounts.`)
	return b.String()
}

// ExercisePrompt builds the burn-estimation prompt from the user's
// biometrics and the free-text activity description.
func ExercisePrompt(p model.Profile, desc string) string {
	var b strings.Builder
	b.WriteString("Estimate calories burned for the activity below. Respond with JSON only: {\"desc\":\"normalized activity name\",\"cals\":n}.\n")
	fmt.Fprintf(&b, "Person: %.0fkg, %.0fcm, %d years, %s.\n", p.WeightKg, p.HeightCm, p.Age, p.Gender)
	fmt.Fprintf(&b, "Activity: %s\n", desc)
	return b.String()
}

// SuggestionPrompt asks for a meal suggestion that fits what remains of
// the day's budget.
func SuggestionPrompt(remainingKcal float64, remaining model.Macros, category string) string {
	var b strings.Builder
	b.WriteString("Suggest one simple meal that fits the remaining daily budget below. Answer in Portuguese, two short sentences, no JSON.\n")
	fmt.Fprintf(&b, "Remaining: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat.\n",
		remainingKcal, remaining.Protein, remaining.Carbs, remaining.Fat)
	if category != "" {
		fmt.Fprintf(&b, "Meal slot: %s\n", category)
	}
	return b.String()
}

// WeeklyPlanPrompt builds the 7-day planner generation prompt.
func WeeklyPlanPrompt(p model.Profile, targets model.Macros, preferences string) string {
	var b strings.Builder
	b.WriteString("Create a 7 day meal plan. Respond with JSON only, no markdown:\n")
	b.WriteString(`{"days":[{"breakfast":{"desc":"...","estimated_cals":n},"lunch":{...},"snack":{...},"dinner":{...}}]}` + "\n")
	fmt.Fprintf(&b, "Daily target: %.0f kcal (%.0fg protein, %.0fg carbs, %.0fg fat, strategy %s).\n",
		p.TargetKcal, targets.Protein, targets.Carbs, targets.Fat, p.Strategy)
	if preferences != "" {
		fmt.Fprintf(&b, "Preferences: %s\n", preferences)
	}
	b.WriteString("Meal descriptions in Portuguese. Exactly 7 entries in days.")
	return b.String()
}

// ShoppingPrompt derives a grocery list from a generated weekly plan.
func ShoppingPrompt(week model.PlannerWeek) string {
	var b strings.Builder
	b.WriteString("Build a consolidated grocery list for the weekly meal plan below. Respond with JSON only, no markdown:\n")
	b.WriteString(`{"categories":[{"name":"...","items":[{"name":"...","quantity":"..."}]}]}` + "\n")
	b.WriteString("Group by supermarket section, sum quantities across the week, names in Portuguese.\nPlan:\n")
	for i, d := range week.Days {
		fmt.Fprintf(&b, "Day %d: %s; %s; %s; %s\n", i+1, d.Breakfast.Desc, d.Lunch.Desc, d.Snack.Desc, d.Dinner.Desc)
	}
	return b.String()
}
