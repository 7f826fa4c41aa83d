package estimate_test

import (
	"errors"
	"testing"

	"github.com/devpik/quantix-nutri-ai/internal/estimate"
)

func TestParseMealResponseMultiItem(t *testing.T) {
	t.Parallel()
	raw := "```json\n" + `{
  "items": [
    {"desc": "arroz", "weight": 150, "cals": 190, "macros": {"p": 4, "c": 42, "f": 0.5, "fib": 1.5}, "micros": {"sodium": 2, "sugar": 0}, "score": 6},
    {"desc": "frango grelhado", "weight": 120, "cals": 200, "macros": {"p": 36, "c": 0, "f": 5, "fib": 0}}
  ],
  "total_cals": 390
}` + "\n```"

	items, err := estimate.ParseMealResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Desc != "arroz" || items[0].Cals != 190 || items[0].Score != 6 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	// missing micros and score fall back to defaults
	if items[1].Score != 5 || items[1].Micros.SodiumMg != 0 {
		t.Fatalf("defaults not applied: %+v", items[1])
	}
}

func TestParseMealResponseSingleItem(t *testing.T) {
	t.Parallel()
	raw := `Here is the analysis: {"desc": "banana", "weight": 100, "cals": 90, "macros": {"p": 1, "c": 23, "f": 0.3, "fib": 2.6}}`

	items, err := estimate.ParseMealResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 1 || items[0].Desc != "banana" || items[0].Cals != 90 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestParseMealResponseUnparseable(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "no json here", "```json\nnot json\n```"} {
		if _, err := estimate.ParseMealResponse(raw); !errors.Is(err, estimate.ErrUnparseable) {
			t.Fatalf("expected ErrUnparseable for %q, got %v", raw, err)
		}
	}
}

func TestParseExerciseResponse(t *testing.T) {
	t.Parallel()
	desc, cals, err := estimate.ParseExerciseResponse("```json\n{\"desc\": \"Corrida leve\", \"cals\": 320}\n```")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if desc != "Corrida leve" || cals != 320 {
		t.Fatalf("unexpected result: %q %.0f", desc, cals)
	}

	if _, _, err := estimate.ParseExerciseResponse(`{"desc": "x", "cals": 0}`); !errors.Is(err, estimate.ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable for zero burn, got %v", err)
	}
}

func TestParsePlannerResponse(t *testing.T) {
	t.Parallel()
	raw := `{"days": [{"breakfast": {"desc": "ovos mexidos", "estimated_cals": 300}, "lunch": {"desc": "frango com arroz", "estimated_cals": 600}, "snack": {"desc": "iogurte", "estimated_cals": 150}, "dinner": {"desc": "sopa", "estimated_cals": 400}}]}`

	week, err := estimate.ParsePlannerResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(week.Days) != 1 || week.Days[0].Lunch.EstimatedCals != 600 {
		t.Fatalf("unexpected plan: %+v", week)
	}

	if _, err := estimate.ParsePlannerResponse(`{"days": []}`); !errors.Is(err, estimate.ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable for empty plan, got %v", err)
	}
}

func TestParseShoppingResponseClearsChecked(t *testing.T) {
	t.Parallel()
	raw := `{"categories": [{"name": "Hortifruti", "items": [{"name": "banana", "quantity": "1kg", "checked": true}]}]}`

	list, err := estimate.ParseShoppingResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if list.Categories[0].Items[0].Checked {
		t.Fatal("checked flag not reset")
	}
}

func TestCleanResponseExtractsOutermostObject(t *testing.T) {
	t.Parallel()
	got := estimate.CleanResponse("prefix {\"a\": {\"b\": 1}} suffix")
	if got != `{"a": {"b": 1}}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
	if estimate.CleanResponse("no braces at all") != "" {
		t.Fatal("expected empty result without braces")
	}
}
