package estimate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/review"
)

// ErrUnparseable reports a model response that contained no usable JSON
// payload in either accepted shape.
var ErrUnparseable = errors.New("unparseable estimate payload")

type itemPayload struct {
	Desc    string        `json:"desc"`
	WeightG float64       `json:"weight"`
	Cals    float64       `json:"cals"`
	Macros  model.Macros  `json:"macros"`
	Micros  *model.Micros `json:"micros"`
	Score   *int          `json:"score"`
}

type multiPayload struct {
	Items     []itemPayload `json:"items"`
	TotalCals float64       `json:"total_cals"`
}

// ParseMealResponse decodes a meal-analysis response into review items.
// Two shapes are accepted: a multi-item object with an items array, or a
// bare single-item object. Markdown code fencing around the JSON is
// stripped first. Missing micros and scores get safe defaults rather than
// failing the whole response.
func ParseMealResponse(raw string) ([]review.Item, error) {
	cleaned := CleanResponse(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrUnparseable)
	}

	var multi multiPayload
	if err := json.Unmarshal([]byte(cleaned), &multi); err == nil && len(multi.Items) > 0 {
		items := make([]review.Item, 0, len(multi.Items))
		for _, it := range multi.Items {
			items = append(items, toItem(it))
		}
		return items, nil
	}

	var single itemPayload
	if err := json.Unmarshal([]byte(cleaned), &single); err == nil && single.Desc != "" {
		return []review.Item{toItem(single)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnparseable, snippet(cleaned))
}

func toItem(p itemPayload) review.Item {
	it := review.Item{
		Desc:    p.Desc,
		WeightG: p.WeightG,
		Cals:    p.Cals,
		Macros:  p.Macros,
		Score:   5,
	}
	if p.Micros != nil {
		it.Micros = *p.Micros
	}
	if p.Score != nil && *p.Score > 0 {
		it.Score = *p.Score
	}
	return it
}

type exercisePayload struct {
	Desc string  `json:"desc"`
	Cals float64 `json:"cals"`
}

// ParseExerciseResponse decodes a burn estimate with a normalized activity
// description.
func ParseExerciseResponse(raw string) (desc string, cals float64, err error) {
	cleaned := CleanResponse(raw)
	var p exercisePayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil || p.Cals <= 0 {
		return "", 0, fmt.Errorf("%w: %s", ErrUnparseable, snippet(cleaned))
	}
	return p.Desc, p.Cals, nil
}

// ParsePlannerResponse decodes a generated weekly plan, stored opaquely.
func ParsePlannerResponse(raw string) (model.PlannerWeek, error) {
	cleaned := CleanResponse(raw)
	var week model.PlannerWeek
	if err := json.Unmarshal([]byte(cleaned), &week); err != nil || len(week.Days) == 0 {
		return model.PlannerWeek{}, fmt.Errorf("%w: %s", ErrUnparseable, snippet(cleaned))
	}
	return week, nil
}

// ParseShoppingResponse decodes a generated shopping list. Checked flags
// always start false regardless of the payload.
func ParseShoppingResponse(raw string) (model.ShoppingList, error) {
	cleaned := CleanResponse(raw)
	var list model.ShoppingList
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil || len(list.Categories) == 0 {
		return model.ShoppingList{}, fmt.Errorf("%w: %s", ErrUnparseable, snippet(cleaned))
	}
	for ci := range list.Categories {
		for ii := range list.Categories[ci].Items {
			list.Categories[ci].Items[ii].Checked = false
		}
	}
	return list, nil
}

// CleanResponse strips markdown code fences and trims the text down to the
// outermost JSON object, tolerating prose around the payload.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

func snippet(s string) string {
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
