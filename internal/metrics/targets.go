package metrics

import (
	"math"

	"github.com/devpik/quantix-nutri-ai/internal/model"
)

// KcalPerKg is the energy content assumed for one kilogram of body fat,
// used by the weight projection.
const KcalPerKg = 7700

// MacroTargets converts the profile's calorie target into gram targets per
// macro using the strategy ratio table. Protein and carbs count 4 kcal/g,
// fat 9 kcal/g; the fiber target passes through unconverted.
func MacroTargets(p model.Profile) model.Macros {
	ratios := model.Macros{Protein: 0.30, Carbs: 0.40, Fat: 0.30}
	switch p.Strategy {
	case model.StrategyLowCarb:
		ratios = model.Macros{Protein: 0.45, Carbs: 0.15, Fat: 0.40}
	case model.StrategyKetogenic:
		ratios = model.Macros{Protein: 0.25, Carbs: 0.05, Fat: 0.70}
	case model.StrategyCustom:
		ratios = model.Macros{
			Protein: p.CustomMacros.Protein / 100,
			Carbs:   p.CustomMacros.Carbs / 100,
			Fat:     p.CustomMacros.Fat / 100,
		}
	}
	fiber := p.FiberTargetG
	if fiber <= 0 {
		fiber = 25
	}
	return model.Macros{
		Protein: math.Round(p.TargetKcal * ratios.Protein / 4),
		Carbs:   math.Round(p.TargetKcal * ratios.Carbs / 4),
		Fat:     math.Round(p.TargetKcal * ratios.Fat / 9),
		Fiber:   fiber,
	}
}

// BMI classification labels.
const (
	BMIUnderweight = "Abaixo do Peso"
	BMINormal      = "Peso Normal"
	BMIOverweight  = "Sobrepeso"
	BMIObese       = "Obesidade"
)

type BMIResult struct {
	Value          float64
	Classification string
}

// BMI computes weight/(height m)^2 with the literal threshold comparisons
// used by the classification table.
func BMI(weightKg, heightCm float64) BMIResult {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIResult{}
	}
	h := heightCm / 100
	v := weightKg / (h * h)
	out := BMIResult{Value: v}
	switch {
	case v < 18.5:
		out.Classification = BMIUnderweight
	case v < 24.9:
		out.Classification = BMINormal
	case v < 29.9:
		out.Classification = BMIOverweight
	default:
		out.Classification = BMIObese
	}
	return out
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func BMR(p model.Profile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		return base + 5
	}
	return base - 161
}

type WeightProjection struct {
	TDEE           float64
	DailyDeficit   float64
	TotalDeficit   float64
	WeightChangeKg float64
	ProjectedKg    float64
}

// ProjectWeightChange estimates weight change over days given the average
// daily exercise burn and intake observed on logged days. A positive
// deficit projects weight loss.
func ProjectWeightChange(p model.Profile, avgDailyBurn, avgDailyIntake float64, days int) WeightProjection {
	tdee := BMR(p) + avgDailyBurn
	deficit := tdee - avgDailyIntake
	total := deficit * float64(days)
	change := total / KcalPerKg
	return WeightProjection{
		TDEE:           tdee,
		DailyDeficit:   deficit,
		TotalDeficit:   total,
		WeightChangeKg: change,
		ProjectedKg:    p.WeightKg - change,
	}
}
