package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/metrics"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

var (
	profileName     string
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileGender   string
	profileTarget   float64
	profileFiber    float64
	profileStrategy string
	profileProtein  float64
	profileCarbs    float64
	profileFat      float64
	measureWaist    float64
	measureHip      float64
	measureFat      float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			p := l.Profile()
			targets := metrics.MacroTargets(p)
			bmi := metrics.BMI(p.WeightKg, p.HeightCm)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Biometrics: %.1fkg, %.0fcm, %d years, %s\n", p.WeightKg, p.HeightCm, p.Age, p.Gender)
			fmt.Fprintf(out, "BMI: %.1f (%s)  BMR: %.0f kcal\n", bmi.Value, bmi.Classification, metrics.BMR(p))
			fmt.Fprintf(out, "Target: %.0f kcal (%s)  P %.0fg / C %.0fg / F %.0fg / Fib %.0fg\n",
				p.TargetKcal, p.Strategy, targets.Protein, targets.Carbs, targets.Fat, targets.Fiber)
			fmt.Fprintf(out, "Level %d  XP %d/%d  Streak %d day(s)  Credits %d\n",
				p.Level, p.XP, 500*p.Level, p.StreakDays, p.Credits)
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			p := l.Profile()
			if cmd.Flags().Changed("name") {
				p.Name = profileName
			}
			if cmd.Flags().Changed("weight") {
				p.WeightKg = profileWeight
			}
			if cmd.Flags().Changed("height") {
				p.HeightCm = profileHeight
			}
			if cmd.Flags().Changed("age") {
				p.Age = profileAge
			}
			if cmd.Flags().Changed("gender") {
				if profileGender != "male" && profileGender != "female" {
					return fmt.Errorf("gender must be male or female")
				}
				p.Gender = profileGender
			}
			if cmd.Flags().Changed("target") {
				if profileTarget <= 0 {
					return fmt.Errorf("target must be > 0")
				}
				p.TargetKcal = profileTarget
			}
			if cmd.Flags().Changed("fiber-target") {
				p.FiberTargetG = profileFiber
			}
			if cmd.Flags().Changed("strategy") {
				switch profileStrategy {
				case model.StrategyBalanced, model.StrategyLowCarb, model.StrategyKetogenic, model.StrategyCustom:
				default:
					return fmt.Errorf("invalid strategy %q", profileStrategy)
				}
				p.Strategy = profileStrategy
			}
			if cmd.Flags().Changed("protein-pct") || cmd.Flags().Changed("carbs-pct") || cmd.Flags().Changed("fat-pct") {
				custom := model.Macros{Protein: profileProtein, Carbs: profileCarbs, Fat: profileFat}
				if custom.Protein+custom.Carbs+custom.Fat != 100 {
					return fmt.Errorf("custom macro percentages must sum to 100")
				}
				p.CustomMacros = custom
			}
			p.OnboardingDone = true
			if err := l.SaveProfile(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileWeighCmd = &cobra.Command{
	Use:   "weigh <kg>",
	Short: "Record today's weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kg float64
		if _, err := fmt.Sscanf(args[0], "%f", &kg); err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.RecordWeight(kg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1fkg for today\n", kg)
			return nil
		})
	},
}

var profileMeasureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Record today's body measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.RecordMeasurements(model.MeasurementRecord{
				WaistCm: measureWaist,
				HipCm:   measureHip,
				FatPct:  measureFat,
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Measurements recorded")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileWeighCmd, profileMeasureCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileTarget, "target", 0, "Daily calorie target")
	profileSetCmd.Flags().Float64Var(&profileFiber, "fiber-target", 0, "Daily fiber target grams")
	profileSetCmd.Flags().StringVar(&profileStrategy, "strategy", "", "balanced, lowcarb, ketogenic or custom")
	profileSetCmd.Flags().Float64Var(&profileProtein, "protein-pct", 0, "Custom protein percent")
	profileSetCmd.Flags().Float64Var(&profileCarbs, "carbs-pct", 0, "Custom carbs percent")
	profileSetCmd.Flags().Float64Var(&profileFat, "fat-pct", 0, "Custom fat percent")

	profileMeasureCmd.Flags().Float64Var(&measureWaist, "waist", 0, "Waist cm")
	profileMeasureCmd.Flags().Float64Var(&measureHip, "hip", 0, "Hip cm")
	profileMeasureCmd.Flags().Float64Var(&measureFat, "fat-pct", 0, "Body fat percent")
}
