package quantix

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/estimate"
	"github.com/devpik/quantix-nutri-ai/internal/game"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/provider/gemini"
	"github.com/devpik/quantix-nutri-ai/internal/review"
)

var (
	logPortion  float64
	logCategory string
	logCombo    string
	logDryRun   bool
	logCals     float64
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logFiber    float64
	logSodium   float64
	logSugar    float64
	logScore    int
)

var logCmd = &cobra.Command{
	Use:   "log <description>",
	Short: "Analyze a meal with AI and log it",
	Long:  "Sends the meal description for AI analysis, shows the estimated items and commits them. Use --dry-run to preview without logging.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := strings.Join(args, " ")
		return withLedger(func(l *ledger.Ledger) error {
			client, err := geminiClient()
			if err != nil {
				return err
			}
			if err := requireCredits(l); err != nil {
				return err
			}
			raw, err := client.Generate(cmd.Context(), gemini.MealPrompt(desc, logPortion, logCategory))
			if err != nil {
				return err
			}
			items, err := estimate.ParseMealResponse(raw)
			if err != nil {
				return err
			}
			if err := spendCredit(l); err != nil {
				return err
			}

			session := review.NewSession(items)
			printReview(cmd, session)
			if logDryRun {
				session.Cancel()
				return nil
			}
			res, err := session.Confirm(l, review.ConfirmOptions{
				Category:    logCategory,
				SaveAsCombo: logCombo != "",
				ComboName:   logCombo,
			})
			if err != nil {
				return err
			}
			reportResult(cmd, res)
			return nil
		})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <description>",
	Short: "Preview an AI meal analysis without logging",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := strings.Join(args, " ")
		return withLedger(func(l *ledger.Ledger) error {
			client, err := geminiClient()
			if err != nil {
				return err
			}
			if err := requireCredits(l); err != nil {
				return err
			}
			raw, err := client.Generate(cmd.Context(), gemini.MealPrompt(desc, logPortion, logCategory))
			if err != nil {
				return err
			}
			items, err := estimate.ParseMealResponse(raw)
			if err != nil {
				return err
			}
			if err := spendCredit(l); err != nil {
				return err
			}
			session := review.NewSession(items)
			printReview(cmd, session)
			session.Cancel()
			return nil
		})
	},
}

var symptomCmd = &cobra.Command{
	Use:   "symptom <entry-id> <symptom>...",
	Short: "Tag a logged meal with symptoms",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			for _, m := range l.Meals() {
				if m.ID != args[0] {
					continue
				}
				m.Symptoms = append(m.Symptoms, args[1:]...)
				if err := l.UpdateMeal(m); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s: %s\n", m.Desc, strings.Join(args[1:], ", "))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Entry not found")
			return nil
		})
	},
}

var logManualCmd = &cobra.Command{
	Use:   "manual <description>",
	Short: "Log a meal with explicit values, no AI call",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			e, err := l.AddMeal(model.MealEntry{
				Desc:     strings.Join(args, " "),
				Type:     model.EntryFood,
				Cals:     logCals,
				Macros:   model.Macros{Protein: logProtein, Carbs: logCarbs, Fat: logFat, Fiber: logFiber},
				Micros:   &model.Micros{SodiumMg: logSodium, SugarG: logSugar},
				Category: logCategory,
				Score:    logScore,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal) as %s\n", e.Desc, e.Cals, e.ID)
			events, err := review.Settle(l, game.ActionMealEntry, 1)
			if err != nil {
				return err
			}
			reportEvents(cmd, events)
			return nil
		})
	},
}

func printReview(cmd *cobra.Command, s *review.Session) {
	fmt.Fprintln(cmd.OutOrStdout(), "DESC\tWEIGHT\tKCAL\tP\tC\tF\tSCORE")
	for _, it := range s.Items() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0fg\t%.0f\t%.1f\t%.1f\t%.1f\t%d\n",
			it.Desc, it.WeightG, it.Cals, it.Macros.Protein, it.Macros.Carbs, it.Macros.Fat, it.Score)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total: %.0f kcal\n", s.TotalCalories())
}

func reportResult(cmd *cobra.Command, res review.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %d item(s)\n", len(res.Entries))
	if res.Combo != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved combo %q (%s)\n", res.Combo.Name, res.Combo.ID)
	}
	reportEvents(cmd, res.Events)
}

func init() {
	rootCmd.AddCommand(logCmd, analyzeCmd, symptomCmd)
	logCmd.AddCommand(logManualCmd)

	logCmd.Flags().Float64Var(&logPortion, "portion", 1, "Portion multiplier")
	logCmd.Flags().StringVar(&logCategory, "category", "", "Meal category")
	logCmd.Flags().StringVar(&logCombo, "save-combo", "", "Save the batch as a named combo")
	logCmd.Flags().BoolVar(&logDryRun, "dry-run", false, "Preview the analysis without logging")

	analyzeCmd.Flags().Float64Var(&logPortion, "portion", 1, "Portion multiplier")
	analyzeCmd.Flags().StringVar(&logCategory, "category", "", "Meal category")

	logManualCmd.Flags().Float64Var(&logCals, "cals", 0, "Calories")
	logManualCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein grams")
	logManualCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carb grams")
	logManualCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat grams")
	logManualCmd.Flags().Float64Var(&logFiber, "fiber", 0, "Fiber grams")
	logManualCmd.Flags().Float64Var(&logSodium, "sodium", 0, "Sodium mg")
	logManualCmd.Flags().Float64Var(&logSugar, "sugar", 0, "Sugar grams")
	logManualCmd.Flags().IntVar(&logScore, "score", 0, "Quality score 1-10")
	logManualCmd.Flags().StringVar(&logCategory, "category", "", "Meal category")
	_ = logManualCmd.MarkFlagRequired("cals")
}
