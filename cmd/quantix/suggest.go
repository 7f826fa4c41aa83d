package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/metrics"
	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/provider/gemini"
)

var suggestCategory string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask AI what to eat with today's remaining budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			client, err := geminiClient()
			if err != nil {
				return err
			}
			if err := requireCredits(l); err != nil {
				return err
			}
			p := l.Profile()
			totals := metrics.ComputeDailyTotals(p, l.MealsOn(l.TodayKey()))
			targets := metrics.MacroTargets(p)
			remaining := model.Macros{
				Protein: targets.Protein - totals.Macros.Protein,
				Carbs:   targets.Carbs - totals.Macros.Carbs,
				Fat:     targets.Fat - totals.Macros.Fat,
			}
			text, err := client.Generate(cmd.Context(), gemini.SuggestionPrompt(totals.RemainingKcal, remaining, suggestCategory))
			if err != nil {
				return err
			}
			if err := spendCredit(l); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Meal slot to suggest for")
}
