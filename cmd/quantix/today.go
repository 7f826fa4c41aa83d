package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/metrics"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's totals against your targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			key, err := parseDateOrToday(l, todayDate)
			if err != nil {
				return err
			}
			p := l.Profile()
			meals := l.MealsOn(key)
			totals := metrics.ComputeDailyTotals(p, meals)
			targets := metrics.MacroTargets(p)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", key)
			fmt.Fprintln(out, "TIME\tCATEGORY\tDESC\tKCAL")
			for _, m := range meals {
				sign := ""
				if m.Type == model.EntryExercise {
					sign = "-"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s%.0f\n",
					m.Timestamp.Local().Format("15:04"), m.Category, m.Desc, sign, m.Cals)
			}
			fmt.Fprintf(out, "Intake: %.0f kcal  Burned: %.0f kcal  Net: %.0f / %.0f kcal\n",
				totals.IntakeKcal, totals.BurnedKcal, totals.NetKcal, p.TargetKcal)
			if totals.Over {
				fmt.Fprintf(out, "Over target by %.0f kcal\n", -totals.RemainingKcal)
			} else {
				fmt.Fprintf(out, "Remaining: %.0f kcal\n", totals.RemainingKcal)
			}
			fmt.Fprintf(out, "Protein: %.0f/%.0fg  Carbs: %.0f/%.0fg  Fat: %.0f/%.0fg  Fiber: %.0f/%.0fg\n",
				totals.Macros.Protein, targets.Protein,
				totals.Macros.Carbs, targets.Carbs,
				totals.Macros.Fat, targets.Fat,
				totals.Macros.Fiber, targets.Fiber)

			if key == l.TodayKey() {
				stats := l.TodayStats()
				fmt.Fprintf(out, "Water: %.0fml\n", stats.WaterMl)
				if stats.FastingStart != nil {
					fmt.Fprintf(out, "Fasting since %s\n", stats.FastingStart.Local().Format("15:04"))
				} else if stats.FastingMinutes > 0 {
					fmt.Fprintf(out, "Fasted today: %.0f min\n", stats.FastingMinutes)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
}
