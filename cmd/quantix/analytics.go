package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/metrics"
)

var (
	analyticsFrom string
	analyticsTo   string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Aggregate stats over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			to := analyticsTo
			if to == "" {
				to = l.TodayKey()
			}
			from := analyticsFrom
			if from == "" {
				from = ledger.DateKey(l.Now().AddDate(0, 0, -6))
			}
			keys, err := dateKeysBetween(from, to)
			if err != nil {
				return err
			}

			p := l.Profile()
			meals := l.MealsBetween(from, to)
			days := metrics.AggregatePeriod(p, keys, meals, l.DayStats())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tINTAKE\tBURN\tP\tC\tF\tSCORE\tWATER\tWEIGHT\tBALANCE")
			var intakeSum, burnSum float64
			activeDays := 0
			for _, d := range days {
				score := "-"
				if d.AvgQualityScore != nil {
					score = fmt.Sprintf("%.1f", *d.AvgQualityScore)
					activeDays++
					intakeSum += d.IntakeKcal
				}
				burnSum += d.BurnKcal
				fmt.Fprintf(out, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%s\t%.0f\t%.1f\t%s\n",
					d.DateKey, d.IntakeKcal, d.BurnKcal,
					d.Macros.Protein, d.Macros.Carbs, d.Macros.Fat,
					score, d.WaterMl, d.WeightKg, d.Balance)
			}

			if peak, ok := metrics.PeakHour(meals); ok {
				fmt.Fprintf(out, "Peak hour: %02d:00 (%.0f kcal/day avg)\n", peak.Hour, peak.AvgKcal)
			}

			load := metrics.ComputeMetabolicLoad(p.MicroTargets, keys, meals)
			fmt.Fprintf(out, "Sodium: %.0f/%.0fmg avg (%s)  Sugar: %.0f/%.0fg avg (%s)\n",
				load.Sodium.AvgDaily, load.Sodium.Target, load.Sodium.Status,
				load.Sugar.AvgDaily, load.Sugar.Target, load.Sugar.Status)

			if activeDays > 0 {
				avgIntake := intakeSum / float64(activeDays)
				avgBurn := burnSum / float64(len(keys))
				proj := metrics.ProjectWeightChange(p, avgBurn, avgIntake, 30)
				fmt.Fprintf(out, "30-day projection: %.1fkg -> %.1fkg (TDEE %.0f, daily deficit %.0f kcal)\n",
					p.WeightKg, proj.ProjectedKg, proj.TDEE, proj.DailyDeficit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.Flags().StringVar(&analyticsFrom, "from", "", "Range start YYYY-MM-DD (default 6 days ago)")
	analyticsCmd.Flags().StringVar(&analyticsTo, "to", "", "Range end YYYY-MM-DD (default today)")
}
