package quantix

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/game"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/model"
)

var waterCmd = &cobra.Command{
	Use:   "water <ml>",
	Short: "Add water for today (negative removes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		return withLedger(func(l *ledger.Ledger) error {
			total, err := l.AddWater(delta)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water today: %.0fml\n", total)

			p := l.Profile()
			meals := 0
			for _, m := range l.Meals() {
				if m.Type == model.EntryFood {
					meals++
				}
			}
			events := game.CheckBadges(&p, meals, total, p.StreakDays)
			if len(events) == 0 {
				return nil
			}
			if err := l.SaveProfile(p); err != nil {
				return err
			}
			reportEvents(cmd, events)
			return nil
		})
	},
}

var (
	fastStartAt string
	fastEndAt   string
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Track intermittent fasting",
}

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fast now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.StartFast(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Fast started")
			return nil
		})
	},
}

var fastEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the running fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			minutes, err := l.EndFast()
			if err != nil {
				return err
			}
			if minutes == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fast running")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fast ended: %.0f min\n", minutes)
			return nil
		})
	},
}

var fastLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a completed fast window",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.ParseInLocation("2006-01-02 15:04", fastStartAt, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --start (expected \"YYYY-MM-DD HH:MM\")")
		}
		end, err := time.ParseInLocation("2006-01-02 15:04", fastEndAt, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --end (expected \"YYYY-MM-DD HH:MM\")")
		}
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.LogCompletedFast(start, end); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged fast: %.0f min\n", end.Sub(start).Minutes())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd, fastCmd)
	fastCmd.AddCommand(fastStartCmd, fastEndCmd, fastLogCmd)

	fastLogCmd.Flags().StringVar(&fastStartAt, "start", "", "Fast start \"YYYY-MM-DD HH:MM\"")
	fastLogCmd.Flags().StringVar(&fastEndAt, "end", "", "Fast end \"YYYY-MM-DD HH:MM\"")
	_ = fastLogCmd.MarkFlagRequired("start")
	_ = fastLogCmd.MarkFlagRequired("end")
}
