package quantix

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/sched"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run hydration and meal reminders in the foreground",
	Long:  "Checks every minute for hydration (hourly, 08-22h, under 2000ml) and meal nudges (12:15 and 20:15 with fewer than 2 meals logged), and announces the day rollover at local midnight. Ctrl-C to stop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			s := sched.New(l, log, func(ev sched.Event) {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", ev.Kind, ev.Message)
			})
			if err := s.Start(); err != nil {
				return err
			}
			defer s.Stop()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			fmt.Fprintln(cmd.OutOrStdout(), "Reminders running, Ctrl-C to stop")
			<-stop
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
}
