package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/game"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show badge progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			p := l.Profile()
			fmt.Fprintln(cmd.OutOrStdout(), "BADGE\tSTATUS\tDESC")
			for _, b := range game.Catalog {
				status := "locked"
				if p.HasAchievement(b.ID) {
					status = "unlocked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", b.Name, status, b.Desc)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}
