package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/review"
)

var comboCategory string

var comboCmd = &cobra.Command{
	Use:   "combo",
	Short: "Manage saved meal combos",
}

var comboListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved combos",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tITEMS\tKCAL")
			for _, c := range l.Combos() {
				var total float64
				for _, it := range c.Items {
					total += it.Cals
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%.0f\n", c.ID, c.Name, len(c.Items), total)
			}
			return nil
		})
	},
}

var comboApplyCmd = &cobra.Command{
	Use:   "apply <combo-id>",
	Short: "Log a saved combo as today's meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			res, err := review.ApplyCombo(l, args[0], comboCategory)
			if err != nil {
				return err
			}
			reportResult(cmd, res)
			return nil
		})
	},
}

var comboDeleteCmd = &cobra.Command{
	Use:   "delete <combo-id>",
	Short: "Delete a saved combo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.DeleteCombo(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(comboCmd)
	comboCmd.AddCommand(comboListCmd, comboApplyCmd, comboDeleteCmd)
	comboApplyCmd.Flags().StringVar(&comboCategory, "category", "", "Meal category")
}
