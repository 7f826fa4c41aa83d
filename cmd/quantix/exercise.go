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

var exerciseCals float64

var exerciseCmd = &cobra.Command{
	Use:   "exercise <description>",
	Short: "Log an exercise burn",
	Long:  "Logs calories burned. With --cals the value is used as-is; otherwise the burn is estimated with AI from your biometrics.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := strings.Join(args, " ")
		return withLedger(func(l *ledger.Ledger) error {
			cals := exerciseCals
			if cals <= 0 {
				client, err := geminiClient()
				if err != nil {
					return err
				}
				if err := requireCredits(l); err != nil {
					return err
				}
				raw, err := client.Generate(cmd.Context(), gemini.ExercisePrompt(l.Profile(), desc))
				if err != nil {
					return err
				}
				normalized, estimated, err := estimate.ParseExerciseResponse(raw)
				if err != nil {
					return err
				}
				if err := spendCredit(l); err != nil {
					return err
				}
				if normalized != "" {
					desc = normalized
				}
				cals = estimated
			}
			e, err := l.AddMeal(model.MealEntry{
				Desc: desc,
				Type: model.EntryExercise,
				Cals: cals,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.0f kcal burned\n", e.Desc, e.Cals)
			events, err := review.Settle(l, game.ActionMealEntry, 1)
			if err != nil {
				return err
			}
			reportEvents(cmd, events)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a logged entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.DeleteMeal(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd, deleteCmd)
	exerciseCmd.Flags().Float64Var(&exerciseCals, "cals", 0, "Calories burned (skips the AI estimate)")
}
