package quantix

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/estimate"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/metrics"
	"github.com/devpik/quantix-nutri-ai/internal/model"
	"github.com/devpik/quantix-nutri-ai/internal/provider/gemini"
)

var planPreferences string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the weekly meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			week := l.Planner()
			if len(week.Days) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plan yet, run: quantix plan generate")
				return nil
			}
			printPlan(cmd, week)
			return nil
		})
	},
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a 7 day plan with AI",
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
			raw, err := client.Generate(cmd.Context(), gemini.WeeklyPlanPrompt(p, metrics.MacroTargets(p), planPreferences))
			if err != nil {
				return err
			}
			week, err := estimate.ParsePlannerResponse(raw)
			if err != nil {
				return err
			}
			if err := spendCredit(l); err != nil {
				return err
			}
			if err := l.SetPlanner(week); err != nil {
				return err
			}
			printPlan(cmd, week)
			return nil
		})
	},
}

func printPlan(cmd *cobra.Command, week model.PlannerWeek) {
	out := cmd.OutOrStdout()
	for i, d := range week.Days {
		fmt.Fprintf(out, "Day %d\n", i+1)
		fmt.Fprintf(out, "  %s\t%s (%.0f kcal)\n", model.CategoryBreakfast, d.Breakfast.Desc, d.Breakfast.EstimatedCals)
		fmt.Fprintf(out, "  %s\t%s (%.0f kcal)\n", model.CategoryLunch, d.Lunch.Desc, d.Lunch.EstimatedCals)
		fmt.Fprintf(out, "  %s\t%s (%.0f kcal)\n", model.CategorySnack, d.Snack.Desc, d.Snack.EstimatedCals)
		fmt.Fprintf(out, "  %s\t%s (%.0f kcal)\n", model.CategoryDinner, d.Dinner.Desc, d.Dinner.EstimatedCals)
	}
}

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Show the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			list := l.ShoppingList()
			if len(list.Categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No shopping list yet, run: quantix shopping generate")
				return nil
			}
			printShopping(cmd, list)
			return nil
		})
	},
}

var shoppingGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Derive a shopping list from the weekly plan with AI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.Ledger) error {
			week := l.Planner()
			if len(week.Days) == 0 {
				return fmt.Errorf("no weekly plan, run: quantix plan generate")
			}
			client, err := geminiClient()
			if err != nil {
				return err
			}
			if err := requireCredits(l); err != nil {
				return err
			}
			raw, err := client.Generate(cmd.Context(), gemini.ShoppingPrompt(week))
			if err != nil {
				return err
			}
			list, err := estimate.ParseShoppingResponse(raw)
			if err != nil {
				return err
			}
			if err := spendCredit(l); err != nil {
				return err
			}
			if err := l.SetShoppingList(list); err != nil {
				return err
			}
			printShopping(cmd, list)
			return nil
		})
	},
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <category-idx> <item-idx>",
	Short: "Toggle an item's checked state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ci, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category index %q", args[0])
		}
		ii, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid item index %q", args[1])
		}
		return withLedger(func(l *ledger.Ledger) error {
			if err := l.ToggleShoppingItem(ci, ii); err != nil {
				return err
			}
			printShopping(cmd, l.ShoppingList())
			return nil
		})
	},
}

func printShopping(cmd *cobra.Command, list model.ShoppingList) {
	out := cmd.OutOrStdout()
	for ci, cat := range list.Categories {
		fmt.Fprintf(out, "[%d] %s\n", ci, cat.Name)
		for ii, it := range cat.Items {
			mark := " "
			if it.Checked {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%d] [%s] %s (%s)\n", ii, mark, it.Name, it.Quantity)
		}
	}
}

func init() {
	rootCmd.AddCommand(planCmd, shoppingCmd)
	planCmd.AddCommand(planGenerateCmd)
	shoppingCmd.AddCommand(shoppingGenerateCmd, shoppingCheckCmd)

	planGenerateCmd.Flags().StringVar(&planPreferences, "preferences", "", "Free-text dietary preferences")
}
