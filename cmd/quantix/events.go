package quantix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devpik/quantix-nutri-ai/internal/game"
)

func reportEvents(cmd *cobra.Command, events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventLevelUp:
			fmt.Fprintf(cmd.OutOrStdout(), "Level up! You are now level %d (+5 credits)\n", ev.Level)
		case game.EventBadgeUnlock:
			fmt.Fprintf(cmd.OutOrStdout(), "Badge unlocked: %s (+%d XP)\n", ev.Badge.Name, ev.XP)
		case game.EventStreak:
			fmt.Fprintf(cmd.OutOrStdout(), "Streak extended (+%d XP)\n", ev.XP)
		}
	}
}
