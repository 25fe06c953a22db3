package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/questline/internal/domain/progression"
)

// skillsCmd shows the skill tree
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show the skill tree",
	Long: `Shows every skill node with its lock status and XP progress.

Subcommands:
  overview - per-node infinite leveling curve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			views, err := a.svc.SkillTree(ctx)
			if err != nil {
				return err
			}
			for _, view := range views {
				fmt.Printf("  %s %-20s tier %d  %3.0f%%\n",
					statusMarker(view.Status), view.NodeID, view.Tier, view.Progress*100)
			}
			return nil
		})
	},
}

// skillsOverviewCmd shows the per-node leveling curve
var skillsOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show per-node levels beyond unlocking",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			overview, err := a.svc.SkillOverview(ctx)
			if err != nil {
				return err
			}
			for _, node := range overview {
				fmt.Printf("  %-20s level %2d  %3.0f%% toward next (%d XP needed, %d total)\n",
					node.NodeID, node.Level, node.LevelProgress*100,
					node.LevelRequiredXP, node.TotalXP)
			}
			return nil
		})
	},
}

func statusMarker(status progression.NodeStatus) string {
	switch status {
	case progression.NodeStatusCompleted:
		return "[x]"
	case progression.NodeStatusAvailable:
		return "[ ]"
	default:
		return "[-]"
	}
}

func init() {
	skillsCmd.AddCommand(skillsOverviewCmd)
}
