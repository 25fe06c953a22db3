// Package main implements the questline CLI, the local front door to the
// progression engine: daily missions, completions, streaks, the skill
// tree, the phase timeline and reflections.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "questline",
	Short: "questline - personal progression engine",
	Long: `questline turns daily practice into a progression game: complete
mission cards to earn domain XP, keep streaks for multipliers, unlock
skill tree nodes and climb the officer ranks.

State lives in PostgreSQL; static content (cards, skill tree, phases)
is read from JSON documents in the configured content directory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(
		migrateCmd,
		todayCmd,
		completeCmd,
		rerollCmd,
		statusCmd,
		skillsCmd,
		timelineCmd,
		reflectCmd,
		driftCmd,
		workoutCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
