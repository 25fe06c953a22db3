package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// workoutCmd records today's finished exercises
var workoutCmd = &cobra.Command{
	Use:   "workout <exercise>...",
	Short: "Record today's finished workout exercises",
	Long: `Records finished exercises for today's workout. The workout streak
is tracked separately from mission XP.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			stats, err := a.svc.CompleteWorkout(ctx, args)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %d exercise(s). Workout streak: %d day(s), best %d.\n",
				len(args), stats.Current, stats.Best)
			return nil
		})
	},
}
