package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phrazzld/questline/internal/domain/progression"
)

var (
	reflectMood    string
	reflectSummary string

	driftFrom string
	driftTo   string
)

// reflectCmd records a consistency check-in
var reflectCmd = &cobra.Command{
	Use:   "reflect <rating>",
	Short: "Record a consistency check-in (0-100)",
	Long: `Records a self-rated consistency check-in for today. The rating is
a 0-100 judgement of how well the last stretch matched your intentions.

Subcommands:
  templates - show the reflection prompt templates`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("rating must be a number: %q", args[0])
		}
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			entry, err := a.svc.AddReflection(ctx, rating, reflectMood, reflectSummary)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded reflection for %s (consistency %d).\n",
				entry.Date, entry.Consistency)
			return nil
		})
	},
}

// reflectTemplatesCmd lists the static reflection prompts
var reflectTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Show reflection prompt templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			templates, err := a.svc.ReflectionTemplates(ctx)
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No reflection templates configured.")
				return nil
			}
			for _, tpl := range templates {
				fmt.Printf("%s\n", tpl.Title)
				for _, prompt := range tpl.Prompts {
					fmt.Printf("  - %s\n", prompt)
				}
			}
			return nil
		})
	},
}

// driftCmd reports drift risk from reflections and activity
var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Show the drift-risk report",
	Long: `Combines self-rated consistency with the objective activity log into
a trend and a drift-risk classification. Without --from/--to the window
is inferred from the activity log itself.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *progression.DateRange
		if driftFrom != "" || driftTo != "" {
			if driftFrom == "" || driftTo == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			filter = &progression.DateRange{From: driftFrom, To: driftTo}
		}
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			report, err := a.svc.Drift(ctx, filter)
			if err != nil {
				return err
			}
			fmt.Printf("Consistency: avg %.1f, trend %s\n",
				report.AvgConsistency, report.ConsistencyTrend)
			fmt.Printf("Activity: %d of %d day(s) active (%.0f%%)\n",
				report.ActivityDays, report.TotalDays, report.ActivityRatio*100)
			fmt.Printf("Drift risk: %s\n", report.DriftRisk)
			return nil
		})
	},
}

func init() {
	reflectCmd.Flags().StringVar(&reflectMood, "mood", "", "one-word mood for the entry")
	reflectCmd.Flags().StringVar(&reflectSummary, "summary", "", "free-form summary of the period")
	reflectCmd.AddCommand(reflectTemplatesCmd)

	driftCmd.Flags().StringVar(&driftFrom, "from", "", "window start (YYYY-MM-DD)")
	driftCmd.Flags().StringVar(&driftTo, "to", "", "window end (YYYY-MM-DD)")
}
