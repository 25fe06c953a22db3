package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusChartDays int

// statusCmd shows the overall progression summary
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show streak, rank and XP summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			report, err := a.svc.Status(ctx, statusChartDays)
			if err != nil {
				return err
			}

			fmt.Printf("Status for %s\n\n", report.Date)
			fmt.Printf("Rank: %s (level %d, %d/%d XP)\n",
				report.Officer.RankName, report.Officer.Level,
				report.Officer.XPIntoLevel, report.Officer.XPForLevel)
			fmt.Printf("Total XP: %d", report.TotalXP)
			if report.Officer.PrimaryDomain != "" {
				fmt.Printf(" (primary domain: %s)", report.Officer.PrimaryDomain)
			}
			fmt.Println()

			fmt.Printf("Streak: %d day(s), best %d, multiplier x%.1f\n",
				report.Streak.Current, report.Streak.Best, report.Multiplier)
			fmt.Printf("Rerolls remaining today: %d\n", report.RerollsRemaining)
			if len(report.Badges) > 0 {
				fmt.Printf("Badges: %s\n", strings.Join(report.Badges, ", "))
			}
			if report.WorkoutStreak.Current > 0 {
				fmt.Printf("Workout streak: %d day(s)\n", report.WorkoutStreak.Current)
			}
			if report.LastGain != nil {
				fmt.Printf("Last gain: +%d XP in %s on %s\n",
					report.LastGain.Amount, report.LastGain.Domain, report.LastGain.Date)
			}

			if len(report.Officer.DomainBreakdown) > 0 {
				fmt.Println("\nDomains:")
				for _, share := range report.Officer.DomainBreakdown {
					fmt.Printf("  %-12s %6d XP  %5.1f%%\n",
						share.Domain, share.XP, share.Share*100)
				}
			}

			fmt.Println("\nXP history:")
			for _, day := range report.XPHistory {
				fmt.Printf("  %s  %4d  %s\n", day.Date, day.XP, strings.Repeat("#", day.XP/10))
			}
			return nil
		})
	},
}

func init() {
	statusCmd.Flags().IntVar(&statusChartDays, "days", 0,
		"XP history window in days (0 uses the configured default)")
}
