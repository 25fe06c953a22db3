package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/questline/internal/domain/progression"
)

// timelineCmd shows the phase plan
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the long-term phase timeline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			report, err := a.svc.Timeline(ctx)
			if err != nil {
				return err
			}

			for _, view := range report.Phases {
				marker := " "
				if view.TimeStatus == progression.TimeStatusCurrent {
					marker = ">"
				}
				fmt.Printf("%s %-20s %s .. %s  %-7s %3.0f%%\n",
					marker, view.Phase.Name, view.Phase.StartDate, view.Phase.EndDate,
					view.TimeStatus, view.Progress*100)
			}

			if report.Current != nil {
				fmt.Printf("\nCurrent phase: %s\n", report.Current.Name)
				for _, goal := range report.Current.Goals {
					fmt.Printf("  - %s\n", goal)
				}
			} else {
				fmt.Println("\nThe plan has not started yet.")
			}
			return nil
		})
	},
}
