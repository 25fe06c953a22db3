package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/progression"
	"github.com/phrazzld/questline/internal/service"
)

// todayCmd shows the day's mission board
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's mission cards",
	Long: `Shows the mission cards selected for today. The first call of the
day draws a fresh set, weighted toward domains with less XP; later
calls return the same set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			board, err := a.svc.TodayMissions(ctx)
			if err != nil {
				return err
			}
			printBoard(board)
			return nil
		})
	},
}

// completeCmd records a card completion
var completeCmd = &cobra.Command{
	Use:   "complete <card-id>",
	Short: "Complete a mission card and earn XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			gain, err := a.svc.CompleteCard(ctx, args[0])
			if err != nil {
				return err
			}
			if gain == nil {
				fmt.Printf("%s is already completed today.\n", args[0])
				return nil
			}
			fmt.Printf("+%d XP in %s", gain.Amount, gain.Domain)
			if gain.Multiplier > 1 {
				fmt.Printf(" (x%.1f streak bonus)", gain.Multiplier)
			}
			fmt.Println()
			return nil
		})
	},
}

// rerollCmd swaps today's missions for a fresh draw
var rerollCmd = &cobra.Command{
	Use:   "reroll",
	Short: "Reroll today's mission cards",
	Long: `Replaces today's missions with a fresh random draw. Rerolls are a
streak perk: one per day from a 7-day streak, two from 14 days.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			board, err := a.svc.RerollMissions(ctx)
			if err != nil {
				if errors.Is(err, progression.ErrRerollsExhausted) {
					fmt.Println("No rerolls left today. Keep the streak going to earn more.")
					return nil
				}
				return err
			}
			printBoard(board)
			return nil
		})
	},
}

func printBoard(board *service.MissionBoard) {
	fmt.Printf("Missions for %s\n", board.Date)
	for _, card := range board.Cards {
		printCard(card)
	}
	fmt.Printf("Rerolls remaining: %d\n", board.RerollsRemaining)
}

func printCard(card domain.Card) {
	fmt.Printf("  [%s] %s (%s, %d XP)\n", card.ID, card.Title, card.Domain, card.XPReward)
	if card.Description != "" {
		fmt.Printf("      %s\n", card.Description)
	}
}
