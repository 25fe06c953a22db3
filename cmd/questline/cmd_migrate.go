package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/questline/internal/platform/postgres"
)

// migrateCmd applies pending database migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Applies all pending schema migrations to the configured database.

Subcommands:
  status - show applied/pending state per migration`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			if err := postgres.MigrateUp(a.db); err != nil {
				return err
			}
			fmt.Println("Migrations applied.")
			return nil
		})
	},
}

// migrateStatusCmd reports migration state
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app) error {
			return postgres.MigrationStatus(a.db)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
}
