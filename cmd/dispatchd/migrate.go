package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/app"
)

func newMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Long: `Applies every embedded migration that has not run yet.

Safe to run multiple times. The serve command does the same on start
unless database.auto_migrate is false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log, os.Stderr)

			if err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
