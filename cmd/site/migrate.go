package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/SafalBhandari12/event/internal/config"
	"github.com/SafalBhandari12/event/internal/storage/sqlite"
	"github.com/SafalBhandari12/event/migrations"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch c.cfg.Storage {
			case config.StoragePostgres:
				ctx, cancel := context.WithTimeout(cmd.Context(), startupTimeout)
				defer cancel()

				pool, err := pgxpool.New(ctx, c.cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("connect to db: %w", err)
				}
				defer pool.Close()

				applied, err := migrations.Apply(ctx, pool)
				if err != nil {
					return fmt.Errorf("apply migrations: %w", err)
				}
				if len(applied) == 0 {
					fmt.Fprintln(out, "database is up to date")
				}
				for _, name := range applied {
					fmt.Fprintln(out, "applied", name)
				}
				return nil

			case config.StorageSQLite:
				// Opening the store applies its embedded migrations.
				store, err := sqlite.Open(c.cfg.SQLitePath)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "sqlite schema ready at", c.cfg.SQLitePath)
				return store.Close()
			}
			return errors.New("migrate needs STORAGE=postgres or STORAGE=sqlite")
		},
	}
}
