package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leitner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leitner-backend/internal/app"
)

// migrateTimeout bounds a single migrate invocation.
const migrateTimeout = 5 * time.Minute

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator, log *slog.Logger) error {
				results, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				for _, r := range results {
					log.Info("migration applied",
						slog.Int64("version", r.Source.Version),
						slog.Duration("duration", r.Duration),
					)
				}
				log.Info("schema up to date", slog.Int("applied", len(results)))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator, log *slog.Logger) error {
				r, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator, _ *slog.Logger) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			}),
		},
	)

	return cmd
}

// withMigrator loads config, opens a Migrator and hands it to fn.
func withMigrator(fn func(cmd *cobra.Command, m *postgres.Migrator, log *slog.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
		defer cancel()
		cmd.SetContext(ctx)

		m, err := postgres.NewMigrator(ctx, cfg.Database.URI)
		if err != nil {
			return err
		}
		defer m.Close()

		return fn(cmd, m, logger.With("command", cmd.CommandPath()))
	}
}
