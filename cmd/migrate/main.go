package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"billbook/internal/config"
	"billbook/internal/database"
	"billbook/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the billbook database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Loads .env so the DB_* variables are visible to database.NewConfig.
			_, err := config.Load()
			return err
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *migrate.Migrate) error {
					if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
						return fmt.Errorf("migration up failed: %w", err)
					}
					logger.Get().Info("Migrations applied successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down [n]",
			Short: "Roll back the last n migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) > 0 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return fmt.Errorf("invalid step count %q", args[0])
					}
					steps = n
				}
				return withMigrator(func(m *migrate.Migrate) error {
					if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
						return fmt.Errorf("migration down failed: %w", err)
					}
					logger.Get().Infof("Rolled back %d migration(s)", steps)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *migrate.Migrate) error {
					version, dirty, err := m.Version()
					if errors.Is(err, migrate.ErrNilVersion) {
						logger.Get().Info("No migrations applied")
						return nil
					}
					if err != nil {
						return fmt.Errorf("failed to get version: %w", err)
					}
					logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)
					return nil
				})
			},
		},
	)

	return root
}

func withMigrator(fn func(m *migrate.Migrate) error) error {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	m, err := database.NewMigrator(dbConfig)
	if err != nil {
		return err
	}
	defer database.CloseMigrator(m)

	return fn(m)
}
