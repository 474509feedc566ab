package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"rest-pos/config"
	"rest-pos/storage/postgres"
	"rest-pos/storage/sqlite"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			switch cfg.Storage.Backend {
			case "sqlite":
				// opening applies the schema
				s, err := sqlite.New(cfg.Storage.SQLitePath)
				if err != nil {
					return err
				}
				defer s.Close()
			case "postgres":
				s, err := postgres.New(cmd.Context(), cfg.DB)
				if err != nil {
					return err
				}
				defer s.Close()
				if err := s.Migrate(cmd.Context()); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
			}

			slog.Info("schema up to date", "backend", cfg.Storage.Backend)
			return nil
		},
	}
}
