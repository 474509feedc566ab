// Package cli wires the point-of-sale processes behind a single binary:
// the serve loop, schema migration and one-shot report commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rest-pos/config"
	"rest-pos/logging"
	"rest-pos/storage"
	"rest-pos/storage/postgres"
	"rest-pos/storage/sqlite"
)

// NewRootCommand creates the root command for the pos CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pos",
		Short:         "Restaurant point of sale",
		Long:          "Order entry over Telegram plus a daily sales reconciliation report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup()
		},
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewOrdersCommand())
	cmd.AddCommand(NewMenuCommand())

	return cmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore opens the configured persistence backend. The SQLite backend
// migrates itself on open; PostgreSQL installs run `pos migrate` first.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return sqlite.New(cfg.Storage.SQLitePath)
	case "postgres":
		return postgres.New(ctx, cfg.DB)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
