package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"rest-pos/bot"
	"rest-pos/catalog"
	"rest-pos/config"
	"rest-pos/mailer"
	"rest-pos/metrics"
	"rest-pos/report"
)

// NewServeCommand creates the serve command, the long-running POS process.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the operator bot",
		Long: `Start the point-of-sale terminal: load the menu, open the store and
serve Telegram operators until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("close store", "error", err)
		}
	}()

	cat, err := catalog.Load(ctx, store)
	if err != nil {
		return err
	}
	slog.Info("menu loaded", "items", len(cat.Items()), "categories", len(cat.Categories()))

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				slog.Error("metrics listener", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	engine := report.NewEngine(store, store, cat)
	b, err := bot.New(cfg, store, cat, engine, mailer.New(cfg.SMTP))
	if err != nil {
		return err
	}

	b.Start()
	return nil
}
