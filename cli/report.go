package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rest-pos/catalog"
	"rest-pos/config"
	"rest-pos/mailer"
	"rest-pos/report"
)

// NewReportCommand creates the report command group for headless use:
// printing, exporting and emailing today's reconciliation without the bot.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print today's reconciliation report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReport(cmd.Context(), func(cfg *config.Config, r *report.Report) error {
				fmt.Fprint(cmd.OutOrStdout(), report.Render(r))
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write today's report to a dated text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReport(cmd.Context(), func(cfg *config.Config, r *report.Report) error {
				path, err := report.Export(cfg.Report.ExportDir, r)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "send",
		Short: "Email today's report to the configured recipients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReport(cmd.Context(), func(cfg *config.Config, r *report.Report) error {
				return mailer.New(cfg.SMTP).SendReport("Daily Sales Report", report.Render(r))
			})
		},
	})

	return cmd
}

// withReport opens the store, builds today's report and hands it to fn.
func withReport(ctx context.Context, fn func(*config.Config, *report.Report) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	cat, err := catalog.Load(ctx, store)
	if err != nil {
		return err
	}

	r, err := report.NewEngine(store, store, cat).Build(ctx)
	if err != nil {
		return err
	}
	return fn(cfg, r)
}
