package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notfound/internal/config"
	"notfound/internal/dashboard"
	"notfound/internal/render"
	"notfound/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// showCommand constructs the 'show' subcommand that runs one aggregation cycle
// and prints the resulting dashboard.
func showCommand(cfg *config.Config) *cobra.Command {
	var (
		output      string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetches live data once and prints the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err //nolint: wrapcheck
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, flushMetrics := getMetrics(ctx, &metricsFile)
			defer flushMetrics()

			themes, closeStrg := getThemeStore(ctx, cfg)
			defer closeStrg()

			ctrl := dashboard.New(getAggregator(ctx, cfg, mp), themes)
			defer ctrl.Close()

			state := ctrl.Init(ctx)
			if err := render.Write(os.Stdout, format, state, time.Now()); err != nil {
				logger.Error(ctx, "could not render dashboard", zap.Error(err))

				return err //nolint: wrapcheck
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatText), "Output format: text, json or yaml")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", cfg.Metrics.TextfilePath,
		"Write Prometheus metrics to this textfile after the run")

	return cmd
}
