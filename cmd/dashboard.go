package main

import (
	"context"
	"os/signal"
	"syscall"

	"notfound/internal/config"
	"notfound/internal/dashboard"
	"notfound/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// dashboardCommand constructs the interactive 'dashboard' subcommand.
func dashboardCommand(cfg *config.Config) *cobra.Command {
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Opens the interactive dashboard (r: refresh, t: theme, q: quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, flushMetrics := getMetrics(ctx, &metricsFile)
			defer flushMetrics()

			themes, closeStrg := getThemeStore(ctx, cfg)
			defer closeStrg()

			bridge := &tui.Bridge{}
			ctrl := dashboard.New(getAggregator(ctx, cfg, mp), themes, dashboard.WithNotify(bridge.Notify))
			defer ctrl.Close()

			return tui.Run(ctx, ctrl, bridge, tea.WithAltScreen())
		},
	}

	cmd.Flags().StringVar(&metricsFile, "metrics-file", cfg.Metrics.TextfilePath,
		"Write Prometheus metrics to this textfile on exit")

	return cmd
}
