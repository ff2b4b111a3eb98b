package main

import (
	"context"
	"fmt"

	"notfound/internal/config"
	"notfound/pkg/domain"
	"notfound/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// themeCommand constructs the 'theme' subcommand, which prints the stored
// theme, and its 'toggle' and 'set' children.
func themeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Prints the stored theme",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			themes, closeStrg := getThemeStore(ctx, cfg)
			defer closeStrg()

			t, err := themes.Load(ctx)
			if err != nil {
				logger.Warn(ctx, "could not load theme", zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Switches between the light and dark theme",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			themes, closeStrg := getThemeStore(ctx, cfg)
			defer closeStrg()

			t, err := themes.Toggle(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not toggle theme", zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
		},
	}

	set := &cobra.Command{
		Use:       "set light|dark",
		Short:     "Stores the given theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{domain.ThemeLight.String(), domain.ThemeDark.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			t, ok := domain.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q", args[0])
			}

			themes, closeStrg := getThemeStore(ctx, cfg)
			defer closeStrg()

			return themes.Save(ctx, t) //nolint: wrapcheck
		},
	}

	cmd.AddCommand(toggle, set)

	return cmd
}
