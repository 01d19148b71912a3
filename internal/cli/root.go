// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for tollgrid.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

type (
	configKey   struct{}
	loggerKey   struct{}
	rendererKey struct{}
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "tollgrid",
		Short: "Toll-road table transforms",
		Long: `tollgrid reshapes toll-road CSV datasets: vehicle and distance matrices,
vehicle-count buckets, weekly coverage checks and time-based toll rates.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			}
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			ctx = context.WithValue(ctx, rendererKey{}, NewRenderer(cmd.OutOrStdout(), cfg.Output))
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|markdown|json|yaml|csv)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewCarMatrixCommand())
	rootCmd.AddCommand(NewRescaleCommand())
	rootCmd.AddCommand(NewCarTypesCommand())
	rootCmd.AddCommand(NewBusIndexesCommand())
	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewCoverageCommand())
	rootCmd.AddCommand(NewDistanceCommand())
	rootCmd.AddCommand(NewUnrollCommand())
	rootCmd.AddCommand(NewWithinCommand())
	rootCmd.AddCommand(NewTollsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// WithLogger stores logger in ctx; the root command then uses it instead of
// building its own stderr logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	cfg, _ := LoadConfig("", nil)
	return cfg
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*Renderer); ok {
		return r
	}
	return NewRenderer(os.Stdout, FormatText)
}

// newLogger builds the stderr text logger; Debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tollgrid v%s\n", Version)
		},
	}
}
