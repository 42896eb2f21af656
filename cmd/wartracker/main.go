package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yoshi-675/sl-political-war-tracker/internal/app"
	"github.com/yoshi-675/sl-political-war-tracker/internal/config"
	"github.com/yoshi-675/sl-political-war-tracker/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

const defaultWatchInterval = 6 * time.Hour

var (
	cfgFile    string
	outputPath string
	parallel   bool
	watch      bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wartracker",
		Short: "Sri Lanka political media-war tracker",
		Long: `wartracker scrapes configured Sri Lankan news sites, tags headlines with
tracked political players, scores them with a fixed keyword heuristic, and
writes a media-war report snapshot with rule-based predictions.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "snapshot output path")
	rootCmd.Flags().BoolVar(&parallel, "parallel", false, "fetch sources concurrently")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "keep re-running on an interval")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if outputPath != "" {
		cfg.Output.Path = outputPath
	}
	if parallel {
		cfg.Fetch.Parallel = true
	}
	if watch && cfg.Scheduler.Interval <= 0 {
		cfg.Scheduler.Interval = defaultWatchInterval
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	application := app.New(cfg, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		return err
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("wartracker %s\n", Version)
		},
	}
}
