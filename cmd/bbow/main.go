package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nvandessel/bbow/internal/config"
	"github.com/nvandessel/bbow/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bbow",
		Short: "Big bag of words - case-insensitive word counts for text",
		Long: `bbow reduces texts to a bag of words: every distinct word with the
number of times it occurs. Words are runs of Unicode letters; case and
surrounding punctuation are ignored.

Inputs are files (plain text, HTML, or PDF) or standard input when no
files are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.bbow/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")
	rootCmd.PersistentFlags().String("format", "", "Input format: auto, text, html, or pdf")

	rootCmd.AddCommand(
		newCountCmd(),
		newMatchCmd(),
		newWordsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// cliEnv is the configuration and logger shared by a single command run.
type cliEnv struct {
	cfg    *config.BbowConfig
	logger *slog.Logger
}

// loadEnv resolves configuration (file, environment, then global flags)
// and builds the logger. Logs go to the command's error stream.
func loadEnv(cmd *cobra.Command) (*cliEnv, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Input.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cliEnv{
		cfg:    cfg,
		logger: logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()),
	}, nil
}
