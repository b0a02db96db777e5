// fifteen is the 15-puzzle in the terminal.
//
// Usage:
//
//	fifteen play              - Play the puzzle
//	fifteen scores            - Show the best finished games
//	fifteen shuffle           - Print generated boards
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.fifteen, ./configs)
//	--db <path>         - Results database (default: from config)
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <level> - debug, info, warn, error (default: from config)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fifteen/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "Fifteen - the sliding tile puzzle in your terminal",
	Long: `Fifteen is the classic 4x4 sliding puzzle. Slide the tiles into the
gap until they read 1 to 15 with the gap in the bottom-right corner.

Available commands:
  play     - Play the puzzle
  scores   - View the best finished games
  shuffle  - Print generated boards

Examples:
  fifteen play
  fifteen play --rule naive
  fifteen scores --limit 5
  fifteen shuffle --count 3 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shuffleCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger for a run. The terminal belongs to the board,
// so without a log file everything is discarded. The returned close function
// is never nil.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, noop, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var w io.Writer = io.Discard
	closeFn := noop
	if path != "" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, noop, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, noop, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, noop, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fifteen",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
