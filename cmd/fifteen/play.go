package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/platform/tui"
	"github.com/vovakirdan/fifteen/internal/puzzle"
	"github.com/vovakirdan/fifteen/internal/storage"
)

var (
	flagRule  string
	flagSeed  int64
	flagBoard string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle on a solved board. Press N to deal a new game.

Controls:
  Arrows/WASD - Slide the tile next to the gap into it
  Mouse click - Slide the clicked tile
  N           - New game
  R           - Restart the current deal
  ?           - More keys
  Q/Ctrl+C    - Quit

Adjacency rules:
  row-aware - Tiles slide between horizontal or vertical neighbours only
  naive     - Also allows wrapping from the end of one row to the next

Examples:
  fifteen play
  fifteen play --seed 42
  fifteen play --rule naive
  fifteen play --board "_ 1 2 3 4 5 6 7 8 9 10 11 12 13 15 14"`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRule, "rule", "", "Adjacency rule: row-aware, naive (overrides config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Start from this board instead of the solved one")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	session, err := newSession(cfg, flagRule, flagSeed, flagBoard, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Unit:    cfg.Unit(),
		Seed:    flagSeed,
	}

	// Open results storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", cfg.Storage.Path, "err", err)
		// Continue without storage - the game still works
		store = nil
	}

	logger.Info("starting", "rule", session.Rule(), "unit", rc.Unit, "seed", flagSeed)
	runErr := tui.Run(session, store, rc, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newSession builds a session from config and flag overrides. A non-empty
// board is dealt immediately.
func newSession(cfg config.Config, rule string, seed int64, board string, logger *log.Logger) (*puzzle.Session, error) {
	if rule == "" {
		rule = cfg.Rules.Adjacency
	}
	r, err := puzzle.ParseRule(rule)
	if err != nil {
		return nil, err
	}

	session := puzzle.NewSession(
		puzzle.WithRule(r),
		puzzle.WithSeed(seed),
		puzzle.WithLogger(logger),
	)

	if board != "" {
		b, err := puzzle.ParseBoard(board)
		if err != nil {
			return nil, err
		}
		if !puzzle.Reachable(b) {
			logger.Warn("board cannot be solved", "board", b.String())
		}
		if err := session.Load(b); err != nil {
			return nil, err
		}
	}
	return session, nil
}
