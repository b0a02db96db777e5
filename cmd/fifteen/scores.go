package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fifteen/internal/platform/tui"
	"github.com/vovakirdan/fifteen/internal/storage"
)

var (
	flagLimit int
	flagAll   bool
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished games",
	Long: `Display the best finished games, fewest moves first.

In a terminal the results open in a scrollable table. When the output is
piped, or with --plain, they are printed as text together with the start
board of each game, which can be replayed with 'fifteen play --board'.

Examples:
  fifteen scores
  fifteen scores --limit 5 --plain
  fifteen scores --all
  fifteen scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every result, newest first")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text even in a terminal")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	interactive := !flagPlain && !flagAll && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagLimit, cfg.Unit(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, flagLimit, flagAll, cfg.Unit()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the results table as text.
func printScores(w io.Writer, store *storage.Store, limit int, all bool, unit time.Duration) error {
	var (
		results []storage.Result
		err     error
	)
	if all {
		results, err = store.AllResults()
	} else {
		results, err = store.BestResults(limit)
	}
	if err != nil {
		return err
	}

	title := "Best Games"
	if all {
		title = "All Games"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games solved yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'fifteen play' to record the first result!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-9s  %-16s  %s\n", "Rank", "Moves", "Time", "Rule", "Date", "Start")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-9s  %-16s  %s\n", "----", "-----", "----", "----", "----", "-----")

	for i, r := range results {
		elapsed := (time.Duration(r.Elapsed) * unit).Truncate(time.Second)
		fmt.Fprintf(w, "  %-4d  %-6d  %-8s  %-9s  %-16s  %s\n",
			i+1, r.Moves, elapsed, r.Rule, r.CreatedAt.Format("2006-01-02 15:04"), r.Start)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Solved: %d  Best: %d moves  Average: %.1f moves\n", stats.Games, stats.BestMoves, stats.AvgMoves)
	return nil
}
