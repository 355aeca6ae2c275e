package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/platform/tui"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 sessions. With a difficulty (easy, normal, hard,
fixed or custom) only sessions played at that difficulty are listed.

Examples:
  recycle scores
  recycle scores hard
  recycle scores --interactive
  recycle scores normal --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the listed scores")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(cmd *cobra.Command, args []string) error {
	difficulty := ""
	if len(args) == 1 {
		difficulty = args[0]
		if !slices.Contains(config.ScoreLabels(), difficulty) {
			return fmt.Errorf("unknown difficulty %q", difficulty)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, clearErr := store.ClearScores(difficulty)
		if clearErr != nil {
			return clearErr
		}
		fmt.Fprintf(out, "Deleted %d sessions.\n", n)
		return nil
	}

	if flagInteractive {
		rt := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW, rt.ScreenH = w, h
		}
		if difficulty == "" {
			difficulty = config.Label(config.ParsePreset(flagDifficulty))
		}
		return tui.RunScoreboard(store, difficulty, rt.ScreenW, rt.ScreenH)
	}

	scores, err := store.TopScores(difficulty, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'recycle play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-6s  %-7s  %-5s  %-10s  %s\n", "Rank", "Score", "Correct", "Wrong", "Difficulty", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-7s  %-5s  %-10s  %s\n", "----", "-----", "-------", "-----", "----------", "----")

	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-6d  %-7d  %-5d  %-10s  %s\n",
			i+1, entry.Score, entry.Correct, entry.Wrong, entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(difficulty)
	if err == nil && stats.Games > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.1f  Accuracy: %.0f%%\n",
			stats.Games, stats.Best, stats.Average, stats.Accuracy*100)
	}
	return nil
}

