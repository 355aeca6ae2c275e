// recycle is a terminal waste-sorting arcade game.
//
// Usage:
//
//	recycle                      - Play (same as "recycle play")
//	recycle play                 - Play a session in this terminal
//	recycle serve                - Start SSH server for remote play
//	recycle scores [difficulty]  - Show high scores
//	recycle config               - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.recycle/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recycle",
	Short: "Recycling Hunter - sort falling waste in your terminal",
	Long: `Recycling Hunter is a terminal arcade game. Plastic, glass and metal
fall from the top of the screen; drag each one into its bin with the mouse
before it lands. A correct sort is worth +10, a wrong one costs 5.

Available commands:
  play     - Play a session (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config

Examples:
  recycle
  recycle play --difficulty hard
  recycle serve --ssh :2222
  recycle scores normal`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.recycle/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger every command shares. The returned closer
// releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "recycle",
		Level:           level,
	})
	return logger, closer, nil
}

// loadRules loads the game config and applies --difficulty. It returns the
// label scores are filed under.
func loadRules() (config.RecycleConfig, string, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.RecycleConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	rules, err := config.Load(flagConfig)
	if err != nil {
		return config.RecycleConfig{}, "", err
	}
	config.ApplyPreset(&rules, preset)
	return rules, config.Label(preset), nil
}
