package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/audio"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/platform/tui"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session in this terminal",
	Long: `Start Recycling Hunter in the current terminal.

Controls:
  Mouse drag     - Pick an item up and move it over a bin
  Enter/Space    - Start / drop the held item
  Left/Right     - Grab the lowest item and nudge it
  Down           - Drop the held item
  R              - Restart
  Tab            - Scoreboard (menu and game over)
  M              - Mute
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Ramp starts from the beginning
  normal - Ramp starts 15 seconds in
  hard   - Ramp starts 30 seconds in
  fixed  - No ramp, spawn interval and speed stay constant

Examples:
  recycle play
  recycle play --difficulty hard
  recycle play --config ./my-recycle.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal: only log to a file while it runs.
	startup := log.NewWithOptions(os.Stderr, log.Options{Prefix: "recycle"})
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rules, label, err := loadRules()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		startup.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := audio.Open(rules.Audio, startup)
	defer player.Close()
	if flagMute {
		player.SetMuted(true)
	}

	logger.Info("starting", "difficulty", label, "fps", flagFPS, "seed", flagSeed)

	return tui.Run(tui.Options{
		Rules:      rules,
		Difficulty: label,
		Runtime:    rt,
		Store:      store,
		Audio:      player,
		Logger:     logger,
	})
}
