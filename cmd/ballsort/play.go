package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or the last played one.
A game in progress for that level is resumed.

Controls:
  Left/Right, h/l  - Move cursor
  Space/Enter      - Pick up or drop a ball
  1-9, 0           - Pick a tube directly
  U/Backspace      - Undo
  ?                - Hint
  R                - New board
  P                - Pause timer
  S                - Sound on/off
  Esc              - Level menu
  Q/Ctrl+C         - Quit

Examples:
  ballsort play
  ballsort play hard
  ballsort play easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	settings := loadSettings()

	key := settings.Level()
	if len(args) == 1 {
		key = args[0]
	}
	level := resolveLevel(key)

	settings.SetLevel(level.Key)
	if err := settings.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save settings: %v\n", err)
	}

	logger, closeLog := newLogger(nil)
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	env := tui.Env{
		Store:    store,
		Settings: settings,
		Logger:   logger,
		Sounder:  tui.NewBellSounder(os.Stderr, settings),
	}

	if err := tui.RunLevel(env, runtimeConfig(), level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
