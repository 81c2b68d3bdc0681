package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
Leaving a level returns to the menu; the game is kept for later.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Scoreboard
  T/H/S        - Toggle timer, hints and sound
  Q            - Quit

Examples:
  ballsort menu
  ballsort menu --levels ./my-levels.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	settings := loadSettings()

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

	if err := tui.RunMenu(env, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
