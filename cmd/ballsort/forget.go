package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	flagForgetScope  string
	flagForgetScores string
)

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Discard the saved game or recorded scores",
	Long: `Discard the game in progress so the next play starts a new board.
With --scores, also deletes every recorded result for that level.

Examples:
  ballsort forget
  ballsort forget --scope ssh:alice    # an SSH user's saved game
  ballsort forget --scores easy`,
	Args: cobra.NoArgs,
	Run:  runForget,
}

func init() {
	forgetCmd.Flags().StringVar(&flagForgetScope, "scope", storage.LocalScope, "Saved game to discard (ssh:<user>, or local)")
	forgetCmd.Flags().StringVar(&flagForgetScores, "scores", "", "Also delete the scores for this level")
}

func runForget(_ *cobra.Command, _ []string) {
	loadSettings()

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearSnapshot(flagForgetScope); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Discarded saved game for %q.\n", flagForgetScope)

	if flagForgetScores == "" {
		return
	}
	level := resolveLevel(flagForgetScores)
	if err := store.ClearScores(level.Key); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted scores for %s.\n", level.Name)
}
