package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/games/ballsort/levels"
	"github.com/vovakirdan/ballsort/internal/platform/tui"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best results",
	Long: `Without a level, shows a summary for every level that has been solved.
With a level, shows its top 10 results: fewer moves rank higher, ties go to
the faster game.

Examples:
  ballsort scores
  ballsort scores medium
  ballsort scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the scoreboard screen")
}

func runScores(_ *cobra.Command, args []string) {
	settings := loadSettings()

	// Open score storage
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		key := settings.Level()
		if len(args) == 1 {
			key = resolveLevel(args[0]).Key
		}
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, key, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	level := resolveLevel(args[0])
	scores, err := store.TopScores(level.Key, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", level.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ballsort play %s' to set the first one!\n", level.Key)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %5s  %5s  %5s  %s\n", "Rank", "Moves", "Time", "Hints", "Date")
	fmt.Printf("  %-4s  %5s  %5s  %5s  %s\n", "----", "-----", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		fmt.Printf("  %-4d  %5d  %5s  %5d  %s\n",
			i+1, entry.Moves, ballsort.FormatElapsed(entry.Duration), entry.Hints,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

// printSummary prints win statistics per level in registration order.
func printSummary(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No levels solved yet.")
		return
	}

	fmt.Printf("  %-10s  %4s  %4s  %7s  %s\n", "Level", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %4s  %4s  %7s  %s\n", "-----", "----", "----", "-------", "-----------")
	for _, l := range levels.List() {
		st := stats[l.Key]
		if st == nil {
			continue
		}
		fmt.Printf("  %-10s  %4d  %4d  %7.1f  %s\n",
			l.Name, st.Wins, st.BestMoves, st.AvgMoves, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
