package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/games/ballsort/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any loaded from a level pack.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	settings := loadSettings()
	all := levels.List()

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, l := range all {
		maxKeyLen = max(maxKeyLen, len(l.Key))
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %5s  %6s  %5s\n", maxKeyLen, "Key", "Name", "Tubes", "Colors", "Balls")
	fmt.Printf("  %-*s  %-10s  %5s  %6s  %5s\n", maxKeyLen, "---", "----", "-----", "------", "-----")

	// Print levels
	for _, l := range all {
		marker := " "
		if l.Key == settings.Level() {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %-10s  %5d  %6d  %5d\n",
			marker, maxKeyLen, l.Key, l.Name, l.TubeCount, len(l.Colors), l.BallsPerColor)
	}

	fmt.Println()
	fmt.Println("Run 'ballsort play <key>' to play a level. * marks the last played level.")
}
