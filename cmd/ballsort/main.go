// ballsort is a tube ball-sort puzzle for the terminal.
//
// Usage:
//
//	ballsort list              - List available levels
//	ballsort play [level]      - Play a level (default: last played)
//	ballsort menu              - Start the level picker menu
//	ballsort scores [level]    - Show best results
//	ballsort serve             - Start SSH server for remote play
//	ballsort forget            - Discard the saved game or scores
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.ballsort/ballsort.db)
//	--config <path>  - Use a specific settings file
//	--levels <path>  - Load an extra level pack
//	--log <path>     - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort/levels"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsFile string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballsort",
	Short: "Ball Sort - sort colored balls into tubes in your terminal",
	Long: `Ball Sort is a terminal puzzle: move the top ball of one tube onto a
tube whose top ball has the same color (or onto an empty tube) until every
tube holds a single color.

Available commands:
  list     - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker menu
  scores   - View best results
  serve    - Start SSH server for remote play
  forget   - Discard the saved game or scores

Examples:
  ballsort list
  ballsort play medium
  ballsort menu
  ballsort serve --ssh :2222
  ballsort scores hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ballsort/ballsort.db", "Path to scores and saved games database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsFile, "levels", "", "Path to an extra level pack YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(forgetCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSettings loads settings and registers any extra level pack.
func loadSettings() *config.Store {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	packPath := flagLevelsFile
	if packPath == "" {
		packPath = settings.Settings().LevelsFile
	}
	if packPath != "" {
		if _, err := levels.LoadPack(packPath); err != nil {
			var verr bscore.ValidationError
			if errors.As(err, &verr) {
				fatal("invalid level in %s: %v", packPath, err)
			}
			fatal("%v", err)
		}
	}

	return settings
}

// newLogger returns a logger writing to --log, or a silent one for TUI commands.
// The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	if flagLogPath == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return log.NewWithOptions(fallback, log.Options{ReportTimestamp: true, Prefix: "ballsort"}), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fatal("cannot open log file: %v", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ballsort",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openStore opens the database; the game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database, scores and saved games are disabled: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// resolveLevel returns the level for key, exiting on an unknown key.
func resolveLevel(key string) bscore.Level {
	level, err := levels.Get(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", key)
		fmt.Fprintln(os.Stderr, "Run 'ballsort list' to see available levels.")
		os.Exit(1)
	}
	return level
}
