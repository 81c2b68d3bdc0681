package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves   int           // Moves made this session
	Hints   int           // Hints requested this session
	Elapsed time.Duration // Play time, excluding pauses
	Won     bool          // Whether the puzzle is solved
	Paused  bool          // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
	// JustWon is set on the tick the puzzle was solved.
	JustWon bool
}

// Cue is a sound event raised by a game.
type Cue string

const (
	CueClick    Cue = "click"
	CueMove     Cue = "move"
	CueInvalid  Cue = "invalid"
	CueComplete Cue = "complete"
	CueWin      Cue = "win"
	CueHint     Cue = "hint"
	CueUndo     Cue = "undo"
	CueReset    Cue = "reset"
)
