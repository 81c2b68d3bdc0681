package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // H, Left arrow - move cursor left
	ActionRight              // L, Right arrow - move cursor right
	ActionSelect             // Space, Enter - pick the tube under the cursor
	ActionUndo               // U, Backspace - undo last move
	ActionHint               // ? - request a hint
	ActionRestart            // R - reshuffle the level
	ActionPause              // P - pause/unpause the timer
	ActionHistory            // M - show/hide the move list
	ActionToggleSound        // S - sound on/off
	ActionBack               // Escape - go back to menu
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionUndo:
		return "Undo"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionHistory:
		return "History"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NoPick marks an input frame without a direct tube pick.
const NoPick = -1

// InputFrame represents the input for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pick is a tube chosen directly by number key, or NoPick.
	Pick int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Pick:    NoPick,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HasPick reports whether a tube was picked directly.
func (f InputFrame) HasPick() bool {
	return f.Pick >= 0
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.HasPick()
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pick = NoPick
}
