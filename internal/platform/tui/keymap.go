package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ballsort/internal/core"
)

// GameKeyMap defines the key bindings for the play screen.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Pick    key.Binding
	Undo    key.Binding
	Hint    key.Binding
	Restart key.Binding
	Pause   key.Binding
	History key.Binding
	Sound   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Select, k.Pick, k.Undo, k.Hint, k.History, k.Restart, k.Sound, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select, k.Pick},
		{k.Undo, k.Hint, k.Restart, k.Pause},
		{k.History, k.Sound, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/→", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "k", "w"),
			key.WithHelp("space", "pick"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-9", "tube"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "backspace", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Hint: key.NewBinding(
			key.WithKeys("?", "i"),
			key.WithHelp("?", "hint"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		History: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "history"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Back, quit and sound keys are handled by the caller and are not mapped.
func (k GameKeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	switch {
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Select):
		frame.Set(core.ActionSelect)
	case key.Matches(msg, k.Pick):
		frame.Pick = pickIndex(msg.String())
	case key.Matches(msg, k.Undo):
		frame.Set(core.ActionUndo)
	case key.Matches(msg, k.Hint):
		frame.Set(core.ActionHint)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.History):
		frame.Set(core.ActionHistory)
	}
}

// pickIndex maps digit keys to tube indexes: 1-9 are tubes 0-8, 0 is tube 9.
func pickIndex(s string) int {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return core.NoPick
	}
	if s[0] == '0' {
		return 9
	}
	return int(s[0] - '1')
}

// MenuKeyMap defines the key bindings for the level menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Timer      key.Binding
	Hints      key.Binding
	Sound      key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Timer, k.Hints, k.Sound, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Scoreboard},
		{k.Timer, k.Hints, k.Sound, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timer"),
		),
		Hints: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hints"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
