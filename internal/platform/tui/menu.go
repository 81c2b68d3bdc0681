package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort/levels"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuSavedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels         []bscore.Level
	best           map[string]*storage.ScoreEntry
	savedLevel     string // level with a game in progress, if any
	cursor         int
	width          int
	height         int
	env            Env
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *bscore.Level // Set when user picks a level
	openScoreboard bool          // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with the cursor on the last played level.
func NewMenuModel(env Env, cfg core.RuntimeConfig) MenuModel {
	env = env.withDefaults()
	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		levels: levels.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		env:    env,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
	for i, l := range m.levels {
		if l.Key == env.Settings.Level() {
			m.cursor = i
		}
	}
	m.refresh()
	return m
}

// refresh reloads best scores and the saved game marker.
func (m *MenuModel) refresh() {
	m.best = make(map[string]*storage.ScoreEntry, len(m.levels))
	m.savedLevel = ""
	if m.env.Store == nil {
		return
	}

	for _, l := range m.levels {
		best, err := m.env.Store.BestScore(l.Key)
		if err != nil {
			m.env.Logger.Warn("could not load best score", "level", l.Key, "error", err)
			continue
		}
		m.best[l.Key] = best
	}

	snap, err := m.env.gateway().Load()
	if err != nil {
		m.env.Logger.Warn("could not load saved game", "scope", m.env.Scope, "error", err)
		return
	}
	if snap != nil {
		m.savedLevel = snap.Level
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	settings := m.env.Settings

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
			settings.SetLevel(selected.Key)
			m.env.saveSettings()
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true

	case key.Matches(msg, m.keys.Timer):
		settings.SetShowTimer(!settings.ShowTimer())
		m.env.saveSettings()

	case key.Matches(msg, m.keys.Hints):
		settings.SetShowHints(!settings.ShowHints())
		m.env.saveSettings()

	case key.Matches(msg, m.keys.Sound):
		settings.SetSoundEnabled(!settings.SoundEnabled())
		m.env.saveSettings()
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  B A L L   S O R T  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a level", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-8s %2d tubes  %2d colors", cursor, l.Name, l.TubeCount, len(l.Colors))
		if best := m.best[l.Key]; best != nil {
			line += fmt.Sprintf("  best %d moves", best.Moves)
		}
		if i == m.cursor {
			line = menuSelectedStyle.Render(line)
		}
		if l.Key == m.savedLevel {
			line += menuSavedStyle.Render("  [resume]")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	settings := m.env.Settings
	b.WriteString("\n")
	toggles := fmt.Sprintf("Timer: %s   Hints: %s   Sound: %s",
		onOff(settings.ShowTimer()), onOff(settings.ShowHints()), onOff(settings.SoundEnabled()))
	b.WriteString(centerText(menuDimStyle.Render(toggles), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or nil if none selected.
func (m MenuModel) Selected() *bscore.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Best returns the best recorded score for a level, or nil.
func (m MenuModel) Best(levelKey string) *storage.ScoreEntry {
	return m.best[levelKey]
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// formatBest describes a best score for the play screen.
func formatBest(best *storage.ScoreEntry) string {
	if best == nil {
		return "Best: -"
	}
	return fmt.Sprintf("Best: %d moves in %s", best.Moves, ballsort.FormatElapsed(best.Duration))
}
