package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// screen identifies the active part of a session.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for local and SSH play.
type SessionModel struct {
	env        Env
	config     core.RuntimeConfig
	active     screen
	gen        uint64
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that starts on the level menu.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	env = env.withDefaults()
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env, cfg),
	}
}

// NewPlaySessionModel creates a session that opens level straight away.
// Leaving the game returns to the menu.
func NewPlaySessionModel(env Env, cfg core.RuntimeConfig, level bscore.Level) SessionModel {
	m := NewSessionModel(env, cfg)
	m.startGame(level)
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.active == screenGame && m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.env.Store, m.env.Settings.Level(), m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.active = screenScores
		return m, sb.Init()

	case m.menu.Selected() != nil:
		m.config = m.menu.Config()
		m.startGame(*m.menu.Selected())
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// startGame opens a level with a fresh tick generation.
func (m *SessionModel) startGame(level bscore.Level) {
	m.gen++
	gm := NewGameModel(level, m.env, m.config, m.gen)
	m.gameModel = &gm
	m.active = screenGame
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m, m.showMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m, m.showMenu()
	}

	return m, cmd
}

// showMenu rebuilds the menu so scores and saved games are current.
func (m *SessionModel) showMenu() tea.Cmd {
	m.menu = NewMenuModel(m.env, m.config)
	m.active = screenMenu
	return m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScores:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}
	return m.menu.View()
}

// InGame reports whether a level is being played.
func (m SessionModel) InGame() bool {
	return m.active == screenGame
}

// InScoreboard reports whether the scoreboard is open.
func (m SessionModel) InScoreboard() bool {
	return m.active == screenScores
}

// GameModel returns the running game, or nil outside play.
func (m SessionModel) GameModel() *GameModel {
	return m.gameModel
}

// IsQuitting returns true if the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}
