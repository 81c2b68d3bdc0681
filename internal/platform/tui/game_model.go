package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// helpHeight is the number of rows below the board reserved for key help.
const helpHeight = 1

var gameHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one level inside Bubble Tea and records wins.
type GameModel struct {
	game       *ballsort.Game
	screen     *core.Screen
	env        Env
	config     core.RuntimeConfig
	gen        uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	best       *storage.ScoreEntry
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel opens the level, resuming the saved game for env.Scope if there is one.
// gen tags the model's ticks so a replaced game stops receiving them.
func NewGameModel(level bscore.Level, env Env, cfg core.RuntimeConfig, gen uint64) GameModel {
	env = env.withDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := []ballsort.Option{
		ballsort.WithLogger(env.Logger),
		ballsort.WithDisplay(env.Settings),
	}
	if gw := env.gateway(); gw != nil {
		opts = append(opts, ballsort.WithGateway(gw))
	}
	game := ballsort.New(level, opts...)

	boardCfg := cfg
	boardCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	game.Reset(boardCfg)

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardCfg.ScreenH),
		env:        env,
		config:     cfg,
		gen:        gen,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
	m.loadBest()

	env.Logger.Info("level opened", "level", level.Key, "resumed", game.Resumed())
	return m
}

// loadBest reads the best score for the level being played.
func (m *GameModel) loadBest() {
	if m.env.Store == nil {
		return
	}
	best, err := m.env.Store.BestScore(m.game.Level().Key)
	if err != nil {
		m.env.Logger.Warn("could not load best score", "level", m.game.Level().Key, "error", err)
		return
	}
	m.best = best
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration(), m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		h := max(msg.Height-helpHeight, 0)
		m.screen.Resize(msg.Width, h)
		m.game.Resize(msg.Width, h)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Game actions are buffered until the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Sound):
		settings := m.env.Settings
		settings.SetSoundEnabled(!settings.SoundEnabled())
		m.env.saveSettings()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTick runs one simulation step and records a win once.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		if cue == core.CueReset {
			m.scoreSaved = false
		}
		m.env.Sounder.Play(cue)
	}

	if result.JustWon && !m.scoreSaved {
		m.recordWin()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickDuration(), m.gen)
}

// recordWin stores the finished game; storage failures are logged.
func (m *GameModel) recordWin() {
	m.scoreSaved = true
	level := m.game.Level().Key
	st := m.gameState

	m.env.Logger.Info("level solved",
		"level", level,
		"moves", st.Moves,
		"elapsed", ballsort.FormatElapsed(st.Elapsed),
		"hints", st.Hints,
	)

	if m.env.Store == nil {
		return
	}
	if _, err := m.env.Store.SaveScore(level, st.Moves, st.Elapsed, st.Hints); err != nil {
		m.env.Logger.Error("could not save score", "level", level, "error", err)
		return
	}
	m.loadBest()
}

// View renders the board with the key help underneath.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := formatBest(m.best) + "  Sound: " + onOff(m.env.Settings.SoundEnabled()) + "  "
	line := status + m.help.ShortHelpView(m.keys.ShortHelp())
	if lipgloss.Width(line) > m.config.ScreenW && m.config.ScreenW > 0 {
		line = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return RenderScreen(m.screen) + "\n" + gameHelpStyle.Render(line)
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Game returns the running game.
func (m GameModel) Game() *ballsort.Game {
	return m.game
}

// ScoreSaved reports whether the current win has been recorded.
func (m GameModel) ScoreSaved() bool {
	return m.scoreSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
