package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// RunMenu runs a local session starting on the level menu.
func RunMenu(env Env, cfg core.RuntimeConfig) error {
	return run(NewSessionModel(env, cfg))
}

// RunLevel runs a local session that opens level immediately.
func RunLevel(env Env, cfg core.RuntimeConfig, level bscore.Level) error {
	return run(NewPlaySessionModel(env, cfg, level))
}

func run(model SessionModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running session: %w", err)
	}
	return nil
}
