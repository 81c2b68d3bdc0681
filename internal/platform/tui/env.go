package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballsort/internal/config"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// Env carries the services shared by every screen of a session.
type Env struct {
	// Store holds scores and saved games. Nil runs without persistence.
	Store *storage.Store
	// Settings holds player preferences. Nil uses the built-in defaults.
	Settings *config.Store
	// Scope keys the saved game; one per local player or SSH user.
	Scope  string
	Logger *log.Logger
	// Sounder plays cues. Nil is silent.
	Sounder Sounder
}

// withDefaults fills in missing services.
func (e Env) withDefaults() Env {
	if e.Settings == nil {
		e.Settings = config.NewStore(config.DefaultSettings(), "")
	}
	if e.Scope == "" {
		e.Scope = storage.LocalScope
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Sounder == nil {
		e.Sounder = mute{}
	}
	return e
}

// gateway returns the saved-game gateway for this session, or nil.
func (e Env) gateway() bscore.Gateway {
	if e.Store == nil {
		return nil
	}
	return e.Store.Gateway(e.Scope)
}

// saveSettings persists preferences; failures are logged and otherwise ignored.
func (e Env) saveSettings() {
	if err := e.Settings.Save(); err != nil {
		e.Logger.Warn("could not save settings", "path", e.Settings.Path(), "error", err)
	}
}
