// Package config provides YAML-based settings loading and persistence
// for Ball Sort.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings contains the user-facing options.
type Settings struct {
	Level      string `yaml:"level"`
	Sound      bool   `yaml:"sound"`
	ShowTimer  bool   `yaml:"show_timer"`
	ShowHints  bool   `yaml:"show_hints"`
	LevelsFile string `yaml:"levels_file,omitempty"`
}

// Store owns the settings for a session and writes them back on Save.
// Safe for concurrent use; SSH sessions share one store.
type Store struct {
	mu       sync.RWMutex
	settings Settings
	path     string
}

// NewStore creates a store. An empty path makes Save a no-op.
func NewStore(s Settings, path string) *Store {
	return &Store{settings: s, path: path}
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Path returns where Save writes.
func (s *Store) Path() string {
	return s.path
}

// Level returns the key of the last level played.
func (s *Store) Level() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Level
}

// SetLevel remembers the level to preselect in the menu.
func (s *Store) SetLevel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Level = key
}

// SoundEnabled reports whether cues ring the bell.
func (s *Store) SoundEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Sound
}

// SetSoundEnabled turns sound cues on or off.
func (s *Store) SetSoundEnabled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Sound = on
}

// ShowTimer reports whether the play timer is displayed.
func (s *Store) ShowTimer() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ShowTimer
}

// SetShowTimer shows or hides the play timer.
func (s *Store) SetShowTimer(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowTimer = on
}

// ShowHints reports whether hints may be requested.
func (s *Store) ShowHints() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ShowHints
}

// SetShowHints enables or disables hints.
func (s *Store) SetShowHints(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowHints = on
}

// Save writes the settings as YAML to the store path, creating parent
// directories as needed.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	data, err := yaml.Marshal(s.Settings())
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", s.path, err)
	}
	return nil
}
