package config

import (
	_ "embed"
)

//go:embed defaults/ballsort.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded settings.
func DefaultSettings() Settings {
	return Settings{
		Level:     "easy",
		Sound:     true,
		ShowTimer: true,
		ShowHints: true,
	}
}
