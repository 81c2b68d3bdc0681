package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/ballsort.yaml"

// Load loads the settings and returns a store bound to the file they came
// from. Settings loaded from the embedded default are saved to the user
// config path.
// Search order: customPath -> ~/.ballsort/config.yaml -> ./configs/ballsort.yaml -> embedded default
func Load(customPath string) (*Store, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultSettings()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return NewStore(cfg, customPath), nil
	}

	// Try user config directory
	userPath := UserConfigPath()
	if userPath != "" {
		if cfg, ok := readSettings(userPath); ok {
			return NewStore(cfg, userPath), nil
		}
	}

	// Try local configs directory
	if cfg, ok := readSettings(localConfigPath); ok {
		return NewStore(cfg, localConfigPath), nil
	}

	return NewStore(embeddedSettings(), userPath), nil
}

// UserConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ballsort", "config.yaml")
}

// UserDataPath returns a file path inside ~/.ballsort, or a path in the
// working directory if home is unavailable.
func UserDataPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filename
	}
	return filepath.Join(home, ".ballsort", filename)
}

func readSettings(path string) (Settings, bool) {
	cfg := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

func embeddedSettings() Settings {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings() // Fallback to hardcoded if embed fails
	}
	return cfg
}
