package levels

import (
	"fmt"
	"os"

	"github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Key           string   `yaml:"key"`
	Name          string   `yaml:"name"`
	Tubes         int      `yaml:"tubes"`
	Colors        []string `yaml:"colors"`
	BallsPerColor int      `yaml:"balls_per_color"`
}

// ParsePack parses a YAML level pack. Colors may be given by name or glyph.
// The levels are not validated or registered.
func ParsePack(data []byte) ([]core.Level, error) {
	var pack YAMLPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	result := make([]core.Level, 0, len(pack.Levels))
	for _, yl := range pack.Levels {
		l := core.Level{
			Key:           yl.Key,
			Name:          yl.Name,
			TubeCount:     yl.Tubes,
			BallsPerColor: yl.BallsPerColor,
		}
		if l.Name == "" {
			l.Name = l.Key
		}
		for _, name := range yl.Colors {
			c, ok := core.ParseColor(name)
			if !ok {
				return nil, core.ValidationError{
					Code:    "UNKNOWN_COLOR",
					Message: fmt.Sprintf("level %s: unknown color %q", yl.Key, name),
				}
			}
			l.Colors = append(l.Colors, c)
		}
		result = append(result, l)
	}

	return result, nil
}

// LoadPack reads a level pack file and registers every level in it.
// Stops at the first invalid level and returns the keys registered so far.
func LoadPack(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := ParsePack(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	var keys []string
	for _, l := range parsed {
		if err := Register(l); err != nil {
			return keys, fmt.Errorf("level pack %s: %w", path, err)
		}
		keys = append(keys, l.Key)
	}
	return keys, nil
}
