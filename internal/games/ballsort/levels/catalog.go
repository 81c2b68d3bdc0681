// Package levels provides the level catalog for Ball Sort.
// Built-in presets register themselves in init(); extra levels can be
// loaded from YAML level packs at startup.
package levels

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// DefaultKey is the level used when none is configured.
const DefaultKey = "easy"

var (
	catalog = make(map[string]core.Level)
	order   []string
	mu      sync.RWMutex
)

// Register validates a level and adds it to the catalog.
// Returns an error if the level is invalid or its key is taken.
func Register(l core.Level) error {
	if err := l.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := catalog[l.Key]; exists {
		return core.ValidationError{
			Code:    "DUPLICATE_KEY",
			Message: fmt.Sprintf("level %q already registered", l.Key),
		}
	}

	l.Colors = append([]core.Color(nil), l.Colors...)
	catalog[l.Key] = l
	order = append(order, l.Key)
	return nil
}

// MustRegister is like Register but panics on error.
// Used for built-in levels where a bad entry is a programming error.
func MustRegister(l core.Level) {
	if err := Register(l); err != nil {
		panic(fmt.Sprintf("levels: %v", err))
	}
}

// Get returns the level registered under key.
func Get(key string) (core.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := catalog[key]
	if !ok {
		return core.Level{}, fmt.Errorf("levels: unknown level %q", key)
	}
	l.Colors = append([]core.Color(nil), l.Colors...)
	return l, nil
}

// Exists checks if a level with the given key is registered.
func Exists(key string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := catalog[key]
	return ok
}

// Keys returns all level keys in registration order.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()

	return append([]string(nil), order...)
}

// List returns all levels in registration order.
func List() []core.Level {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]core.Level, 0, len(order))
	for _, key := range order {
		l := catalog[key]
		l.Colors = append([]core.Color(nil), l.Colors...)
		result = append(result, l)
	}
	return result
}

// Next returns the key registered after key, wrapping around.
// Used by the menu to cycle levels.
func Next(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if len(order) == 0 {
		return key
	}
	for i, k := range order {
		if k == key {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
