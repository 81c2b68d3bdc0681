package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// LocalScope is the snapshot key for terminal play on this machine.
const LocalScope = "local"

// SSHScope returns the snapshot key for an SSH user. The prefix keeps a
// remote user named "local" away from the terminal player's game.
func SSHScope(user string) string {
	return "ssh:" + user
}

// SaveSnapshot stores the session under scope, replacing any previous one.
func (s *Store) SaveSnapshot(scope string, snap core.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO snapshots (scope, level, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(scope) DO UPDATE SET
		     level = excluded.level,
		     data = excluded.data,
		     updated_at = excluded.updated_at`,
		scope, snap.Level, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the session stored under scope.
// Returns nil if nothing is stored.
func (s *Store) LoadSnapshot(scope string) (*core.Snapshot, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE scope = ?", scope).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	var snap core.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("storage: corrupt snapshot for %s: %w", scope, err)
	}
	return &snap, nil
}

// ClearSnapshot deletes the session stored under scope.
func (s *Store) ClearSnapshot(scope string) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE scope = ?", scope)
	if err != nil {
		return fmt.Errorf("storage: cannot clear snapshot: %w", err)
	}
	return nil
}

// Gateway returns a core.Gateway that persists under scope.
func (s *Store) Gateway(scope string) core.Gateway {
	return scopedGateway{store: s, scope: scope}
}

type scopedGateway struct {
	store *Store
	scope string
}

func (g scopedGateway) Save(snap core.Snapshot) error {
	return g.store.SaveSnapshot(g.scope, snap)
}

func (g scopedGateway) Load() (*core.Snapshot, error) {
	return g.store.LoadSnapshot(g.scope)
}

func (g scopedGateway) Clear() error {
	return g.store.ClearSnapshot(g.scope)
}

// Ensure scopedGateway implements core.Gateway
var _ core.Gateway = scopedGateway{}
