package core

import "time"

// Snapshot captures a session for persistence. A snapshot is tagged with
// its level key; callers restore it only into the same level.
type Snapshot struct {
	Level       string       `json:"level"`
	Board       Board        `json:"board"`
	MoveCount   int          `json:"moveCount"`
	MoveHistory []MoveRecord `json:"moveHistory"`
	Won         bool         `json:"won"`
	SavedAt     time.Time    `json:"savedAt"`
}

// Gateway stores at most one snapshot under a single well-known key.
// Load returns nil with no error when nothing is stored.
type Gateway interface {
	Save(s Snapshot) error
	Load() (*Snapshot, error)
	Clear() error
}

// MemoryGateway keeps the snapshot in memory. Useful for tests and for
// sessions that should not outlive the process.
type MemoryGateway struct {
	snap *Snapshot
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Save replaces the stored snapshot.
func (g *MemoryGateway) Save(s Snapshot) error {
	s.Board = s.Board.Clone()
	s.MoveHistory = append([]MoveRecord(nil), s.MoveHistory...)
	g.snap = &s
	return nil
}

// Load returns a copy of the stored snapshot, or nil.
func (g *MemoryGateway) Load() (*Snapshot, error) {
	if g.snap == nil {
		return nil, nil
	}
	s := *g.snap
	s.Board = s.Board.Clone()
	s.MoveHistory = append([]MoveRecord(nil), s.MoveHistory...)
	return &s, nil
}

// Clear drops the stored snapshot.
func (g *MemoryGateway) Clear() error {
	g.snap = nil
	return nil
}
