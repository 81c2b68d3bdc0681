package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry represents a single completed game.
type ScoreEntry struct {
	ID        int64
	Level     string
	Moves     int
	Duration  time.Duration
	Hints     int
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      string
	Wins       int
	BestMoves  int
	AvgMoves   float64
	LastPlayed time.Time
}

// SaveScore records a won game for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(level string, moves int, duration time.Duration, hints int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (level, moves, duration_secs, hints) VALUES (?, ?, ?, ?)",
		level, moves, int64(duration/time.Second), hints,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best N results for the given level.
// Fewer moves rank higher; ties go to the faster game.
func (s *Store) TopScores(level string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, moves, duration_secs, hints, created_at
		 FROM scores
		 WHERE level = ?
		 ORDER BY moves ASC, duration_secs ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var secs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Moves, &secs, &e.Hints, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(secs) * time.Second
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the best result for the given level.
// Returns nil if the level has never been won.
func (s *Store) BestScore(level string) (*ScoreEntry, error) {
	var e ScoreEntry
	var secs int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, level, moves, duration_secs, hints, created_at
		 FROM scores
		 WHERE level = ?
		 ORDER BY moves ASC, duration_secs ASC, id ASC
		 LIMIT 1`,
		level,
	).Scan(&e.ID, &e.Level, &e.Moves, &secs, &e.Hints, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	e.Duration = time.Duration(secs) * time.Second
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ClearScores deletes all scores for the given level.
func (s *Store) ClearScores(level string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every level that has been won.
func (s *Store) Stats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MIN(moves), AVG(moves), MAX(created_at)
		 FROM scores
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.Wins, &ls.BestMoves, &ls.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
