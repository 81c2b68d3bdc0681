package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("easy", 30, time.Minute, 0)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Expected 1 score after reopen, got %d", len(scores))
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("easy", 40, 90*time.Second, 1)
	store.SaveScore("easy", 25, 120*time.Second, 0)
	store.SaveScore("easy", 25, 60*time.Second, 2)
	store.SaveScore("hard", 10, time.Second, 0)

	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Fewest moves first, then fastest.
	if scores[0].Moves != 25 || scores[0].Duration != 60*time.Second || scores[0].Hints != 2 {
		t.Errorf("unexpected first entry %+v", scores[0])
	}
	if scores[1].Moves != 25 || scores[1].Duration != 120*time.Second {
		t.Errorf("unexpected second entry %+v", scores[1])
	}
	if scores[2].Moves != 40 {
		t.Errorf("unexpected third entry %+v", scores[2])
	}
	if scores[0].Level != "easy" {
		t.Errorf("Level = %s, expected easy", scores[0].Level)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("medium", (i+1)*10, 0, 0)
	}

	scores, err := store.TopScores("medium", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Moves != 10 || scores[1].Moves != 20 || scores[2].Moves != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("easy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best score for an unplayed level, got %+v", best)
	}

	store.SaveScore("easy", 50, 0, 0)
	store.SaveScore("easy", 20, 0, 0)
	store.SaveScore("easy", 35, 0, 0)

	best, err = store.BestScore("easy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best == nil || best.Moves != 20 {
		t.Errorf("BestScore() = %+v, expected 20 moves", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("easy", 10, 0, 0)
	store.SaveScore("easy", 20, 0, 0)
	store.SaveScore("hard", 30, 0, 0)

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easy))
	}

	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("easy", 10, 0, 0)
	store.SaveScore("easy", 30, 0, 0)
	store.SaveScore("expert", 200, 0, 0)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}

	easy := stats["easy"]
	if easy == nil || easy.Wins != 2 || easy.BestMoves != 10 || easy.AvgMoves != 20 {
		t.Errorf("unexpected easy stats %+v", easy)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := openTestStore(t)

	snap := core.Snapshot{
		Level:     "easy",
		Board:     core.Board{{core.Red, core.Blue}, {core.Blue}, {}},
		MoveCount: 1,
		MoveHistory: []core.MoveRecord{
			{From: 1, To: 0, Color: core.Blue, MoveNumber: 1},
		},
		SavedAt: time.Now(),
	}

	if err := store.SaveSnapshot(LocalScope, snap); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	loaded, err := store.LoadSnapshot(LocalScope)
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadSnapshot() returned nil")
	}
	if loaded.Level != "easy" || loaded.MoveCount != 1 || !loaded.Board.Equal(snap.Board) {
		t.Errorf("unexpected snapshot %+v", loaded)
	}
	if len(loaded.MoveHistory) != 1 || loaded.MoveHistory[0] != snap.MoveHistory[0] {
		t.Errorf("history = %+v", loaded.MoveHistory)
	}
}

func TestSnapshotReplaceAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveSnapshot(LocalScope, core.Snapshot{Level: "easy", Board: core.Board{{}}})
	store.SaveSnapshot(LocalScope, core.Snapshot{Level: "hard", Board: core.Board{{}}})
	store.SaveSnapshot(SSHScope("alice"), core.Snapshot{Level: "medium", Board: core.Board{{}}})

	loaded, err := store.LoadSnapshot(LocalScope)
	if err != nil || loaded == nil || loaded.Level != "hard" {
		t.Fatalf("LoadSnapshot() = %+v, %v; expected the replacing snapshot", loaded, err)
	}

	if err := store.ClearSnapshot(LocalScope); err != nil {
		t.Fatalf("ClearSnapshot() failed: %v", err)
	}
	loaded, err = store.LoadSnapshot(LocalScope)
	if err != nil || loaded != nil {
		t.Errorf("LoadSnapshot() after clear = %+v, %v; expected nil, nil", loaded, err)
	}

	// Other scopes are untouched.
	other, _ := store.LoadSnapshot(SSHScope("alice"))
	if other == nil || other.Level != "medium" {
		t.Errorf("scope alice = %+v, expected medium", other)
	}
}

func TestSnapshotCorruptData(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec(
		"INSERT INTO snapshots (scope, level, data) VALUES (?, ?, ?)",
		LocalScope, "easy", "{not json",
	); err != nil {
		t.Fatal(err)
	}

	if _, err := store.LoadSnapshot(LocalScope); err == nil {
		t.Error("LoadSnapshot() of corrupt data should fail")
	}
}

func TestGatewayDrivesEngine(t *testing.T) {
	store := openTestStore(t)
	level := core.Level{Key: "duo", TubeCount: 3, Colors: []core.Color{core.Red, core.Blue}, BallsPerColor: 2}

	e := core.NewEngine(level, core.WithSeed(4), core.WithGateway(store.Gateway("bob")))
	if err := e.Restore(level, core.Snapshot{
		Level: level.Key,
		Board: core.Board{{core.Red, core.Blue}, {core.Blue, core.Red}, {}},
	}); err != nil {
		t.Fatal(err)
	}
	e.SelectOrMove(0)
	e.SelectOrMove(2)

	// A second engine on the same scope resumes the session.
	resumed := core.NewEngine(level, core.WithSeed(8), core.WithGateway(store.Gateway("bob")))
	if !resumed.Board().Equal(e.Board()) || resumed.MoveCount() != 1 {
		t.Errorf("resumed board:\n%s\nexpected\n%s", resumed.Board(), e.Board())
	}

	// Another scope starts fresh.
	fresh := core.NewEngine(level, core.WithSeed(8), core.WithGateway(store.Gateway("carol")))
	if fresh.MoveCount() != 0 {
		t.Errorf("other scope MoveCount() = %d, expected 0", fresh.MoveCount())
	}
}

func TestSSHScopeKeepsLocalApart(t *testing.T) {
	store := openTestStore(t)
	store.SaveSnapshot(LocalScope, core.Snapshot{Level: "easy", Board: core.Board{{}}})

	if SSHScope(LocalScope) == LocalScope {
		t.Fatalf("SSHScope(%q) collides with the local scope", LocalScope)
	}
	loaded, err := store.LoadSnapshot(SSHScope(LocalScope))
	if err != nil || loaded != nil {
		t.Errorf("SSH user %q sees %+v, %v; expected no saved game", LocalScope, loaded, err)
	}
}
