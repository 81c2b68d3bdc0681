package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort/levels"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var duo = bscore.Level{
	Key:           "tui-duo",
	Name:          "Duo",
	TubeCount:     3,
	Colors:        []bscore.Color{bscore.Red, bscore.Blue},
	BallsPerColor: 2,
}

// newTestEnv opens a temporary store with a nearly solved duo game saved.
func newTestEnv(t *testing.T) Env {
	t.Helper()
	if !levels.Exists(duo.Key) {
		levels.MustRegister(duo)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	err = store.SaveSnapshot(storage.LocalScope, bscore.Snapshot{
		Level:       duo.Key,
		Board:       bscore.Board{{bscore.Red}, {bscore.Blue, bscore.Red}, {bscore.Blue}},
		MoveCount:   1,
		MoveHistory: []bscore.MoveRecord{{From: 0, To: 2, Color: bscore.Blue, MoveNumber: 1}},
	})
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	settings := config.DefaultSettings()
	settings.Level = duo.Key
	return Env{
		Store:    store,
		Settings: config.NewStore(settings, ""),
	}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func update(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

// pressAndTick sends a key and lets the game consume it.
func pressAndTick(t *testing.T, m SessionModel, msg tea.KeyMsg) SessionModel {
	t.Helper()
	m = update(t, m, msg)
	if gm := m.GameModel(); gm != nil {
		m = update(t, m, TickMsg{gen: gm.gen})
	}
	return m
}

func TestSessionPlaysAndRecordsWin(t *testing.T) {
	env := newTestEnv(t)
	m := NewSessionModel(env, testConfig())

	if !strings.Contains(m.View(), "[resume]") {
		t.Errorf("menu should mark the saved game:\n%s", m.View())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should open the level under the cursor")
	}
	if got := m.GameModel().State().Moves; got != 1 {
		t.Fatalf("resumed Moves = %d, expected 1", got)
	}

	for _, r := range "2132" {
		m = pressAndTick(t, m, runeKey(r))
	}

	gm := m.GameModel()
	if !gm.State().Won {
		t.Fatalf("expected solved board, state %+v", gm.State())
	}
	if !gm.ScoreSaved() {
		t.Error("win should be recorded")
	}

	scores, err := env.Store.TopScores(duo.Key, 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Moves != 3 {
		t.Errorf("scores = %+v, expected one win in 3 moves", scores)
	}

	snap, err := env.Store.LoadSnapshot(storage.LocalScope)
	if err != nil || snap != nil {
		t.Errorf("saved game should be cleared after a win: %+v, %v", snap, err)
	}

	// More ticks must not record the same win twice.
	m = update(t, m, TickMsg{gen: gm.gen})
	if scores, _ := env.Store.TopScores(duo.Key, 10); len(scores) != 1 {
		t.Errorf("win recorded %d times", len(scores))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Fatal("esc should return to the menu")
	}
	if !strings.Contains(m.View(), "best 3 moves") {
		t.Errorf("menu should show the new best:\n%s", m.View())
	}
}

func TestSessionSavesProgressOnMove(t *testing.T) {
	env := newTestEnv(t)
	m := NewPlaySessionModel(env, testConfig(), duo)

	m = pressAndTick(t, m, runeKey('2'))
	m = pressAndTick(t, m, runeKey('1'))
	if got := m.GameModel().State().Moves; got != 2 {
		t.Fatalf("Moves = %d, expected 2", got)
	}

	snap, err := env.Store.LoadSnapshot(storage.LocalScope)
	if err != nil || snap == nil {
		t.Fatalf("LoadSnapshot = %v, %v", snap, err)
	}
	if snap.MoveCount != 2 {
		t.Errorf("saved MoveCount = %d, expected 2", snap.MoveCount)
	}
}

func TestSessionStaleTicksIgnored(t *testing.T) {
	env := newTestEnv(t)
	m := NewPlaySessionModel(env, testConfig(), duo)
	stale := m.GameModel().gen

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.GameModel().gen == stale {
		t.Fatal("reopened game should get a new tick generation")
	}

	m = update(t, m, runeKey('2'))
	m = update(t, m, TickMsg{gen: stale})
	if m.GameModel().Game().View().Selected != -1 {
		t.Error("stale tick should not advance the game")
	}
}

func TestSessionScoreboard(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.Store.SaveScore(duo.Key, 7, 0, 1); err != nil {
		t.Fatal(err)
	}

	m := NewSessionModel(env, testConfig())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.InScoreboard() {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Duo") {
		t.Errorf("scoreboard should open on the current level:\n%s", m.View())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InScoreboard() || m.InGame() {
		t.Error("esc should return to the menu")
	}

	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should end the session")
	}
}

func TestMenuToggles(t *testing.T) {
	env := newTestEnv(t)
	m := NewSessionModel(env, testConfig())

	m = update(t, m, runeKey('t'))
	m = update(t, m, runeKey('h'))
	m = update(t, m, runeKey('s'))

	s := env.Settings
	if s.ShowTimer() || s.ShowHints() || s.SoundEnabled() {
		t.Errorf("toggles not applied: timer %v hints %v sound %v", s.ShowTimer(), s.ShowHints(), s.SoundEnabled())
	}
	if !strings.Contains(m.View(), "Timer: off") {
		t.Errorf("menu should show toggle state:\n%s", m.View())
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Moves: 12, Duration: 75 * time.Second, Hints: 2},
		{Moves: 15},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"#1", "12", "01:15", "2"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("row 0 column %d = %q, expected %q", i, rows[0][i], w)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}
