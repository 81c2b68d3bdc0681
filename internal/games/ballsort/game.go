// Package ballsort adapts the puzzle engine to the terminal platform:
// cursor navigation, per-tick input frames, the play timer, sound cues and
// drawing into a screen buffer.
package ballsort

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// ID is the game identifier used for storage and logs.
const ID = "ballsort"

// DisplaySettings controls optional parts of the play screen.
// *config.Store satisfies it.
type DisplaySettings interface {
	ShowTimer() bool
	ShowHints() bool
}

type defaultDisplay struct{}

func (defaultDisplay) ShowTimer() bool { return true }
func (defaultDisplay) ShowHints() bool { return true }

// Game is one player's Ball Sort session.
type Game struct {
	level   bscore.Level
	engine  *bscore.Engine
	gateway bscore.Gateway
	logger  *log.Logger
	display DisplaySettings

	tickRate    int
	playTick    uint64 // ticks counted toward the timer
	cursor      int
	paused      bool
	showHistory bool
	resumed     bool
	message     string
	screenW     int
	screenH     int
	tooSmall    bool

	celebration    []fallingBall
	animating      bool
	animationTicks int
}

// Option configures a Game.
type Option func(*Game)

// WithGateway sets where the session is saved between runs.
func WithGateway(g bscore.Gateway) Option {
	return func(gm *Game) {
		gm.gateway = g
	}
}

// WithLogger sets the logger passed to the engine.
func WithLogger(l *log.Logger) Option {
	return func(gm *Game) {
		if l != nil {
			gm.logger = l
		}
	}
}

// WithDisplay sets the timer and hint visibility source.
func WithDisplay(d DisplaySettings) Option {
	return func(gm *Game) {
		if d != nil {
			gm.display = d
		}
	}
}

// New creates a game for the level. Call Reset before the first Step.
func New(level bscore.Level, opts ...Option) *Game {
	g := &Game{
		level:   level,
		logger:  log.New(io.Discard),
		display: defaultDisplay{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ball Sort"
}

// Level returns the level being played.
func (g *Game) Level() bscore.Level {
	return g.level
}

// Reset opens the level: a saved session is resumed, otherwise a new board
// is shuffled from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	engineOpts := []bscore.Option{
		bscore.WithSeed(cfg.Seed),
		bscore.WithLogger(g.logger),
	}
	if g.gateway != nil {
		engineOpts = append(engineOpts, bscore.WithGateway(g.gateway))
	}

	g.engine = bscore.NewEngine(g.level, engineOpts...)
	g.resumed = g.engine.MoveCount() > 0
	g.tickRate = cfg.TickRate
	g.playTick = 0
	g.cursor = 0
	g.paused = false
	g.showHistory = false
	g.stopCelebration()
	g.message = ""
	if g.resumed {
		g.message = fmt.Sprintf("Resumed saved game (%d moves)", g.engine.MoveCount())
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := boardWidth(g.level.TubeCount) + 2
	minH := g.level.Capacity() + hudHeight + footerHeight + 6
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}

	if g.tooSmall {
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionPause) && !g.engine.Won() {
		g.paused = !g.paused
	}
	if g.paused {
		res.State = g.State()
		return res
	}

	if in.Has(core.ActionHistory) {
		g.showHistory = !g.showHistory
		g.engine.Deselect()
	}

	if !g.engine.Won() {
		g.playTick++
	}
	g.updateAnimation()

	if in.Has(core.ActionRestart) {
		g.engine.Reset(g.level)
		g.playTick = 0
		g.cursor = 0
		g.showHistory = false
		g.stopCelebration()
		g.resumed = false
		g.message = "New board"
		res.Cues = append(res.Cues, core.CueReset)
		res.State = g.State()
		return res
	}

	if g.engine.Won() || g.showHistory {
		res.State = g.State()
		return res
	}

	n := g.level.TubeCount
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Wrap(g.cursor-1, n)
	case in.Has(core.ActionRight):
		g.cursor = core.Wrap(g.cursor+1, n)
	}

	if in.HasPick() && in.Pick < n {
		g.cursor = in.Pick
		res.Cues = append(res.Cues, g.pick(&res)...)
	} else if in.Has(core.ActionSelect) {
		res.Cues = append(res.Cues, g.pick(&res)...)
	}
	if res.JustWon {
		g.startCelebration()
	}

	if in.Has(core.ActionUndo) {
		if rec, ok := g.engine.Undo(); ok {
			g.cursor = rec.From
			g.message = fmt.Sprintf("Undid move %d", rec.MoveNumber)
			res.Cues = append(res.Cues, core.CueUndo)
		} else {
			g.message = "Nothing to undo"
		}
	}

	if in.Has(core.ActionHint) && g.display.ShowHints() {
		if m, ok := g.engine.Hint(); ok {
			g.message = "Hint: " + m.String()
			res.Cues = append(res.Cues, core.CueHint)
		} else {
			g.message = "No moves available. Undo or restart."
		}
	}

	res.State = g.State()
	return res
}

// pick applies SelectOrMove at the cursor and returns the cues it raised.
func (g *Game) pick(res *core.StepResult) []core.Cue {
	r := g.engine.SelectOrMove(g.cursor)

	switch r.Outcome {
	case bscore.OutcomeSelected, bscore.OutcomeDeselected:
		g.message = ""
		return []core.Cue{core.CueClick}
	case bscore.OutcomeRejected:
		g.message = "Can't move there"
		return []core.Cue{core.CueInvalid}
	case bscore.OutcomeMoved:
		g.message = ""
		cues := []core.Cue{core.CueMove}
		if r.Completed {
			cues = append(cues, core.CueComplete)
		}
		if !bscore.HasMoves(g.engine.Board(), g.level.Capacity()) {
			g.message = "No moves left. Undo or restart."
		}
		return cues
	case bscore.OutcomeWon:
		g.message = ""
		res.JustWon = true
		return []core.Cue{core.CueMove, core.CueWin}
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:   g.engine.MoveCount(),
		Hints:   g.engine.HintsUsed(),
		Elapsed: g.Elapsed(),
		Won:     g.engine.Won(),
		Paused:  g.paused || g.tooSmall,
	}
}

// Elapsed returns the play time, excluding pauses.
func (g *Game) Elapsed() time.Duration {
	rate := g.tickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Duration(g.playTick) * time.Second / time.Duration(rate)
}

// View returns the engine view for presentation.
func (g *Game) View() bscore.View {
	return g.engine.View()
}

// Cursor returns the tube under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Resumed reports whether the session was restored from a save.
func (g *Game) Resumed() bool {
	return g.resumed
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// Rating describes a winning move count.
func Rating(moves int) string {
	switch {
	case moves <= 50:
		return "Excellent!"
	case moves <= 100:
		return "Good job!"
	default:
		return "Finished!"
	}
}

// FormatElapsed formats a duration as MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
