package core

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the state of the session state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // no tube selected
	PhaseSelected              // a source tube is selected
	PhaseWon                   // terminal; moves and undo are ignored
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelected:
		return "selected"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome describes what a SelectOrMove call did.
type Outcome int

const (
	OutcomeNone       Outcome = iota // ignored input
	OutcomeSelected                  // source tube selected
	OutcomeDeselected                // same tube picked again
	OutcomeMoved                     // ball moved, game continues
	OutcomeRejected                  // illegal target, selection cleared
	OutcomeWon                       // ball moved and the board is sorted
)

// Result is returned by SelectOrMove.
type Result struct {
	Outcome Outcome
	// Record is set for OutcomeMoved and OutcomeWon.
	Record MoveRecord
	// Completed is true when the move filled the target tube with one color.
	Completed bool
}

// Moved reports whether a ball changed tubes.
func (r Result) Moved() bool {
	return r.Outcome == OutcomeMoved || r.Outcome == OutcomeWon
}

// View is a read-only copy of the session for presentation.
type View struct {
	Level     Level
	Board     Board
	Selected  int // -1 when no tube is selected
	MoveCount int
	Won       bool
	Hint      *Move
	HintsUsed int
	Phase     Phase
}

// Engine owns a play session: the board, move history, selection and
// win state. All mutation goes through its methods. An Engine is not
// safe for concurrent use; each player session owns its own.
type Engine struct {
	level    Level
	board    Board
	history  []MoveRecord
	selected int
	won      bool
	hint     *Move
	hints    int

	rng     *rand.Rand
	gateway Gateway
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds the shuffle for reproducible boards.
// A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGateway sets where session snapshots are persisted.
func WithGateway(g Gateway) Option {
	return func(e *Engine) {
		e.gateway = g
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine and opens the level: a saved session for the
// same level is restored, otherwise a fresh board is shuffled.
func NewEngine(level Level, opts ...Option) *Engine {
	e := &Engine{
		selected: -1,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.Open(level)
	return e
}

// Open switches to the level. If the gateway holds a snapshot for exactly
// this level it is restored and Open returns true; otherwise the session is
// reset with a new shuffle.
func (e *Engine) Open(level Level) bool {
	if e.gateway != nil {
		snap, err := e.gateway.Load()
		if err != nil {
			e.logger.Warn("could not load saved session", "error", err)
		}
		if snap != nil && snap.Level == level.Key {
			restoreErr := e.Restore(level, *snap)
			if restoreErr == nil {
				e.logger.Debug("restored session", "level", level.Key, "moves", len(e.history))
				return true
			}
			e.logger.Warn("discarding saved session", "level", level.Key, "error", restoreErr)
		}
	}
	e.Reset(level)
	return false
}

// Restore loads a snapshot into the engine. The snapshot must belong to
// the level and describe a board the level could reach.
func (e *Engine) Restore(level Level, snap Snapshot) error {
	if snap.Level != level.Key {
		return fmt.Errorf("snapshot is for level %q, not %q", snap.Level, level.Key)
	}
	if err := CheckBoard(snap.Board, level); err != nil {
		return err
	}
	if snap.MoveCount != len(snap.MoveHistory) {
		return fmt.Errorf("snapshot move count %d does not match history length %d",
			snap.MoveCount, len(snap.MoveHistory))
	}
	if err := checkHistory(snap.Board, snap.MoveHistory, level.Capacity()); err != nil {
		return err
	}

	e.level = level
	e.board = snap.Board.Clone()
	e.history = append([]MoveRecord(nil), snap.MoveHistory...)
	e.selected = -1
	e.hint = nil
	e.hints = 0
	e.won = snap.Won || CheckWin(e.board)
	return nil
}

// Reset discards the session, shuffles a new board for the level and drops
// any stored snapshot.
func (e *Engine) Reset(level Level) {
	e.level = level
	e.board = Initialize(level, e.rng)
	e.history = nil
	e.selected = -1
	e.won = false
	e.hint = nil
	e.hints = 0
	e.clearSaved()
}

// SelectOrMove handles a pick of tube i.
//
// With nothing selected, a non-empty tube becomes the source. With a source
// selected, picking it again cancels; picking another tube moves the top
// ball if legal, otherwise the selection is dropped without moving.
func (e *Engine) SelectOrMove(i int) Result {
	if e.won || i < 0 || i >= len(e.board) {
		return Result{Outcome: OutcomeNone}
	}

	if e.selected < 0 {
		if e.board[i].IsEmpty() {
			return Result{Outcome: OutcomeNone}
		}
		e.selected = i
		return Result{Outcome: OutcomeSelected}
	}

	from := e.selected
	e.selected = -1
	if from == i {
		return Result{Outcome: OutcomeDeselected}
	}

	capacity := e.level.Capacity()
	if !IsValidMove(e.board[from], e.board[i], capacity) {
		return Result{Outcome: OutcomeRejected}
	}

	m := Move{From: from, To: i}
	record := MoveRecord{
		From:       m.From,
		To:         m.To,
		Color:      e.board.apply(m),
		MoveNumber: len(e.history) + 1,
	}
	e.history = append(e.history, record)
	e.hint = nil

	res := Result{
		Outcome:   OutcomeMoved,
		Record:    record,
		Completed: e.board[i].IsComplete(capacity),
	}

	if CheckWin(e.board) {
		e.won = true
		res.Outcome = OutcomeWon
		e.clearSaved()
		return res
	}

	e.save()
	return res
}

// Undo reverts the last move. It does nothing once the game is won or when
// there is no history. Returns the reverted record.
func (e *Engine) Undo() (MoveRecord, bool) {
	if e.won || len(e.history) == 0 {
		return MoveRecord{}, false
	}

	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.board.apply(Move{From: last.To, To: last.From})
	e.selected = -1
	e.hint = nil

	e.save()
	return last, true
}

// Hint asks the advisor for a move on the current board and remembers it
// for display. No hint is given once the game is won.
func (e *Engine) Hint() (Move, bool) {
	if e.won {
		return Move{}, false
	}
	e.hints++
	m, ok := GetHint(e.board, e.level.Capacity())
	if !ok {
		e.hint = nil
		return Move{}, false
	}
	e.hint = &m
	return m, true
}

// Deselect clears the current selection, if any.
func (e *Engine) Deselect() {
	e.selected = -1
}

// Level returns the level being played.
func (e *Engine) Level() Level {
	return e.level
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Selected returns the selected tube index.
func (e *Engine) Selected() (int, bool) {
	return e.selected, e.selected >= 0
}

// MoveCount returns the number of moves in the history.
func (e *Engine) MoveCount() int {
	return len(e.history)
}

// History returns a copy of the move history, oldest first.
func (e *Engine) History() []MoveRecord {
	return append([]MoveRecord(nil), e.history...)
}

// Won reports whether the board has been sorted.
func (e *Engine) Won() bool {
	return e.won
}

// HintsUsed returns how many hints were requested this session.
func (e *Engine) HintsUsed() int {
	return e.hints
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.won:
		return PhaseWon
	case e.selected >= 0:
		return PhaseSelected
	default:
		return PhaseIdle
	}
}

// View returns a read-only copy of the session.
func (e *Engine) View() View {
	v := View{
		Level:     e.level,
		Board:     e.board.Clone(),
		Selected:  e.selected,
		MoveCount: len(e.history),
		Won:       e.won,
		HintsUsed: e.hints,
		Phase:     e.Phase(),
	}
	if e.hint != nil {
		h := *e.hint
		v.Hint = &h
	}
	return v
}

// Snapshot returns the session in its persisted form.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Level:       e.level.Key,
		Board:       e.board.Clone(),
		MoveCount:   len(e.history),
		MoveHistory: append([]MoveRecord(nil), e.history...),
		Won:         e.won,
		SavedAt:     time.Now(),
	}
}

// save writes the session to the gateway. Failures are logged only.
func (e *Engine) save() {
	if e.gateway == nil {
		return
	}
	if err := e.gateway.Save(e.Snapshot()); err != nil {
		e.logger.Warn("could not save session", "level", e.level.Key, "error", err)
	}
}

// clearSaved drops the stored snapshot. Failures are logged only.
func (e *Engine) clearSaved() {
	if e.gateway == nil {
		return
	}
	if err := e.gateway.Clear(); err != nil {
		e.logger.Warn("could not clear saved session", "level", e.level.Key, "error", err)
	}
}
