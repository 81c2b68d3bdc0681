package core

import "fmt"

// Move is a transfer of the top ball from one tube index to another.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// String returns a 1-indexed human readable form, e.g. "3 -> 5".
func (m Move) String() string {
	return fmt.Sprintf("%d -> %d", m.From+1, m.To+1)
}

// MoveRecord is one entry of the move history.
type MoveRecord struct {
	From       int   `json:"from"`
	To         int   `json:"to"`
	Color      Color `json:"color"`
	MoveNumber int   `json:"moveNumber"`
}

// Move returns the transfer described by the record.
func (r MoveRecord) Move() Move {
	return Move{From: r.From, To: r.To}
}

// IsValidMove decides whether the top ball of from may be placed on to.
// Moving out of an empty tube, into a full tube, or onto a ball of a
// different color is illegal. Same-index moves are rejected by callers.
func IsValidMove(from, to Tube, capacity int) bool {
	top, ok := from.Top()
	if !ok {
		return false
	}
	if to.IsFull(capacity) {
		return false
	}
	if dst, ok := to.Top(); ok && dst != top {
		return false
	}
	return true
}

// CheckWin returns true when every tube is empty or holds one color.
// Partially filled monochrome tubes count as sorted.
func CheckWin(b Board) bool {
	for _, t := range b {
		if !t.IsMonochrome() {
			return false
		}
	}
	return true
}

// apply moves the top ball of b[m.From] onto b[m.To] in place and
// returns the moved color. Callers validate first.
func (b Board) apply(m Move) Color {
	src := b[m.From]
	c := src[len(src)-1]
	b[m.From] = src[:len(src)-1]
	b[m.To] = append(b[m.To], c)
	return c
}

// checkHistory replays history backwards from b on a copy and fails on the
// first record that could not have led to b. Undo relies on every record
// passing these checks.
func checkHistory(b Board, history []MoveRecord, capacity int) error {
	board := b.Clone()
	n := len(board)
	for i := len(history) - 1; i >= 0; i-- {
		r := history[i]
		if r.MoveNumber != i+1 {
			return ValidationError{
				Code:    "BAD_HISTORY",
				Message: fmt.Sprintf("history entry %d is numbered %d", i+1, r.MoveNumber),
			}
		}
		if r.From < 0 || r.From >= n || r.To < 0 || r.To >= n || r.From == r.To {
			return ValidationError{
				Code:    "BAD_HISTORY",
				Message: fmt.Sprintf("move %d has bad tubes %d -> %d", r.MoveNumber, r.From, r.To),
			}
		}
		if top, ok := board[r.To].Top(); !ok || top != r.Color {
			return ValidationError{
				Code:    "BAD_HISTORY",
				Message: fmt.Sprintf("move %d: tube %d does not end with %s", r.MoveNumber, r.To, r.Color),
			}
		}
		if board[r.From].IsFull(capacity) {
			return ValidationError{
				Code:    "BAD_HISTORY",
				Message: fmt.Sprintf("move %d: tube %d has no room to undo into", r.MoveNumber, r.From),
			}
		}
		board.apply(Move{From: r.To, To: r.From})
	}
	return nil
}
