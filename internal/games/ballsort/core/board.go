package core

import (
	"fmt"
	"strings"
)

// Board is the ordered collection of tubes in a session.
type Board []Tube

// NewEmptyBoard creates a board with n empty tubes.
func NewEmptyBoard(n int) Board {
	b := make(Board, n)
	for i := range b {
		b[i] = Tube{}
	}
	return b
}

// Clone creates a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for i, t := range b {
		out[i] = t.Clone()
	}
	return out
}

// Equal reports whether two boards are identical tube by tube.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// CountByColor returns the number of balls of each color on the board.
func (b Board) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, t := range b {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}

// TotalBalls returns the number of balls across all tubes.
func (b Board) TotalBalls() int {
	total := 0
	for _, t := range b {
		total += len(t)
	}
	return total
}

// String renders the board as one line per tube using color glyphs,
// e.g. "|RB|\n|BR|\n||".
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('|')
		for _, c := range t {
			sb.WriteRune(c.Char())
		}
		sb.WriteByte('|')
	}
	return sb.String()
}

// CheckBoard verifies that a board is a reachable state for the level:
// correct tube count, no tube above capacity, and every level color
// present exactly BallsPerColor times with no foreign colors.
func CheckBoard(b Board, l Level) error {
	if len(b) != l.TubeCount {
		return ValidationError{
			Code:    "TUBE_COUNT",
			Message: fmt.Sprintf("board has %d tubes, level %s needs %d", len(b), l.Key, l.TubeCount),
		}
	}

	capacity := l.Capacity()
	for i, t := range b {
		if len(t) > capacity {
			return ValidationError{
				Code:    "OVERFILLED",
				Message: fmt.Sprintf("tube %d holds %d balls, capacity is %d", i, len(t), capacity),
			}
		}
	}

	counts := b.CountByColor()
	for _, c := range l.Colors {
		if counts[c] != l.BallsPerColor {
			return ValidationError{
				Code:    "CONSERVATION",
				Message: fmt.Sprintf("color %s appears %d times, want %d", c, counts[c], l.BallsPerColor),
			}
		}
		delete(counts, c)
	}
	for c := range counts {
		return ValidationError{
			Code:    "FOREIGN_COLOR",
			Message: fmt.Sprintf("color %q is not part of level %s", c, l.Key),
		}
	}

	return nil
}
