package core

import "fmt"

// Level defines a difficulty preset. A Level is immutable once selected;
// switching levels starts a fresh board.
type Level struct {
	Key           string
	Name          string
	TubeCount     int
	Colors        []Color
	BallsPerColor int
}

// Capacity returns the maximum number of balls a tube can hold.
// It equals the fill depth of the level.
func (l Level) Capacity() int {
	return l.BallsPerColor
}

// TotalBalls returns the number of balls on a board of this level.
func (l Level) TotalBalls() int {
	return len(l.Colors) * l.BallsPerColor
}

// SpareTubes returns how many tubes start empty.
func (l Level) SpareTubes() int {
	return l.TubeCount - len(l.Colors)
}

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the level can produce a playable board:
// at least one color, positive fill depth, distinct colors, and more
// tubes than colors so one working tube always exists.
func (l Level) Validate() error {
	if l.Key == "" {
		return ValidationError{Code: "MISSING_KEY", Message: "level has no key"}
	}
	if len(l.Colors) == 0 {
		return ValidationError{
			Code:    "NO_COLORS",
			Message: fmt.Sprintf("level %s has no colors", l.Key),
		}
	}
	if l.BallsPerColor <= 0 {
		return ValidationError{
			Code:    "BAD_DEPTH",
			Message: fmt.Sprintf("level %s: balls per color must be positive, got %d", l.Key, l.BallsPerColor),
		}
	}
	if l.SpareTubes() <= 0 {
		return ValidationError{
			Code:    "NO_SPARE_TUBE",
			Message: fmt.Sprintf("level %s: %d tubes for %d colors leaves no empty tube", l.Key, l.TubeCount, len(l.Colors)),
		}
	}

	seen := make(map[Color]bool, len(l.Colors))
	for _, c := range l.Colors {
		if c == "" {
			return ValidationError{
				Code:    "EMPTY_COLOR",
				Message: fmt.Sprintf("level %s has an empty color name", l.Key),
			}
		}
		if seen[c] {
			return ValidationError{
				Code:    "DUPLICATE_COLOR",
				Message: fmt.Sprintf("level %s lists color %s twice", l.Key, c),
			}
		}
		seen[c] = true
	}

	return nil
}
