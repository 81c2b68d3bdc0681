package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInitializeConservation(t *testing.T) {
	level := Level{Key: "cons", TubeCount: 8, Colors: []Color{Red, Blue, Green, Yellow, Purple}, BallsPerColor: 4}

	for seed := int64(1); seed <= 20; seed++ {
		board := Initialize(level, rand.New(rand.NewSource(seed)))

		if err := CheckBoard(board, level); err != nil {
			t.Fatalf("seed %d: CheckBoard() = %v", seed, err)
		}

		// Chunks fill tubes in order; the rest stay empty.
		for i, tube := range board {
			want := 0
			if i < len(level.Colors) {
				want = level.BallsPerColor
			}
			if tube.Len() != want {
				t.Errorf("seed %d: tube %d has %d balls, expected %d", seed, i, tube.Len(), want)
			}
		}
	}
}

func TestInitializeDeterministic(t *testing.T) {
	level := Level{Key: "det", TubeCount: 6, Colors: []Color{Red, Blue, Green, Yellow}, BallsPerColor: 3}

	b1 := Initialize(level, rand.New(rand.NewSource(12345)))
	b2 := Initialize(level, rand.New(rand.NewSource(12345)))

	if !b1.Equal(b2) {
		t.Errorf("Same seed should produce same board:\n%s\nvs\n%s", b1, b2)
	}
}

func TestInitializeUniform(t *testing.T) {
	// Three colors, one ball each: six equally likely orderings.
	level := Level{Key: "uni", TubeCount: 4, Colors: []Color{A, B, C}, BallsPerColor: 1}
	rng := rand.New(rand.NewSource(99))

	const trials = 6000
	counts := make(map[string]int)
	for range trials {
		board := Initialize(level, rng)
		key := string(board[0][0]) + string(board[1][0]) + string(board[2][0])
		counts[key]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected 6 distinct orderings, got %d: %v", len(counts), counts)
	}
	for key, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("ordering %s seen %d times, expected about %d", key, n, trials/6)
		}
	}
}

func TestCheckBoard(t *testing.T) {
	level := Level{Key: "ab", TubeCount: 3, Colors: []Color{A, B}, BallsPerColor: 2}

	tests := []struct {
		name  string
		board Board
		code  string
	}{
		{"valid", Board{{A, B}, {B, A}, {}}, ""},
		{"valid sorted", Board{{A, A}, {B}, {B}}, ""},
		{"wrong tube count", Board{{A, B}, {B, A}}, "TUBE_COUNT"},
		{"overfilled", Board{{A, B, A}, {B}, {}}, "OVERFILLED"},
		{"missing ball", Board{{A, B}, {B}, {}}, "CONSERVATION"},
		{"foreign color", Board{{A, B}, {B, A}, {C}}, "FOREIGN_COLOR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckBoard(tc.board, level)
			if tc.code == "" {
				if err != nil {
					t.Errorf("CheckBoard() = %v, expected nil", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("CheckBoard() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("CheckBoard() code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		code  string
	}{
		{"valid", Level{Key: "ok", TubeCount: 3, Colors: []Color{A, B}, BallsPerColor: 2}, ""},
		{"missing key", Level{TubeCount: 3, Colors: []Color{A, B}, BallsPerColor: 2}, "MISSING_KEY"},
		{"no colors", Level{Key: "x", TubeCount: 3, BallsPerColor: 2}, "NO_COLORS"},
		{"zero depth", Level{Key: "x", TubeCount: 3, Colors: []Color{A, B}}, "BAD_DEPTH"},
		{"no spare tube", Level{Key: "x", TubeCount: 2, Colors: []Color{A, B}, BallsPerColor: 2}, "NO_SPARE_TUBE"},
		{"duplicate color", Level{Key: "x", TubeCount: 3, Colors: []Color{A, A}, BallsPerColor: 2}, "DUPLICATE_COLOR"},
		{"empty color", Level{Key: "x", TubeCount: 3, Colors: []Color{A, ""}, BallsPerColor: 2}, "EMPTY_COLOR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.level.Validate()
			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) || verr.Code != tc.code {
				t.Errorf("Validate() = %v, expected code %s", err, tc.code)
			}
		})
	}
}

func TestTubeHelpers(t *testing.T) {
	tube := Tube{A, A, B}

	if top, ok := tube.Top(); !ok || top != B {
		t.Errorf("Top() = %v, %v; expected B, true", top, ok)
	}
	if tube.IsMonochrome() {
		t.Error("mixed tube should not be monochrome")
	}
	if !(Tube{}).IsMonochrome() {
		t.Error("empty tube should be monochrome")
	}
	if !(Tube{A, A, A}).IsComplete(3) {
		t.Error("full single-color tube should be complete")
	}
	if (Tube{A, A}).IsComplete(3) {
		t.Error("partial tube should not be complete")
	}

	clone := tube.Clone()
	clone[0] = C
	if tube[0] != A {
		t.Error("Clone() should not share storage")
	}
}

func TestBoardString(t *testing.T) {
	board := Board{{Red, Blue}, {}, {Green}}
	expected := "|RB|\n||\n|G|"
	if board.String() != expected {
		t.Errorf("String() = %q, expected %q", board.String(), expected)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", Red, true},
		{"Teal", Teal, true},
		{" brown ", Brown, true},
		{"k", Pink, true},
		{"o", Orange, true},
		{"magenta", "", false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
