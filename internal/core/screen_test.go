package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(2, 3, '●', ColorRed)
	if c := s.GetCell(2, 3); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v, expected red ball", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'X', ColorBlue)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear() left %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "Hi→", ColorGreen)

	if s.Row(1) != "  Hi→     " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(4, 1).Color != ColorGreen {
		t.Error("multi-byte rune should be placed in the next cell with the text color")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abcd")
	if s.Row(0) != "        ab" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")
	if s.Row(0) != "    ab    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := []string{
		"┌──┐ ",
		"│  │ ",
		"└──┘ ",
		"     ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 1).Color != ColorGray {
		t.Error("box edges should use the box color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawHLine(0, 3, 4, '─', ColorDefault)
	s.DrawVLine(0, 0, 3, '│', ColorDefault)

	if s.Row(3) != "────" {
		t.Errorf("Row(3) = %q", s.Row(3))
	}
	for y := 0; y < 3; y++ {
		if s.Get(0, y) != '│' {
			t.Errorf("Get(0, %d) = %q", y, s.Get(0, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if s.String() != "abc\nde " {
		t.Errorf("String() = %q", s.String())
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("rows should be joined by newlines")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'X')
	s.Resize(5, 4)

	if s.Width() != 5 || s.Height() != 4 {
		t.Errorf("size = %dx%d, expected 5x4", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize() should clear the buffer")
	}
}

func TestWrapClamp(t *testing.T) {
	tests := []struct {
		val, n, want int
	}{
		{0, 4, 0},
		{4, 4, 0},
		{-1, 4, 3},
		{9, 4, 1},
		{3, 0, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.want)
		}
	}

	if Clamp(-3, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(2, 0, 5) != 2 {
		t.Error("Clamp() out of range")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() || f.HasPick() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUndo)
	f.Pick = 2
	if !f.Has(ActionUndo) || !f.HasPick() || f.Empty() {
		t.Error("frame should carry undo and pick")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should reset actions and pick")
	}

	var zero InputFrame
	if zero.Has(ActionHint) {
		t.Error("zero frame should have no actions")
	}
}
