package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ballsort/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 0},
		{"5", 4},
		{"9", 8},
		{"0", 9},
		{"a", core.NoPick},
		{"12", core.NoPick},
		{"", core.NoPick},
	}
	for _, tc := range tests {
		if got := pickIndex(tc.in); got != tc.want {
			t.Errorf("pickIndex(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionSelect},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{"undo", runeKey('u'), core.ActionUndo},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo},
		{"hint", runeKey('?'), core.ActionHint},
		{"restart", runeKey('r'), core.ActionRestart},
		{"pause", runeKey('p'), core.ActionPause},
		{"history", runeKey('m'), core.ActionHistory},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			keys.MapKeyToFrame(tc.msg, &frame)
			if !frame.Has(tc.want) {
				t.Errorf("%q did not set %v", tc.msg.String(), tc.want)
			}
			if frame.HasPick() {
				t.Errorf("%q should not pick a tube", tc.msg.String())
			}
		})
	}

	frame := core.NewInputFrame()
	keys.MapKeyToFrame(runeKey('3'), &frame)
	if frame.Pick != 2 || len(frame.Actions) != 0 {
		t.Errorf("digit 3: pick %d, actions %v", frame.Pick, frame.Actions)
	}

	frame = core.NewInputFrame()
	keys.MapKeyToFrame(runeKey('s'), &frame)
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame)
	if !frame.Empty() {
		t.Errorf("sound and back keys should not reach the game: %+v", frame)
	}
}

type soundSwitch bool

func (s soundSwitch) SoundEnabled() bool { return bool(s) }

func TestBellSounder(t *testing.T) {
	var buf bytes.Buffer
	b := NewBellSounder(&buf, soundSwitch(true))

	for _, cue := range []core.Cue{core.CueClick, core.CueMove, core.CueHint, core.CueUndo, core.CueReset} {
		b.Play(cue)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet cues rang the bell %d times", buf.Len())
	}

	b.Play(core.CueInvalid)
	b.Play(core.CueComplete)
	b.Play(core.CueWin)
	if buf.String() != "\a\a\a" {
		t.Errorf("bell output = %q, expected three bells", buf.String())
	}

	buf.Reset()
	NewBellSounder(&buf, soundSwitch(false)).Play(core.CueWin)
	if buf.Len() != 0 {
		t.Error("muted sounder should stay silent")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "red", core.ColorRed)
	s.DrawText(0, 1, "second")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"plain", "red", "second"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
