package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/ballsort/internal/core"
)

// Sounder plays game cues.
type Sounder interface {
	Play(cue core.Cue)
}

// SoundSwitch reports whether sound is on. *config.Store satisfies it.
type SoundSwitch interface {
	SoundEnabled() bool
}

// BellSounder rings the terminal bell for the cues worth hearing.
// Cursor clicks and plain moves stay silent.
type BellSounder struct {
	mu sync.Mutex
	w  io.Writer
	on SoundSwitch
}

// NewBellSounder writes bells to w while on reports sound enabled.
func NewBellSounder(w io.Writer, on SoundSwitch) *BellSounder {
	return &BellSounder{w: w, on: on}
}

// Play rings the bell for audible cues.
func (b *BellSounder) Play(cue core.Cue) {
	if b == nil || b.w == nil || (b.on != nil && !b.on.SoundEnabled()) {
		return
	}
	switch cue {
	case core.CueInvalid, core.CueComplete, core.CueWin:
	default:
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort bell
	b.w.Write([]byte{'\a'})
}

// mute is a Sounder that plays nothing.
type mute struct{}

func (mute) Play(core.Cue) {}
