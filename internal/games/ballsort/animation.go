package ballsort

import (
	"time"

	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

// Animation constants
const (
	celebrateDuration = 2 * time.Second
	ballSpacing       = 3 // columns between falling balls
	maxFallDelay      = 6 // rows a ball may start above the screen
)

// fallingBall is one ball of the win animation.
type fallingBall struct {
	X     int          // Column
	Delay int          // Rows above the top edge at the start
	Color bscore.Color // Level color
}

// startCelebration drops a row of balls in the level's colors.
// Columns and delays are fixed so every run looks the same.
func (g *Game) startCelebration() {
	g.celebration = g.celebration[:0]
	colors := g.level.Colors
	if len(colors) == 0 || g.screenW <= 0 {
		return
	}

	for i, x := 0, 1; x < g.screenW-1; i, x = i+1, x+ballSpacing {
		g.celebration = append(g.celebration, fallingBall{
			X:     x,
			Delay: (i * 5) % (maxFallDelay + 1),
			Color: colors[i%len(colors)],
		})
	}
	g.animating = true
	g.animationTicks = 0
}

// updateAnimation advances the win animation.
// Returns true if animation is still in progress.
func (g *Game) updateAnimation() bool {
	if !g.animating {
		return false
	}

	g.animationTicks++
	if g.animationTicks >= g.animationDuration() {
		g.stopCelebration()
		return false
	}
	return true
}

// stopCelebration drops any running animation.
func (g *Game) stopCelebration() {
	g.animating = false
	g.animationTicks = 0
	g.celebration = g.celebration[:0]
}

// animationDuration returns the animation length in ticks.
func (g *Game) animationDuration() int {
	rate := g.tickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return int(celebrateDuration/time.Second) * rate
}

// renderCelebration draws the falling balls. Each ball crosses the whole
// screen over the animation.
func (g *Game) renderCelebration(dst *core.Screen) {
	if !g.animating {
		return
	}

	progress := float64(g.animationTicks) / float64(g.animationDuration())
	if progress > 1.0 {
		progress = 1.0
	}
	fall := float64(g.screenH + maxFallDelay)

	for _, b := range g.celebration {
		y := int(progress*fall) - b.Delay
		if y < 0 || y >= g.screenH {
			continue
		}
		dst.SetColored(b.X, y, ballRune, BallColor(b.Color))
	}
}
