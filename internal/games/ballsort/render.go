package ballsort

import (
	"fmt"

	"github.com/vovakirdan/ballsort/internal/core"
	bscore "github.com/vovakirdan/ballsort/internal/games/ballsort/core"
)

const (
	tubeWidth    = 3 // wall, ball, wall
	tubeGap      = 2
	hudHeight    = 3
	footerHeight = 2
	ballRune     = '●'
)

// ballColors maps puzzle colors to screen colors.
var ballColors = map[bscore.Color]core.Color{
	bscore.Red:    core.ColorRed,
	bscore.Blue:   core.ColorBlue,
	bscore.Green:  core.ColorGreen,
	bscore.Yellow: core.ColorYellow,
	bscore.Purple: core.ColorMagenta,
	bscore.Orange: core.ColorOrange,
	bscore.Teal:   core.ColorCyan,
	bscore.Pink:   core.ColorPink,
	bscore.Brown:  core.ColorBrown,
}

// BallColor returns the screen color for a ball.
func BallColor(c bscore.Color) core.Color {
	if sc, ok := ballColors[c]; ok {
		return sc
	}
	return core.ColorWhite
}

func boardWidth(tubes int) int {
	if tubes <= 0 {
		return 0
	}
	return tubes*tubeWidth + (tubes-1)*tubeGap
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	v := g.engine.View()
	boardW := boardWidth(len(v.Board))
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, v, boardX, boardW)
	bottom := g.renderBoard(dst, v, boardX, boardY)
	g.renderFooter(dst, bottom+1)
	g.renderCelebration(dst)
	g.renderOverlays(dst, v, boardY, bottom)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the level name, move counter and timer.
func (g *Game) renderHUD(dst *core.Screen, v bscore.View, boardX, boardW int) {
	dst.DrawTextCenteredColored(0, "BALL SORT", core.ColorBrightWhite)

	left := fmt.Sprintf("Level: %s", v.Level.Name)
	dst.DrawText(boardX, 1, left)

	right := fmt.Sprintf("Moves: %d", v.MoveCount)
	if g.display.ShowTimer() {
		right += "  Time: " + FormatElapsed(g.Elapsed())
	}
	rightX := boardX + boardW - len(right)
	if rightX < boardX+len(left)+2 {
		rightX = boardX + len(left) + 2
	}
	dst.DrawText(rightX, 1, right)
}

// renderBoard draws the tubes, the lifted ball, labels and cursor.
// Returns the last row used.
func (g *Game) renderBoard(dst *core.Screen, v bscore.View, boardX, boardY int) int {
	capacity := v.Level.Capacity()
	tubeTop := boardY + 1 // row above is reserved for the lifted ball

	hintFrom, hintTo := -1, -1
	if v.Hint != nil && g.display.ShowHints() {
		hintFrom, hintTo = v.Hint.From, v.Hint.To
	}

	for i, tube := range v.Board {
		x := boardX + i*(tubeWidth+tubeGap)

		frame := core.ColorGray
		switch {
		case i == v.Selected:
			frame = core.ColorBrightWhite
		case i == hintFrom || i == hintTo:
			frame = core.ColorBrightYellow
		case tube.IsComplete(capacity):
			frame = core.ColorGreen
		}

		dst.DrawVLine(x, tubeTop, capacity, '│', frame)
		dst.DrawVLine(x+tubeWidth-1, tubeTop, capacity, '│', frame)
		dst.SetColored(x, tubeTop+capacity, '└', frame)
		dst.SetColored(x+1, tubeTop+capacity, '─', frame)
		dst.SetColored(x+tubeWidth-1, tubeTop+capacity, '┘', frame)

		// Balls fill from the bottom; the selected tube's top ball is lifted.
		for j, c := range tube {
			y := tubeTop + capacity - 1 - j
			if i == v.Selected && j == len(tube)-1 {
				y = boardY
			}
			dst.SetColored(x+1, y, ballRune, BallColor(c))
		}

		label := fmt.Sprintf("%d", i+1)
		dst.DrawText(x+(tubeWidth-len(label)+1)/2, tubeTop+capacity+1, label)

		if i == g.cursor {
			dst.SetColored(x+1, tubeTop+capacity+2, '▲', core.ColorBrightWhite)
		}
	}

	return tubeTop + capacity + 2
}

// renderFooter draws the status message and hint text.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCenteredColored(y+1, g.message, core.ColorYellow)
	}
}

// renderOverlays draws the pause, move history and win overlays.
func (g *Game) renderOverlays(dst *core.Screen, v bscore.View, top, bottom int) {
	centerX := g.screenW / 2
	centerY := (top + bottom) / 2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.showHistory {
		g.drawOverlay(dst, centerX, g.screenH/2, g.historyLines()...)
		return
	}

	if v.Won {
		lines := []string{
			"SOLVED!",
			fmt.Sprintf("%d moves - %s", v.MoveCount, Rating(v.MoveCount)),
		}
		if g.display.ShowTimer() {
			lines = append(lines, "Time: "+FormatElapsed(g.Elapsed()))
		}
		lines = append(lines, "R: New board | Esc: Menu")
		g.drawOverlay(dst, centerX, centerY, lines...)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - len(line)/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, boxY+1+i, line, c)
	}
}

// historyLines lists the moves played so far, newest last. When the list
// does not fit the screen the oldest moves are folded into one line.
func (g *Game) historyLines() []string {
	records := g.engine.History()
	lines := []string{"MOVE HISTORY"}
	if len(records) == 0 {
		return append(lines, "(no moves yet)", "M: close")
	}

	// Title, close hint and the box border take four rows.
	room := max(g.screenH-4, 1)
	if len(records) > room {
		skipped := len(records) - room + 1
		lines = append(lines, fmt.Sprintf("... %d earlier moves", skipped))
		records = records[skipped:]
	}
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("Move %d: %s %s", r.MoveNumber, r.Color, r.Move()))
	}
	return append(lines, "M: close")
}
