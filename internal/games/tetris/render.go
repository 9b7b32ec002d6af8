package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants, in terminal columns/rows.
const (
	cellWidth   = 2  // A board cell is two columns wide so blocks look square
	panelGap    = 2  // Space between the well and the side panel
	panelWidth  = 12 // Side panel: next piece, score, level, lines
	panelHeight = 14
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// requiredSize returns the smallest screen that fits the well and the panel.
func requiredSize(boardW, boardH int) (int, int) {
	w := boardW*cellWidth + 2 + panelGap + panelWidth
	h := max(boardH+2, panelHeight)
	return w, h
}

// Render draws the well, the falling piece with its landing shadow,
// the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	if g.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	e := g.engine
	reqW, reqH := requiredSize(e.Width(), e.Height())
	well := core.NewRect(
		core.Clamp((dst.Width()-reqW)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-reqH)/2, 0, dst.Height()),
		e.Width()*cellWidth+2,
		e.Height()+2,
	)

	g.renderWell(dst, well)
	g.renderPanel(dst, well.Right()+panelGap, well.Y)

	switch e.State() {
	case StateGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - R to restart", e.Score()))
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWell draws the border, locked cells, ghost and active piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	e := g.engine
	dst.DrawBox(well, core.ColorGray)

	// Screen position of board cell (x, y)
	at := func(x, y int) (int, int) {
		return well.X + 1 + x*cellWidth, well.Y + 1 + y
	}

	for y := range e.Height() {
		for x := range e.Width() {
			sx, sy := at(x, y)
			if c := e.Cell(x, y); c.Filled {
				drawBlock(dst, sx, sy, blockRune, c.Color)
			} else {
				dst.SetColored(sx+1, sy, emptyRune, core.ColorDim)
			}
		}
	}

	// Cells still above the top edge are not drawn
	bounds := core.NewRect(0, 0, e.Width(), e.Height())

	active := e.active
	if e.State() != StateGameOver {
		ghost := active
		ghost.Y = e.GhostY()
		if ghost.Y != active.Y {
			for _, pt := range ghost.Cells() {
				if bounds.Contains(pt.X, pt.Y) {
					sx, sy := at(pt.X, pt.Y)
					drawBlock(dst, sx, sy, ghostRune, active.Color)
				}
			}
		}
	}

	for _, pt := range active.Cells() {
		if bounds.Contains(pt.X, pt.Y) {
			sx, sy := at(pt.X, pt.Y)
			drawBlock(dst, sx, sy, blockRune, active.Color)
		}
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	e := g.engine

	dst.DrawTextColored(x, y, "NEXT", core.ColorWhite)
	preview := core.NewRect(x, y+1, 4*cellWidth+2, 4)
	dst.DrawBox(preview, core.ColorGray)

	next := e.next
	// Centre the shape inside the 4x2 preview interior
	offX := (4 - next.Shape.Cols()) * cellWidth / 2
	offY := (2 - next.Shape.Rows()) / 2
	for _, pt := range next.Shape.Offsets() {
		drawBlock(dst, preview.X+1+offX+pt.X*cellWidth, preview.Y+1+offY+pt.Y, blockRune, next.Color)
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", e.Score()},
		{"LEVEL", e.Level()},
		{"LINES", e.Lines()},
	}
	for i, s := range stats {
		row := y + 6 + i*3
		dst.DrawTextColored(x, row, s.label, core.ColorGray)
		dst.DrawTextColored(x, row+1, fmt.Sprintf("%d", s.value), core.ColorWhite)
	}
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
