package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per board cell

	boardW = Width*cellWidth + 2 // +2 for borders
	boardH = Height + 2

	panelW   = 12 // Side panel width
	previewW = 4*cellWidth + 2
	previewH = 4 + 2
	panelGap = 2

	minW = boardW + 2*(panelW+panelGap)
	minH = boardH
)

const (
	blockGlyph = '█'
	ghostGlyph = '░'
	emptyGlyph = '·'
)

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := (g.screenH - boardH) / 2

	g.renderBoard(dst, boardX, boardY)
	g.renderHold(dst, boardX-panelGap-panelW, boardY)
	g.renderSidebar(dst, boardX+boardW+panelGap, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// drawCell paints one board cell (two columns) at grid coordinates.
func drawCell(dst *core.Screen, originX, originY, x, y int, glyph rune, c core.Color) {
	sx := originX + 1 + x*cellWidth
	sy := originY + 1 + y
	for i := range cellWidth {
		dst.SetColored(sx+i, sy, glyph, c)
	}
}

// renderBoard draws the border, locked cells, the ghost and the active piece.
func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, boardW, boardH))

	grid := g.engine.Grid()
	for row := range Height {
		for col := range Width {
			if c := grid.Cell(col, row); c.Opaque() {
				drawCell(dst, x, y, col, row, blockGlyph, c)
				continue
			}
			dst.SetColored(x+1+col*cellWidth+1, y+1+row, emptyGlyph, core.ColorGray)
		}
	}

	if g.engine.GameOver() || g.engine.Paused() {
		return
	}

	active := g.engine.Active()
	for _, b := range g.engine.Ghost().Blocks() {
		if b.Y >= 0 {
			drawCell(dst, x, y, b.X, b.Y, ghostGlyph, core.ColorGray)
		}
	}
	for _, b := range active.Blocks() {
		if b.Y >= 0 {
			drawCell(dst, x, y, b.X, b.Y, blockGlyph, active.Color())
		}
	}
}

// renderPreview draws a boxed piece preview with a title in the top border.
func renderPreview(dst *core.Screen, x, y int, title string, p Piece, c core.Color) {
	dst.DrawBox(core.NewRect(x, y, previewW, previewH))
	dst.DrawText(x+1, y, title)

	if p.IsNone() {
		return
	}
	// Center the frame inside the 4x4 preview area.
	offX := (4 - p.Width()) * cellWidth / 2
	offY := (4 - p.Height()) / 2
	for py := range p.Height() {
		for px := range p.Width() {
			if !p.Occupied(px, py) {
				continue
			}
			sx := x + 1 + offX + px*cellWidth
			for i := range cellWidth {
				dst.SetColored(sx+i, y+1+offY+py, blockGlyph, c)
			}
		}
	}
}

// renderHold draws the hold slot. A held piece that cannot be swapped in
// right now is greyed out.
func (g *Game) renderHold(dst *core.Screen, x, y int) {
	held := g.engine.Held()
	c := held.Color()
	if !g.engine.CanSwap() {
		c = core.ColorGray
	}
	renderPreview(dst, x, y, "HOLD", held, c)
}

// renderSidebar draws the next piece and the score panel.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	next := g.engine.Next()
	renderPreview(dst, x, y, "NEXT", next, next.Color())

	hudY := y + previewH + 1
	dst.DrawTextColored(x, hudY, "TETRIS", core.ColorBrightCyan)
	dst.DrawText(x, hudY+2, "Score")
	dst.DrawTextColored(x, hudY+3, fmt.Sprintf("%d", g.engine.Score()), core.ColorBrightWhite)
	dst.DrawText(x, hudY+5, "Level")
	dst.DrawTextColored(x, hudY+6, fmt.Sprintf("%d", g.engine.Level()), core.ColorBrightWhite)
	dst.DrawText(x, hudY+8, "Lines")
	dst.DrawTextColored(x, hudY+9, fmt.Sprintf("%d", g.engine.Lines()), core.ColorBrightWhite)
}

// renderOverlays draws pause and game over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerY := boardY + boardH/2

	// Blank the rows under the message so it reads over locked cells.
	inner := boardW - 2
	switch {
	case g.engine.GameOver():
		dst.DrawRect(core.NewRect(boardX+1, centerY-1, inner, 5), ' ')
		drawBoardText(dst, boardX, centerY-1, "GAME OVER", core.ColorBrightRed)
		drawBoardText(dst, boardX, centerY+1, fmt.Sprintf("Score: %d", g.engine.Score()), core.ColorBrightWhite)
		drawBoardText(dst, boardX, centerY+3, "R restart  Q quit", core.ColorDefault)
	case g.engine.Paused():
		dst.DrawRect(core.NewRect(boardX+1, centerY, inner, 3), ' ')
		drawBoardText(dst, boardX, centerY, "PAUSED", core.ColorBrightYellow)
		drawBoardText(dst, boardX, centerY+2, "P to resume", core.ColorDefault)
	}
}

// drawBoardText centers text horizontally over the board.
func drawBoardText(dst *core.Screen, boardX, y int, text string, c core.Color) {
	x := boardX + (boardW-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
