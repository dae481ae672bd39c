package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board dimensions. Fixed for every session.
const (
	Width  = 10
	Height = 20
)

// bounds covers the visible board.
var bounds = core.NewRect(0, 0, Width, Height)

// Grid is the playing field. A cell is occupied when its color is opaque;
// only locked pieces ever end up here.
type Grid [Height][Width]core.Color

// Cell returns the color at (x, y), or ColorNone outside the board.
func (g Grid) Cell(x, y int) core.Color {
	if !bounds.Contains(x, y) {
		return core.ColorNone
	}
	return g[y][x]
}

// Occupied reports whether (x, y) holds a locked block.
func (g Grid) Occupied(x, y int) bool {
	return g.Cell(x, y).Opaque()
}

// Collides reports whether p overlaps a wall, the floor or a locked block.
// Rows above the top edge are only checked against the side walls so that
// pieces may spawn partly off-screen.
func (g Grid) Collides(p Piece) bool {
	for _, b := range p.Blocks() {
		if !bounds.Contains(b.X, max(b.Y, 0)) {
			return true
		}
		if b.Y >= 0 && g[b.Y][b.X].Opaque() {
			return true
		}
	}
	return false
}

// Commit bakes the piece's blocks into the grid with its color.
// Blocks above the top edge are dropped.
func (g *Grid) Commit(p Piece) {
	for _, b := range p.Blocks() {
		if b.Y < 0 || b.Y >= Height || b.X < 0 || b.X >= Width {
			continue
		}
		g[b.Y][b.X] = p.Color()
	}
}

// rowComplete reports whether every cell of row y is occupied.
func (g Grid) rowComplete(y int) bool {
	for x := range Width {
		if !g[y][x].Opaque() {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every full row, shifting the rows above it
// down and clearing the top row. Scans bottom-up and re-examines a row index
// after a shift. Returns the number of rows removed.
func (g *Grid) ClearCompletedRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !g.rowComplete(y) {
			y--
			continue
		}
		cleared++
		for row := y; row > 0; row-- {
			g[row] = g[row-1]
		}
		g[0] = [Width]core.Color{}
	}
	return cleared
}

// Reset empties the grid.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Rows returns a row-major copy of the cell colors.
func (g Grid) Rows() [Height][Width]core.Color {
	return g
}

// Filled counts occupied cells.
func (g Grid) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g[y][x].Opaque() {
				n++
			}
		}
	}
	return n
}
