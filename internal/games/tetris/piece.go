package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindNone // No piece (empty hold slot)
)

// KindCount is the number of playable kinds.
const KindCount = int(KindNone)

// shapeDef describes the canonical starting state of a kind.
type shapeDef struct {
	name      string
	shape     []string // '#' marks an occupied sub-cell
	color     core.Color
	spawn     core.Point
	symmetric bool // rotation leaves the shape unchanged
}

// kinds is indexed by Kind.
var kinds = [...]shapeDef{
	KindI: {
		name:  "I",
		shape: []string{"....", "####", "....", "...."},
		color: core.ColorCyan,
		spawn: core.Point{X: 3, Y: 0},
	},
	KindO: {
		name:      "O",
		shape:     []string{"##", "##"},
		color:     core.ColorYellow,
		spawn:     core.Point{X: 4, Y: 0},
		symmetric: true,
	},
	KindT: {
		name:  "T",
		shape: []string{".#.", "###", "..."},
		color: core.ColorPurple,
		spawn: core.Point{X: 3, Y: 0},
	},
	KindS: {
		name:  "S",
		shape: []string{".##", "##.", "..."},
		color: core.ColorGreen,
		spawn: core.Point{X: 3, Y: 0},
	},
	KindZ: {
		name:  "Z",
		shape: []string{"##.", ".##", "..."},
		color: core.ColorRed,
		spawn: core.Point{X: 3, Y: 0},
	},
	KindJ: {
		name:  "J",
		shape: []string{"#..", "###", "..."},
		color: core.ColorBlue,
		spawn: core.Point{X: 3, Y: 0},
	},
	KindL: {
		name:  "L",
		shape: []string{"..#", "###", "..."},
		color: core.ColorOrange,
		spawn: core.Point{X: 3, Y: 0},
	},
	KindNone: {
		name:      "None",
		color:     core.ColorNone,
		symmetric: true,
	},
}

func (k Kind) def() shapeDef {
	if k < KindI || k > KindNone {
		panic(fmt.Sprintf("tetris: invalid piece kind %d", int(k)))
	}
	return kinds[k]
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < KindI || k > KindNone {
		return "Unknown"
	}
	return kinds[k].name
}

// Piece is a tetromino with its occupancy matrix, color and grid origin.
//
// The matrix is never modified in place: Rotate replaces it, so copying a
// Piece by value yields an independent piece.
type Piece struct {
	kind   Kind
	cells  [][]bool
	color  core.Color
	origin core.Point
}

// NewPiece builds a piece of the given kind in its spawn state.
// Panics on an unknown kind.
func NewPiece(k Kind) Piece {
	s := k.def()
	cells := make([][]bool, len(s.shape))
	for y, row := range s.shape {
		cells[y] = make([]bool, len(row))
		for x, ch := range row {
			cells[y][x] = ch == '#'
		}
	}
	return Piece{
		kind:   k,
		cells:  cells,
		color:  s.color,
		origin: s.spawn,
	}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// Color returns the display color.
func (p Piece) Color() core.Color { return p.color }

// Origin returns the grid position of the local frame's top-left corner.
func (p Piece) Origin() core.Point { return p.origin }

// IsNone reports whether p is the empty piece.
func (p Piece) IsNone() bool { return p.kind == KindNone }

// Cells returns a copy of the occupancy matrix.
func (p Piece) Cells() [][]bool {
	out := make([][]bool, len(p.cells))
	for y, row := range p.cells {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Width returns the number of columns of the local frame.
func (p Piece) Width() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells[0])
}

// Height returns the number of rows of the local frame.
func (p Piece) Height() int {
	return len(p.cells)
}

// Occupied reports whether the local sub-cell (x, y) is filled.
func (p Piece) Occupied(x, y int) bool {
	if y < 0 || y >= len(p.cells) || x < 0 || x >= len(p.cells[y]) {
		return false
	}
	return p.cells[y][x]
}

// Blocks returns the absolute grid coordinates of every occupied sub-cell,
// row by row.
func (p Piece) Blocks() []core.Point {
	blocks := make([]core.Point, 0, 4)
	for y, row := range p.cells {
		for x, filled := range row {
			if filled {
				blocks = append(blocks, p.origin.Add(x, y))
			}
		}
	}
	return blocks
}

// Rotate turns the shape 90 degrees clockwise within its frame.
// Rotation-symmetric kinds are left untouched. No bounds checks.
func (p *Piece) Rotate() {
	if p.kind.def().symmetric || len(p.cells) == 0 {
		return
	}

	rows, cols := len(p.cells), len(p.cells[0])
	rotated := make([][]bool, cols)
	for c := range rotated {
		rotated[c] = make([]bool, rows)
	}
	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = p.cells[r][c]
		}
	}
	p.cells = rotated
}

// Move translates the origin by (dx, dy). No validation.
func (p *Piece) Move(dx, dy int) {
	p.origin = p.origin.Add(dx, dy)
}

// moveTo places the origin at an absolute position.
func (p *Piece) moveTo(at core.Point) {
	p.origin = at
}

// centeredSpawn is where a piece re-enters the board after a hold swap:
// horizontally centered by frame width, top row.
func centeredSpawn(p Piece) core.Point {
	return core.Point{X: Width/2 - p.Width()/2, Y: 0}
}
