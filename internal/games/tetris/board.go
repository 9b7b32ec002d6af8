package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is one board position. Color is only meaningful when Filled.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the occupancy grid. Row 0 is the top, row Height()-1 the bottom.
// It always holds exactly Height() rows of Width() cells.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.Reset()
	return b
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.rows = make([][]Cell, b.height)
	for y := range b.rows {
		b.rows[y] = make([]Cell, b.width)
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y). Positions off the board read as empty.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.rows[y][x]
}

func (b *Board) set(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.rows[y][x] = c
}

// Fits reports whether shape can sit with its top-left corner at (x, y).
// Every occupied cell must be inside the side walls and above the floor;
// cells above the top edge (y < 0) are never checked against occupancy.
func (b *Board) Fits(shape Shape, x, y int) bool {
	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			bx, by := x+c, y+r
			if bx < 0 || bx >= b.width || by >= b.height {
				return false
			}
			if by >= 0 && b.rows[by][bx].Filled {
				return false
			}
		}
	}
	return true
}

// Place writes the piece's occupied cells into the board in its colour.
// Cells above the top edge are dropped.
func (b *Board) Place(p Piece) {
	for _, pt := range p.Cells() {
		if pt.Y < 0 {
			continue
		}
		b.set(pt.X, pt.Y, Cell{Filled: true, Color: p.Color})
	}
}

// rowFull reports whether every cell in row y is occupied.
func (b *Board) rowFull(y int) bool {
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every fully occupied row, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := range b.rows {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullRows removes every full row in one pass and inserts the same
// number of empty rows at the top, so the remaining rows shift down in order.
// It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Cell, 0, b.height)
	for y := range b.rows {
		if !b.rowFull(y) {
			kept = append(kept, b.rows[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, b.height)
	for range cleared {
		rows = append(rows, make([]Cell, b.width))
	}
	b.rows = append(rows, kept...)
	return cleared
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// String draws the board with '#' for filled and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
