// Package tetris implements the falling-block puzzle: a pure board engine
// plus the Game adapter the platform drives frame by frame.
package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindT
)

// KindCount is the size of the piece catalog.
const KindCount = 7

// Shape is a piece's bounding box; true marks an occupied cell.
// Rows run top to bottom, every row has the same length.
type Shape [][]bool

type catalogEntry struct {
	name  string
	shape Shape
	color core.Color
}

var catalog = [KindCount]catalogEntry{
	KindI: {"I", Shape{
		{true, true, true, true},
	}, core.ColorCyan},
	KindJ: {"J", Shape{
		{true, false, false},
		{true, true, true},
	}, core.ColorBlue},
	KindL: {"L", Shape{
		{false, false, true},
		{true, true, true},
	}, core.ColorOrange},
	KindO: {"O", Shape{
		{true, true},
		{true, true},
	}, core.ColorYellow},
	KindS: {"S", Shape{
		{false, true, true},
		{true, true, false},
	}, core.ColorGreen},
	KindZ: {"Z", Shape{
		{true, true, false},
		{false, true, true},
	}, core.ColorRed},
	KindT: {"T", Shape{
		{false, true, false},
		{true, true, true},
	}, core.ColorMagenta},
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is in the catalog.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return catalog[k].name
}

// Shape returns a fresh copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		return nil
	}
	return catalog[k].shape.Clone()
}

// Color returns the colour the kind is drawn with.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return catalog[k].color
}

// Source is the randomness the engine draws pieces from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// PickKind chooses a kind uniformly at random.
func PickKind(src Source) Kind {
	return Kind(src.Intn(KindCount))
}

// Rows returns the number of rows in the bounding box.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the number of columns in the bounding box.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for r, row := range s {
		c[r] = append([]bool(nil), row...)
	}
	return c
}

// Rotate returns the shape turned 90 degrees clockwise. An R x C shape
// becomes C x R with rotated[c][R-1-r] = s[r][c].
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make(Shape, cols)
	for c := range rotated {
		rotated[c] = make([]bool, rows)
	}
	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = s[r][c]
		}
	}
	return rotated
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Offsets returns the occupied cells relative to the top-left of the box.
func (s Shape) Offsets() []core.Point {
	var pts []core.Point
	for r, row := range s {
		for c, filled := range row {
			if filled {
				pts = append(pts, core.Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// String draws the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
