package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a tetromino at a board position. X, Y is the top-left of its
// bounding box and may be negative while the piece enters from above.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece creates a piece of the given kind in spawn orientation at (x, y).
func NewPiece(k Kind, x, y int) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Shape(),
		Color: k.Color(),
		X:     x,
		Y:     y,
	}
}

// Cells returns the board coordinates of every occupied cell.
func (p Piece) Cells() []core.Point {
	offsets := p.Shape.Offsets()
	for i := range offsets {
		offsets[i] = offsets[i].Add(p.X, p.Y)
	}
	return offsets
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned clockwise about the unchanged origin.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// SpawnX centres a shape of the given width on a board of boardWidth.
func SpawnX(boardWidth int, s Shape) int {
	return boardWidth/2 - s.Cols()/2
}
