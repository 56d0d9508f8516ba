package terminal

import (
	"github.com/automoto/squareboy/shared/gamemath"
	"github.com/automoto/squareboy/shared/simulation"
)

// Cell is what one terminal cell shows.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSolid
	CellActor
)

// Frame is a grid of cells, one per tile, in row-major order.
type Frame struct {
	Cols, Rows int
	Cells      []Cell
}

// NewFrame returns an empty frame.
func NewFrame(cols, rows int) Frame {
	return Frame{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
}

// At returns the cell at col, row.
func (f Frame) At(col, row int) Cell {
	return f.Cells[row*f.Cols+col]
}

// Rasterize maps drawables onto a cols by rows grid of tileSize cells. A
// rectangle covers every cell whose centre lies inside it, so a tile-sized
// rectangle covers exactly one cell wherever scrolling has put it. Later
// drawables overwrite earlier ones.
func Rasterize(drawables []simulation.Drawable, tileSize, cols, rows int) Frame {
	f := NewFrame(cols, rows)
	for _, d := range drawables {
		c := CellSolid
		if d.Kind == simulation.KindActor {
			c = CellActor
		}
		c0, c1 := cover(d.Rect.Horizontal(), tileSize)
		r0, r1 := cover(d.Rect.Vertical(), tileSize)
		for row := max(r0, 0); row < min(r1, rows); row++ {
			for col := max(c0, 0); col < min(c1, cols); col++ {
				f.Cells[row*cols+col] = c
			}
		}
	}
	return f
}

// cover returns the half-open range of cells whose centres lie in s.
func cover(s gamemath.Span, tileSize int) (int, int) {
	half := tileSize / 2
	return ceilDiv(s.Lo-half, tileSize), ceilDiv(s.Hi-half, tileSize)
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
