package renderer

import "pong/internal/pong"

// Viewport maps field coordinates onto a grid of character cells.
type Viewport struct {
	Field pong.Field
	Cols  int
	Rows  int
}

func (v Viewport) Cell(x, y int) (col, row int) {
	if v.Field.Width <= 0 || v.Field.Height <= 0 {
		return 0, 0
	}
	return x * v.Cols / v.Field.Width, y * v.Rows / v.Field.Height
}

func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// CellRect returns the half-open cell range covered by r, clipped to the
// grid. Every non-empty rect covers at least one cell.
func (v Viewport) CellRect(r pong.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.Cell(r.X, r.Y)
	c1, r1 = v.Cell(r.X+r.Width, r.Y+r.Height)
	if r.Width > 0 && c1 == c0 {
		c1++
	}
	if r.Height > 0 && r1 == r0 {
		r1++
	}
	return max(c0, 0), max(r0, 0), min(c1, v.Cols), min(r1, v.Rows)
}
