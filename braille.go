package charts

import (
	"image/color"
)

const (
	brailleBase = 0x2800
	dotsX       = 2
	dotsY       = 4
)

var brailleBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// BrailleGrid is a grid of dots, each cell of the terminal holding two dots
// horizontally and four vertically.
type BrailleGrid struct {
	Cols int
	Rows int

	cells []uint8
}

func NewBrailleGrid(cols, rows int) *BrailleGrid {
	cols, rows = max(cols, 0), max(rows, 0)
	return &BrailleGrid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]uint8, cols*rows),
	}
}

func (g *BrailleGrid) DotWidth() int {
	return g.Cols * dotsX
}

func (g *BrailleGrid) DotHeight() int {
	return g.Rows * dotsY
}

func (g *BrailleGrid) Set(x, y int) {
	if x < 0 || y < 0 || x >= g.DotWidth() || y >= g.DotHeight() {
		return
	}
	var (
		col = x / dotsX
		row = y / dotsY
	)
	g.cells[row*g.Cols+col] |= brailleBits[y%dotsY][x%dotsX]
}

func (g *BrailleGrid) Line(x0, y0, x1, y1 int) {
	for _, p := range Bresenham(ScreenPoint{Col: x0, Row: y0}, ScreenPoint{Col: x1, Row: y1}) {
		g.Set(p.Col, p.Row)
	}
}

// Each calls fn for every cell having at least one dot set.
func (g *BrailleGrid) Each(fn func(col, row int, r rune)) {
	for i, bits := range g.cells {
		if bits == 0 {
			continue
		}
		fn(i%g.Cols, i/g.Cols, rune(brailleBase+int(bits)))
	}
}

// Draw copies the dots of the grid on buf, the first cell of the grid being
// placed at (left, top). Cells already used in skip are left untouched.
func (g *BrailleGrid) Draw(buf *Buffer, left, top int, c color.Color, skip *Buffer) {
	g.Each(func(col, row int, r rune) {
		col, row = col+left, row+top
		if skip != nil && !skip.Blank(col, row) {
			return
		}
		buf.Paint(col, row, r, c)
	})
}
