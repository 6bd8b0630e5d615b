package charts

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

const blank = ' '

type Priority int

const (
	Axes Priority = iota + 2
	Lines
	Points
	Labels
)

const layerCount = int(Labels-Axes) + 1

func (p Priority) String() string {
	switch p {
	case Axes:
		return "axes"
	case Lines:
		return "lines"
	case Points:
		return "points"
	case Labels:
		return "labels"
	default:
		return "unknown"
	}
}

func (p Priority) index() (int, bool) {
	i := int(p - Axes)
	return i, i >= 0 && i < layerCount
}

// Buffer is a grid of characters, each one optionally carrying a color.
// Writes outside of the grid are ignored.
type Buffer struct {
	Width  int
	Height int

	cells  []rune
	colors []color.Color
}

func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := Buffer{
		Width:  width,
		Height: height,
		cells:  make([]rune, width*height),
		colors: make([]color.Color, width*height),
	}
	for i := range b.cells {
		b.cells[i] = blank
	}
	return &b
}

func (b *Buffer) offset(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= b.Width || row >= b.Height {
		return 0, false
	}
	return row*b.Width + col, true
}

func (b *Buffer) Set(col, row int, r rune) {
	b.Paint(col, row, r, nil)
}

func (b *Buffer) Paint(col, row int, r rune, c color.Color) {
	ix, ok := b.offset(col, row)
	if !ok {
		return
	}
	b.cells[ix] = r
	b.colors[ix] = c
}

func (b *Buffer) At(col, row int) (rune, color.Color) {
	ix, ok := b.offset(col, row)
	if !ok {
		return blank, nil
	}
	return b.cells[ix], b.colors[ix]
}

func (b *Buffer) Blank(col, row int) bool {
	r, _ := b.At(col, row)
	return r == blank
}

func (b *Buffer) Text(col, row int, str string, c color.Color) {
	for _, r := range str {
		b.Paint(col, row, r, c)
		col++
	}
}

// TextRight writes str so that its last character lands on col.
func (b *Buffer) TextRight(col, row int, str string, c color.Color) {
	b.Text(col-utf8.RuneCountInString(str)+1, row, str, c)
}

// TextCenter writes str centered on col.
func (b *Buffer) TextCenter(col, row int, str string, c color.Color) {
	b.Text(col-utf8.RuneCountInString(str)/2, row, str, c)
}

func (b *Buffer) HLine(row, from, to int, r rune, c color.Color) {
	if from > to {
		from, to = to, from
	}
	for col := from; col <= to; col++ {
		b.Paint(col, row, r, c)
	}
}

func (b *Buffer) VLine(col, from, to int, r rune, c color.Color) {
	if from > to {
		from, to = to, from
	}
	for row := from; row <= to; row++ {
		b.Paint(col, row, r, c)
	}
}

func (b *Buffer) Fill(col, row, width, height int, r rune, c color.Color) {
	for j := row; j < row+height; j++ {
		for i := col; i < col+width; i++ {
			b.Paint(i, j, r, c)
		}
	}
}

func (b *Buffer) Lines() []string {
	list := make([]string, 0, b.Height)
	for row := 0; row < b.Height; row++ {
		line := b.cells[row*b.Width : (row+1)*b.Width]
		list = append(list, strings.TrimRight(string(line), " "))
	}
	return list
}

func (b *Buffer) String() string {
	var str strings.Builder
	for _, line := range b.Lines() {
		str.WriteString(line)
		str.WriteString("\n")
	}
	return str.String()
}

// Format renders the buffer like String but hands each run of consecutive
// cells sharing the same color to the painter.
func (b *Buffer) Format(p Painter) string {
	if p == nil {
		p = Plain()
	}
	var str strings.Builder
	for row := 0; row < b.Height; row++ {
		str.WriteString(b.formatRow(row, p))
		str.WriteString("\n")
	}
	return str.String()
}

func (b *Buffer) formatRow(row int, p Painter) string {
	var (
		base = row * b.Width
		last = -1
	)
	for col := b.Width - 1; col >= 0; col-- {
		if b.cells[base+col] != blank {
			last = col
			break
		}
	}
	var (
		str   strings.Builder
		run   []rune
		curr  color.Color
		flush = func() {
			if len(run) == 0 {
				return
			}
			str.WriteString(p.Paint(string(run), curr))
			run = run[:0]
		}
	)
	for col := 0; col <= last; col++ {
		var (
			r = b.cells[base+col]
			c = b.colors[base+col]
		)
		if r == blank {
			c = nil
		}
		if !sameColor(c, curr) {
			flush()
			curr = c
		}
		run = append(run, r)
	}
	flush()
	return str.String()
}

// Canvas stacks one buffer per priority. Buffers are created on first use.
type Canvas struct {
	Width  int
	Height int

	layers [layerCount]*Buffer
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

func (c *Canvas) Layer(p Priority) *Buffer {
	ix, ok := p.index()
	if !ok {
		return NewBuffer(c.Width, c.Height)
	}
	if c.layers[ix] == nil {
		c.layers[ix] = NewBuffer(c.Width, c.Height)
	}
	return c.layers[ix]
}

// Flatten merges the layers by increasing priority. A non blank cell of a
// layer replaces the character and the color of the cell below it.
func (c *Canvas) Flatten() *Buffer {
	res := NewBuffer(c.Width, c.Height)
	for _, layer := range c.layers {
		if layer == nil {
			continue
		}
		for i, r := range layer.cells {
			if r == blank {
				continue
			}
			res.cells[i] = r
			res.colors[i] = layer.colors[i]
		}
	}
	return res
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
