package charts

import (
	"math"
)

type ScreenPoint struct {
	Col int
	Row int
}

// Transformer converts coordinates between data space and the cells of a
// canvas of Width x Height cells, the plot area being the canvas minus its
// padding.
type Transformer struct {
	Bounds
	Padding
	Width  int
	Height int

	x    Scaler
	y    Scaler
	cats *CategoryScaler
}

func NewTransformer(b Bounds, width, height int, pad Padding) Transformer {
	t := Transformer{
		Bounds:  b,
		Padding: pad,
		Width:   width,
		Height:  height,
	}
	t.x = b.xScaler()
	t.y = b.yScaler()
	return t
}

// WithCategories makes the transformer resolve Category coordinates by
// spacing the given labels evenly over rg, a range of the X axis.
func (t Transformer) WithCategories(labels []string, rg Range) Transformer {
	cs := NewCategoryScaler(labels, rg)
	t.cats = &cs
	return t
}

func (t Transformer) PlotWidth() int {
	return max(t.Width-t.Padding.Horizontal(), 0)
}

func (t Transformer) PlotHeight() int {
	return max(t.Height-t.Padding.Vertical(), 0)
}

func (t Transformer) Degenerate() bool {
	return t.PlotWidth() == 0 || t.PlotHeight() == 0 || !t.Bounds.Valid()
}

func (t Transformer) Normalize(p Point) (float64, float64, bool) {
	if t.Degenerate() || !p.Finite() {
		return 0, 0, false
	}
	var (
		nx = t.x.Normalize(p.X)
		ny = t.y.Normalize(p.Y)
	)
	if !inUnit(nx) || !inUnit(ny) {
		return 0, 0, false
	}
	return nx, ny, true
}

func (t Transformer) DataToScreen(p Point) (ScreenPoint, bool) {
	var pos ScreenPoint
	nx, ny, ok := t.Normalize(p)
	if !ok {
		return pos, ok
	}
	pos.Col = t.Left + int(math.Round(nx*float64(t.PlotWidth())))
	pos.Row = t.Top + int(math.Round((1-ny)*float64(t.PlotHeight())))
	if pos.Col >= t.Width || pos.Row >= t.Height {
		return pos, false
	}
	return pos, true
}

func (t Transformer) ScreenToData(pos ScreenPoint) Point {
	var (
		pw = float64(t.PlotWidth())
		ph = float64(t.PlotHeight())
		pt Point
	)
	if pw == 0 || ph == 0 {
		return Point{X: t.MinX, Y: t.MinY}
	}
	nx := float64(pos.Col-t.Left) / pw
	ny := 1 - float64(pos.Row-t.Top)/ph
	pt.X = t.MinX + nx*t.Bounds.Width()
	pt.Y = t.MinY + ny*t.Bounds.Height()
	return pt
}

func (t Transformer) Resolve(c Coordinate) (ScreenPoint, bool) {
	switch c := c.(type) {
	case Point:
		return t.DataToScreen(c)
	case Category:
		if t.cats == nil {
			return ScreenPoint{}, false
		}
		x, ok := t.cats.Scale(c.Label)
		if !ok {
			return ScreenPoint{}, false
		}
		return t.DataToScreen(NumberPoint(x, c.Y))
	default:
		return ScreenPoint{}, false
	}
}

// Column returns the column of a value on the X axis ignoring Y.
func (t Transformer) Column(x float64) (int, bool) {
	pos, ok := t.DataToScreen(NumberPoint(x, t.MinY))
	return pos.Col, ok
}

// Row returns the row of a value on the Y axis ignoring X.
func (t Transformer) Row(y float64) (int, bool) {
	pos, ok := t.DataToScreen(NumberPoint(t.MinX, y))
	return pos.Row, ok
}

func inUnit(f float64) bool {
	return f >= 0 && f <= 1
}

// DataToDots maps p onto the braille dots covering the canvas, each cell
// holding two dots horizontally and four vertically.
func (t Transformer) DataToDots(p Point) (int, int, bool) {
	nx, ny, ok := t.Normalize(p)
	if !ok {
		return 0, 0, false
	}
	var (
		col = float64(t.Left) + nx*float64(t.PlotWidth())
		row = float64(t.Top) + (1-ny)*float64(t.PlotHeight())
		x   = int(math.Round(col * dotsX))
		y   = int(math.Round(row * dotsY))
	)
	x = min(x, t.Width*dotsX-1)
	y = min(y, t.Height*dotsY-1)
	return x, y, true
}
