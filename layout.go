package charts

import (
	"unicode/utf8"
)

const (
	defaultLabelPadding = 1
	barWidth            = 2
	barSpacing          = 1
	barOffset           = 1
	maxExtraOffset      = 3
)

type PlotArea struct {
	Left   int
	Top    int
	Width  int
	Height int
}

func (a PlotArea) Right() int {
	return a.Left + a.Width
}

func (a PlotArea) Bottom() int {
	return a.Top + a.Height
}

func (a PlotArea) Empty() bool {
	return a.Width == 0 || a.Height == 0
}

type Placed struct {
	Pos int
	Tick
}

type Layout struct {
	Padding
	Area   PlotArea
	XTicks []Placed
	YTicks []Placed
}

// LayoutEngine sizes the margins of a canvas from the labels of the ticks
// generated for each axis and places these ticks inside the remaining area.
type LayoutEngine struct {
	Width        int
	Height       int
	ShowLabels   bool
	LabelPadding int

	X TickGenerator
	Y TickGenerator
}

func NewLayoutEngine(width, height int) LayoutEngine {
	return LayoutEngine{
		Width:        width,
		Height:       height,
		ShowLabels:   true,
		LabelPadding: defaultLabelPadding,
		X:            XTickGenerator(width),
		Y:            YTickGenerator(height),
	}
}

func (e LayoutEngine) Compute(b Bounds) Layout {
	return e.ComputeWith(b, e.X.Generate(b.MinX, b.MaxX))
}

func (e LayoutEngine) ComputeWith(b Bounds, xticks []Tick) Layout {
	return e.ComputeTicks(b, xticks, e.Y.Generate(b.MinY, b.MaxY))
}

// ComputeTicks sizes the margins from the labels of the given ticks and
// places them inside the plot area.
func (e LayoutEngine) ComputeTicks(b Bounds, xticks, yticks []Tick) Layout {
	var (
		pad = e.margins(xticks, yticks)
		trf = NewTransformer(b, e.Width, e.Height, pad)
		lay Layout
	)
	lay.Padding = pad
	lay.Area = PlotArea{
		Left:   pad.Left,
		Top:    pad.Top,
		Width:  trf.PlotWidth(),
		Height: trf.PlotHeight(),
	}
	for _, t := range xticks {
		col, ok := trf.Column(t.Value)
		if !ok || col > lay.Area.Right() {
			continue
		}
		lay.XTicks = append(lay.XTicks, Placed{Pos: col, Tick: t})
	}
	for _, t := range yticks {
		row, ok := trf.Row(t.Value)
		if !ok {
			continue
		}
		lay.YTicks = append(lay.YTicks, Placed{Pos: row, Tick: t})
	}
	return lay
}

func (e LayoutEngine) Transformer(b Bounds, lay Layout) Transformer {
	return NewTransformer(b, e.Width, e.Height, lay.Padding)
}

func (e LayoutEngine) margins(xticks, yticks []Tick) Padding {
	if !e.ShowLabels {
		return Padding{
			Left:   2,
			Right:  2,
			Top:    1,
			Bottom: 1,
		}
	}
	ywidth := labelWidth(yticks)
	if len(yticks) == 0 {
		ywidth = 3
	}
	xwidth := max(labelWidth(xticks), 1)
	return Padding{
		Left:   ywidth + e.LabelPadding + 1,
		Right:  max(xwidth/2, 1),
		Top:    1,
		Bottom: 2 + e.LabelPadding,
	}
}

func labelWidth(ticks []Tick) int {
	var w int
	for _, t := range ticks {
		w = max(w, utf8.RuneCountInString(t.Label))
	}
	return w
}

// ElementLayout describes how n discrete elements (bars, boxes) are laid out
// side by side on a line of cells.
type ElementLayout struct {
	Width   int
	Spacing int
	Offset  int
}

func (e ElementLayout) Total(n int) int {
	if n <= 0 {
		return e.Offset
	}
	return e.Offset + n*e.Width + (n-1)*e.Spacing
}

func (e ElementLayout) Position(i int) int {
	return e.Offset + i*(e.Width+e.Spacing)
}

func (e ElementLayout) Center(i int) int {
	return e.Position(i) + (e.Width-1)/2
}

// slots gives the range over which n categories spaced evenly have their
// centres on the centres of the elements, X being counted in cells from the
// left of the plot area.
func (e ElementLayout) slots(n int) Range {
	var (
		step = float64(e.Width + e.Spacing)
		from = float64(e.Center(0)) - step/2
	)
	return NewRange(from, from+float64(n)*step)
}

// Capacity gives the number of elements that fit in width cells.
func (e ElementLayout) Capacity(width int) int {
	avail := width - e.Offset
	if avail < e.Width || e.Width <= 0 {
		return 0
	}
	return (avail + e.Spacing) / (e.Width + e.Spacing)
}

// ForBars chooses the widest layout of n bars fitting in width cells. It
// starts from bars of two cells separated by one and removes the spacing,
// then shrinks the bars, as long as they do not fit. Extra room is used to
// space the bars a bit more and to centre them.
func ForBars(width, n int) ElementLayout {
	el := ElementLayout{
		Width:   barWidth,
		Spacing: barSpacing,
		Offset:  barOffset,
	}
	if n <= 0 {
		return el
	}
	if el.Total(n) > width {
		el.Spacing = 0
	}
	if el.Total(n) > width {
		el.Width = 1
		el.Offset = 0
		if gaps := width - n; gaps > 0 && n > 1 {
			el.Spacing = min(gaps/(n-1), barSpacing)
		}
		return el
	}
	if extra := width - el.Total(n); extra > 0 && n > 1 {
		el.Spacing += min(extra/(n-1), 1)
	}
	if extra := width - el.Total(n); extra > 0 {
		el.Offset += min(extra/2, maxExtraOffset)
	}
	return el
}
