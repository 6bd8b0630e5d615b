package charts

import (
	"unicode/utf8"
)

const (
	cornerChar  = '└'
	rightTick   = '┤'
	bottomTick  = '┬'
	axisHozChar = '─'
	axisVerChar = '│'
)

type Orientation int

const (
	OrientBottom Orientation = 1 << iota
	OrientLeft
)

// Axis draws one side of the plot area: its line on the axes layer and the
// labels of its ticks on the labels layer.
type Axis struct {
	Orientation
	Ticks          []Placed
	WithInnerTicks bool
	WithLabelTicks bool
}

func BottomAxis(ticks []Placed, labels bool) Axis {
	return Axis{
		Orientation:    OrientBottom,
		Ticks:          ticks,
		WithInnerTicks: true,
		WithLabelTicks: labels,
	}
}

func LeftAxis(ticks []Placed, labels bool) Axis {
	return Axis{
		Orientation:    OrientLeft,
		Ticks:          ticks,
		WithInnerTicks: true,
		WithLabelTicks: labels,
	}
}

func (a Axis) Render(cv *Canvas, area PlotArea) {
	switch a.Orientation {
	case OrientLeft:
		a.renderLeft(cv, area)
	case OrientBottom:
		a.renderBottom(cv, area)
	default:
	}
}

func (a Axis) renderLeft(cv *Canvas, area PlotArea) {
	var (
		col    = area.Left - 1
		axes   = cv.Layer(Axes)
		labels = cv.Layer(Labels)
	)
	axes.VLine(col, area.Top, area.Bottom()-1, axisVerChar, nil)
	for _, t := range a.Ticks {
		if a.WithInnerTicks && t.Pos < area.Bottom() {
			axes.Set(col, t.Pos, rightTick)
		}
		if a.WithLabelTicks {
			labels.TextRight(col-1, t.Pos, t.Label, nil)
		}
	}
}

func (a Axis) renderBottom(cv *Canvas, area PlotArea) {
	var (
		row    = area.Bottom()
		axes   = cv.Layer(Axes)
		labels = cv.Layer(Labels)
		last   = -1
	)
	axes.HLine(row, area.Left, area.Right(), axisHozChar, nil)
	for _, t := range a.Ticks {
		if a.WithInnerTicks {
			axes.Set(t.Pos, row, bottomTick)
		}
		if !a.WithLabelTicks {
			continue
		}
		var (
			size  = utf8.RuneCountInString(t.Label)
			start = t.Pos - size/2
		)
		if start <= last || start < 0 || start+size > cv.Width {
			continue
		}
		labels.TextCenter(t.Pos, row+1, t.Label, nil)
		last = start + size
	}
}

func drawCorner(cv *Canvas, area PlotArea) {
	cv.Layer(Axes).Set(area.Left-1, area.Bottom(), cornerChar)
}
