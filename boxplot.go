package charts

import (
	"image/color"
	"math"

	"github.com/midbel/termcharts/stats"
)

const (
	boxFill     = '░'
	medianHoz   = '━'
	medianVer   = '┃'
	outlierChar = '●'
	meanChar    = '+'
	maxBoxWidth = 9
	maxBoxRows  = 3
)

type namedBox struct {
	Name string
	stats.BoxStats
}

// BoxChart draws one box per column of the frame.
func BoxChart(df DataFrame, cfg Config, opts BoxOptions) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := df.Check(1); err != nil {
		return nil, err
	}
	var (
		s      = newScene(cfg)
		boxes  []namedBox
		lo, hi = math.Inf(1), math.Inf(-1)
	)
	for i, c := range df.Columns {
		name := columnName(c, i)
		xs, cut := stats.Finite(c.Values)
		s.skipped(cut, name)
		bs, err := stats.Box(xs, opts.Fence)
		if err != nil {
			s.warn("%s: %s", name, err)
			continue
		}
		boxes = append(boxes, namedBox{Name: name, BoxStats: bs})
		lo = math.Min(lo, bs.Min)
		hi = math.Max(hi, bs.Max)
	}
	if len(boxes) == 0 {
		return nil, ErrEmpty
	}
	lo, hi = PadRange(lo, hi)
	var (
		n     = len(boxes)
		ticks []Tick
		b     Bounds
	)
	if opts.Horizontal {
		for i, x := range boxes {
			ticks = append(ticks, Tick{Value: float64(n - 1 - i), Label: x.Name})
		}
		b = Bounds{MinX: lo, MaxX: hi, MinY: -0.5, MaxY: float64(n) - 0.5}
		b = b.Limit(cfg.XLim, nil)
		s.setupTicks(b, nil, ticks)
	} else {
		for i, x := range boxes {
			ticks = append(ticks, Tick{Value: float64(i), Label: x.Name})
		}
		b = Bounds{MinX: -0.5, MaxX: float64(n) - 0.5, MinY: lo, MaxY: hi}
		b = b.Limit(nil, cfg.YLim)
		s.setupTicks(b, ticks, nil)
	}
	for i, x := range boxes {
		fg := cfg.SeriesColor(i, n)
		if opts.Horizontal {
			s.drawHorizontalBox(float64(n-1-i), n, x.BoxStats, fg, opts.Mean)
		} else {
			s.drawVerticalBox(float64(i), n, x.BoxStats, fg, opts.Mean)
		}
	}
	return s.finish(), nil
}

func (s *scene) drawVerticalBox(x float64, n int, bs stats.BoxStats, fg color.Color, mean bool) {
	center, ok := s.trf.Column(x)
	if !ok {
		return
	}
	var (
		area   = s.area()
		width  = boxSize(area.Width/n-2, maxBoxWidth)
		left   = center - width/2
		right  = left + width - 1
		lines  = s.canvas.Layer(Lines)
		points = s.canvas.Layer(Points)
	)
	if bs.UpperWhisker > bs.Q3 {
		if top, bottom, ok := s.rowSpan(bs.Q3, bs.UpperWhisker); ok {
			lines.VLine(center, top, bottom, axisVerChar, fg)
		}
		if r, ok := s.trf.Row(bs.UpperWhisker); ok {
			lines.HLine(r, center-width/4, center+width/4, axisHozChar, fg)
		}
	}
	if bs.LowerWhisker < bs.Q1 {
		if top, bottom, ok := s.rowSpan(bs.LowerWhisker, bs.Q1); ok {
			lines.VLine(center, top, bottom, axisVerChar, fg)
		}
		if r, ok := s.trf.Row(bs.LowerWhisker); ok {
			lines.HLine(r, center-width/4, center+width/4, axisHozChar, fg)
		}
	}
	if top, bottom, ok := s.rowSpan(bs.Q1, bs.Q3); ok {
		lines.Fill(left, top, width, bottom-top+1, boxFill, fg)
	}
	if r, ok := s.trf.Row(bs.Median); ok {
		lines.HLine(r, left, right, medianHoz, fg)
	}
	for _, o := range bs.Outliers {
		if r, ok := s.trf.Row(o); ok {
			points.Paint(center, r, outlierChar, fg)
		}
	}
	if mean {
		if r, ok := s.trf.Row(bs.Mean); ok {
			points.Paint(center, r, meanChar, fg)
		}
	}
}

func (s *scene) drawHorizontalBox(y float64, n int, bs stats.BoxStats, fg color.Color, mean bool) {
	center, ok := s.trf.Row(y)
	if !ok {
		return
	}
	var (
		area   = s.area()
		height = boxSize(area.Height/n-1, maxBoxRows)
		top    = center - height/2
		bottom = top + height - 1
		lines  = s.canvas.Layer(Lines)
		points = s.canvas.Layer(Points)
	)
	if bs.LowerWhisker < bs.Q1 {
		if left, right, ok := s.colSpan(bs.LowerWhisker, bs.Q1); ok {
			lines.HLine(center, left, right, axisHozChar, fg)
		}
		if c, ok := s.trf.Column(bs.LowerWhisker); ok {
			lines.VLine(c, top, bottom, axisVerChar, fg)
		}
	}
	if bs.UpperWhisker > bs.Q3 {
		if left, right, ok := s.colSpan(bs.Q3, bs.UpperWhisker); ok {
			lines.HLine(center, left, right, axisHozChar, fg)
		}
		if c, ok := s.trf.Column(bs.UpperWhisker); ok {
			lines.VLine(c, top, bottom, axisVerChar, fg)
		}
	}
	if left, right, ok := s.colSpan(bs.Q1, bs.Q3); ok {
		lines.Fill(left, top, right-left+1, height, boxFill, fg)
	}
	if c, ok := s.trf.Column(bs.Median); ok {
		lines.VLine(c, top, bottom, medianVer, fg)
	}
	for _, o := range bs.Outliers {
		if c, ok := s.trf.Column(o); ok {
			points.Paint(c, center, outlierChar, fg)
		}
	}
	if mean {
		if c, ok := s.trf.Column(bs.Mean); ok {
			points.Paint(c, center, meanChar, fg)
		}
	}
}

// rowSpan clips [lo, hi] to the Y window and gives the rows of its ends.
func (s *scene) rowSpan(lo, hi float64) (int, int, bool) {
	lo = math.Max(lo, s.trf.MinY)
	hi = math.Min(hi, s.trf.MaxY)
	if lo > hi {
		return 0, 0, false
	}
	top, ok1 := s.trf.Row(hi)
	bottom, ok2 := s.trf.Row(lo)
	return top, bottom, ok1 && ok2
}

// colSpan clips [lo, hi] to the X window and gives the columns of its ends.
func (s *scene) colSpan(lo, hi float64) (int, int, bool) {
	lo = math.Max(lo, s.trf.MinX)
	hi = math.Min(hi, s.trf.MaxX)
	if lo > hi {
		return 0, 0, false
	}
	left, ok1 := s.trf.Column(lo)
	right, ok2 := s.trf.Column(hi)
	return left, right, ok1 && ok2
}

// boxSize keeps the size of a box odd so that it is centred on its axis.
func boxSize(avail, limit int) int {
	size := min(max(avail, 1), limit)
	if size%2 == 0 {
		size--
	}
	return max(size, 1)
}
