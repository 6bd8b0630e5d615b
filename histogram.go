package charts

import (
	"math"
	"unicode/utf8"

	"github.com/midbel/slices"
	"github.com/midbel/termcharts/stats"
)

func HistogramChart(df DataFrame, cfg Config, opts stats.HistogramOptions) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := df.Check(1); err != nil {
		return nil, err
	}
	var (
		s       = newScene(cfg)
		col     = slices.Fst(df.Columns)
		xs, cut = stats.Finite(col.Values)
	)
	s.skipped(cut, columnName(col, 0))
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	hist, err := stats.NewHistogram(xs, opts)
	if err != nil {
		return nil, err
	}
	var (
		first = slices.Fst(hist.Bins)
		last  = slices.Lst(hist.Bins)
		top   = hist.Max()
	)
	if top <= 0 {
		top = 1
	}
	b := Bounds{
		MinX: first.Lo,
		MaxX: last.Hi,
		MinY: 0,
		MaxY: top * (1 + paddingRatio),
	}
	b = b.Limit(cfg.XLim, cfg.YLim)
	s.setupWith(b, binTicks(hist, cfg.Width))

	var (
		layer = s.canvas.Layer(Lines)
		fg    = cfg.SeriesColor(0, 1)
		base  = s.baseRow(0)
		area  = s.area()
		char  = cfg.fillChar()
	)
	for _, bin := range hist.Bins {
		if bin.Hi <= s.trf.MinX || bin.Lo >= s.trf.MaxX || !s.barVisible(bin.Count) {
			continue
		}
		var (
			left, ok1  = s.binColumn(bin.Lo)
			right, ok2 = s.binColumn(bin.Hi)
		)
		if !ok1 || !ok2 {
			continue
		}
		width := max(right-left, 1)
		if left+width > area.Right() {
			width = max(area.Right()-left, 1)
		}
		row := s.barTop(bin.Count)
		s.fillBar(layer, left, width, row, base, char, fg)
	}
	return s.finish(), nil
}

// binTicks labels each bin at its centre when all the labels can be written
// side by side, otherwise the axis gets numeric ticks.
func binTicks(h stats.Histogram, width int) []Tick {
	var (
		ticks []Tick
		size  int
	)
	for _, b := range h.Bins {
		t := Tick{
			Value: b.Center(),
			Label: BinLabel(b.Lo, b.Hi),
		}
		size += utf8.RuneCountInString(t.Label) + 1
		ticks = append(ticks, t)
	}
	if size > width*3/4 {
		return nil
	}
	return ticks
}

func (s *scene) binColumn(x float64) (int, bool) {
	x = math.Min(math.Max(x, s.trf.MinX), s.trf.MaxX)
	return s.trf.Column(x)
}

func (s *scene) barTop(v float64) int {
	v = math.Min(math.Max(v, s.trf.MinY), s.trf.MaxY)
	row, ok := s.trf.Row(v)
	if !ok {
		return s.area().Bottom()
	}
	return row
}
