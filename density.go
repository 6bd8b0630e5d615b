package charts

import (
	"fmt"
	"math"

	"github.com/midbel/termcharts/stats"
)

// DensityChart draws the estimated density of each column of the frame.
func DensityChart(df DataFrame, cfg Config, opts stats.KDEOptions) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := df.Check(1); err != nil {
		return nil, err
	}
	var (
		s      = newScene(cfg)
		curves []Series
		all    []Point
		top    float64
	)
	for i, c := range df.Columns {
		name := columnName(c, i)
		xs, cut := stats.Finite(c.Values)
		s.skipped(cut, name)
		curve, err := stats.Density(xs, opts)
		if err != nil {
			s.warn("%s: %s", name, err)
			continue
		}
		sr := NewSeries(name, curve.Xs, curve.Ys)
		curves = append(curves, sr)
		all = append(all, sr.Points...)
		top = max(top, curve.Max())
	}
	if len(curves) == 0 {
		return nil, fmt.Errorf("%w: no column can be estimated", ErrEmpty)
	}
	var b Bounds
	b.MinX, b.MaxX = bounds(all, func(p Point) float64 { return p.X })
	b.MinY = 0
	b.MaxY = top * (1 + paddingRatio)
	if b.MaxY <= 0 {
		b.MaxY = 1
	}
	s.setup(b.Limit(cfg.XLim, cfg.YLim))

	var (
		style   = StyleDefault
		entries []legendEntry
	)
	for i, sr := range curves {
		fg := cfg.SeriesColor(i, len(curves))
		s.drawLine(sr, style, fg, false)
		entries = append(entries, legendEntry{
			Name:   sr.Name,
			Symbol: style.Point,
			Color:  fg,
		})
	}
	s.legend(entries)
	return s.finish(), nil
}

func bounds(points []Point, get func(Point) float64) (float64, float64) {
	var (
		lo = math.Inf(1)
		hi = math.Inf(-1)
	)
	for _, p := range points {
		v := get(p)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
