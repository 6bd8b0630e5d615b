package charts

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"

	"github.com/midbel/slices"
)

const fullBlock = '█'

// BarChart draws one bar per category, from zero to its value. Values given
// for the same label are summed.
func BarChart(labels []string, values []float64, cfg Config, opts BarOptions) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels for %d values", ErrLength, len(labels), len(values))
	}
	s := newScene(cfg)

	var (
		keys    []string
		sums    = make(map[string]float64)
		skipped int
	)
	for i, v := range values {
		if !isFinite(v) {
			skipped++
			continue
		}
		if _, ok := sums[labels[i]]; !ok {
			keys = append(keys, labels[i])
		}
		sums[labels[i]] += v
	}
	s.skipped(skipped, "bar values")
	if len(keys) == 0 {
		return nil, ErrEmpty
	}
	keys = orderCategories(keys, opts.Order)

	var lo, hi float64
	for _, k := range keys {
		lo = math.Min(lo, sums[k])
		hi = math.Max(hi, sums[k])
	}
	b := Bounds{
		MinX: -0.5,
		MaxX: float64(len(keys)) - 0.5,
	}
	b.MinY, b.MaxY = barRange(lo, hi)
	b = b.Limit(nil, cfg.YLim)

	s.setupWith(b, categoryTicks(keys, nil))
	el := ForBars(s.area().Width, len(keys))
	if fit := el.Capacity(s.area().Width); fit < len(keys) {
		s.warn("only %d of %d categories fit in the chart", fit, len(keys))
		keys = keys[:fit]
		s.setupWith(b, categoryTicks(keys, nil))
		el = ForBars(s.area().Width, len(keys))
	}
	if len(keys) == 0 {
		return s.finish(), nil
	}
	// one unit of X per cell so that the ticks fall on the bar columns
	b.MinX, b.MaxX = 0, float64(s.area().Width)
	s.setupWith(b, categoryTicks(keys, &el))
	s.trf = s.trf.WithCategories(keys, el.slots(len(keys)))

	var (
		fg    = cfg.SeriesColor(0, 1)
		char  = opts.char(cfg)
		base  = s.baseRow(0)
		layer = s.canvas.Layer(Lines)
	)
	for _, k := range keys {
		v := sums[k]
		if !s.barVisible(v) {
			continue
		}
		pos, ok := s.trf.Resolve(CategoryPoint(k, v))
		if !ok {
			pos, ok = s.clampBar(k, v)
			if !ok {
				continue
			}
		}
		left := pos.Col - (el.Width-1)/2
		s.fillBar(layer, left, el.Width, pos.Row, base, char, fg)
	}
	return s.finish(), nil
}

// categoryTicks labels the X axis with the categories, at their index or at
// the centre of their bar when a layout is given.
func categoryTicks(keys []string, el *ElementLayout) []Tick {
	var list []Tick
	for i, k := range keys {
		t := Tick{
			Value: float64(i),
			Label: k,
		}
		if el != nil {
			t.Value = float64(el.Center(i))
		}
		list = append(list, t)
	}
	return list
}

// CountChart draws the number of occurrences of each distinct value of the
// first column of the frame.
func CountChart(df DataFrame, cfg Config, opts BarOptions) (*Chart, error) {
	if err := df.Check(1); err != nil {
		return nil, err
	}
	var (
		col     = slices.Fst(df.Columns)
		counts  = make(map[float64]float64)
		skipped int
	)
	for _, v := range col.Values {
		if !isFinite(v) {
			skipped++
			continue
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return nil, ErrEmpty
	}
	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	var (
		labels []string
		values []float64
	)
	for _, k := range keys {
		labels = append(labels, strconv.FormatFloat(k, 'f', -1, 64))
		values = append(values, counts[k])
	}
	if cfg.XLabel == "" {
		cfg.XLabel = columnName(col, 0)
	}
	ch, err := BarChart(labels, values, cfg, opts)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		ch.Warnings = append([]string{fmt.Sprintf("skipped %d non finite value(s) in %s", skipped, columnName(col, 0))}, ch.Warnings...)
	}
	return ch, nil
}

// barRange gives the Y window of a bar chart: it always includes zero and
// leaves some room above the tallest bar.
func barRange(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo, lo + 1
	}
	pad := (hi - lo) * paddingRatio
	if hi > 0 {
		hi += pad
	}
	if lo < 0 {
		lo -= pad
	}
	return lo, hi
}

func orderCategories(keys, order []string) []string {
	if len(order) == 0 {
		return keys
	}
	var (
		list []string
		seen = make(map[string]bool)
		have = make(map[string]bool)
	)
	for _, k := range keys {
		have[k] = true
	}
	for _, k := range order {
		if !have[k] || seen[k] {
			continue
		}
		list = append(list, k)
		seen[k] = true
	}
	for _, k := range keys {
		if !seen[k] {
			list = append(list, k)
		}
	}
	return list
}

// baseRow gives the row from which bars start: the row of v when it is
// visible or the nearest edge of the plot area.
func (s *scene) baseRow(v float64) int {
	area := s.area()
	if row, ok := s.trf.Row(v); ok {
		return row
	}
	if v < s.trf.MinY {
		return area.Bottom()
	}
	return area.Top
}

// barVisible reports whether a bar going from zero to v crosses the Y
// window.
func (s *scene) barVisible(v float64) bool {
	var (
		lo = math.Min(0, v)
		hi = math.Max(0, v)
	)
	return hi > s.trf.MinY && lo < s.trf.MaxY
}

// clampBar places a bar whose top is outside the Y window on the edge of the
// plot area.
func (s *scene) clampBar(label string, v float64) (ScreenPoint, bool) {
	y := math.Min(math.Max(v, s.trf.MinY), s.trf.MaxY)
	return s.trf.Resolve(CategoryPoint(label, y))
}

func (s *scene) fillBar(buf *Buffer, left, width, top, base int, char rune, fg color.Color) {
	if top == base {
		return
	}
	var (
		from = min(top, base)
		to   = max(top, base)
		axis = s.area().Bottom()
	)
	if to == axis {
		to--
	}
	if from == axis {
		from++
	}
	for row := from; row <= to; row++ {
		buf.HLine(row, left, left+width-1, char, fg)
	}
}
