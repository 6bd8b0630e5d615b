package charts

import (
	"fmt"
	"math"
	"strconv"
)

const (
	maxTickCount   = 200
	maxLabelWidth  = 12
	tickOverhang   = 2.0
	degenerateTick = 0.2
)

var (
	tickMultipliers = []float64{1, 2, 5, 10}
	tickScales      = []float64{0.1, 1, 10}
)

type Tick struct {
	Value float64
	Label string
}

// TickWeights gives the relative importance of each criterion used to score
// a candidate set of ticks.
type TickWeights struct {
	Simplicity  float64
	Coverage    float64
	Density     float64
	Formatting  float64
	Granularity float64
}

func DefaultTickWeights() TickWeights {
	return TickWeights{
		Simplicity:  0.3,
		Coverage:    3.0,
		Density:     1.0,
		Formatting:  1.0,
		Granularity: 0.2,
	}
}

func (w TickWeights) isZero() bool {
	return w == TickWeights{}
}

type TickSet struct {
	Step     float64
	Start    float64
	Decimals int
	Ticks    []Tick
	Score    float64
}

func (s TickSet) Values() []float64 {
	vs := make([]float64, 0, len(s.Ticks))
	for _, t := range s.Ticks {
		vs = append(vs, t.Value)
	}
	return vs
}

func (s TickSet) Labels() []string {
	vs := make([]string, 0, len(s.Ticks))
	for _, t := range s.Ticks {
		vs = append(vs, t.Label)
	}
	return vs
}

type TickGenerator struct {
	Target      int
	MaxDecimals int
	Weights     TickWeights
}

func DefaultTickGenerator() TickGenerator {
	return TickGenerator{
		Target:      6,
		MaxDecimals: 3,
		Weights:     DefaultTickWeights(),
	}
}

func XTickGenerator(width int) TickGenerator {
	return TickGenerator{
		Target:      clampInt(width/10, 3, 10),
		MaxDecimals: 1,
		Weights:     DefaultTickWeights(),
	}
}

func YTickGenerator(height int) TickGenerator {
	return TickGenerator{
		Target:      clampInt(height/4, 3, 8),
		MaxDecimals: 2,
		Weights:     DefaultTickWeights(),
	}
}

func (g TickGenerator) Generate(lo, hi float64) []Tick {
	return g.Search(lo, hi).Ticks
}

// Search looks for the step giving the best looking set of ticks over
// [lo, hi]. Every candidate step is a 1, 2, 5 or 10 multiple of a power of
// ten close to range/(count-1) for counts around the target.
func (g TickGenerator) Search(lo, hi float64) TickSet {
	if !isFinite(lo) || !isFinite(hi) {
		return TickSet{}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		pad := math.Abs(lo) * degenerateTick
		if pad == 0 {
			pad = 1
		}
		return g.Search(lo-pad, hi+pad)
	}
	var (
		rg     = hi - lo
		target = g.target()
		best   TickSet
		found  bool
	)
	for n := target - 2; n <= target+3; n++ {
		if n < 2 {
			continue
		}
		raw := rg / float64(n-1)
		mag := math.Pow(10, math.Floor(math.Log10(raw)))
		for _, s := range tickScales {
			for _, m := range tickMultipliers {
				step := m * mag * s
				if step <= 0 || !isFinite(step) {
					continue
				}
				set, ok := g.candidate(lo, hi, step, target)
				if !ok {
					continue
				}
				if !found || set.Score > best.Score {
					best, found = set, true
				}
			}
		}
	}
	if !found {
		return g.fallback(lo, hi)
	}
	best.Ticks = g.ticks(best, lo, hi)
	return best
}

func (g TickGenerator) candidate(lo, hi, step float64, target int) (TickSet, bool) {
	var (
		start = math.Floor(lo/step) * step
		end   = math.Ceil(hi/step) * step
		num   = math.Round((end-start)/step) + 1
	)
	if !isFinite(start) || !isFinite(end) || num < 2 || num > maxTickCount {
		return TickSet{}, false
	}
	var (
		w     = g.weights()
		dec   = stepDecimals(step)
		score float64
	)
	score += w.Simplicity * simplicity(step)
	score += w.Coverage * coverage(lo, hi, start, end)
	score += w.Density * density(int(num), target)
	score += w.Formatting * formatting(dec)
	score += w.Granularity * granularity(step)

	set := TickSet{
		Step:     step,
		Start:    start,
		Decimals: min(dec, g.maxDecimals()),
		Score:    score,
	}
	return set, true
}

func (g TickGenerator) ticks(set TickSet, lo, hi float64) []Tick {
	var (
		rg    = hi - lo
		lower = lo - tickOverhang*rg
		upper = hi + tickOverhang*rg
		k0    = math.Round(set.Start / set.Step)
		k1    = math.Ceil(hi / set.Step)
		prec  = stepDecimals(set.Step)
		round = isFinite(math.Pow(10, float64(prec)))
		list  []Tick
	)
	for k := k0; k <= k1 && len(list) < maxTickCount; k++ {
		v := k * set.Step
		if round {
			v = roundTo(v, prec)
		}
		if v < lower || v > upper {
			continue
		}
		// neighbouring multiples can collapse near the float precision
		if n := len(list); n > 0 && v <= list[n-1].Value {
			continue
		}
		list = append(list, Tick{
			Value: v,
			Label: FormatValue(v, set.Decimals),
		})
	}
	return list
}

func (g TickGenerator) fallback(lo, hi float64) TickSet {
	return TickSet{
		Start: lo,
		Step:  hi - lo,
		Ticks: []Tick{
			{Value: lo, Label: strconv.FormatFloat(lo, 'g', 3, 64)},
			{Value: hi, Label: strconv.FormatFloat(hi, 'g', 3, 64)},
		},
	}
}

func (g TickGenerator) target() int {
	return max(g.Target, 1)
}

func (g TickGenerator) maxDecimals() int {
	return max(g.MaxDecimals, 0)
}

func (g TickGenerator) weights() TickWeights {
	if g.Weights.isZero() {
		return DefaultTickWeights()
	}
	return g.Weights
}

func simplicity(step float64) float64 {
	q := step / math.Pow(10, math.Floor(math.Log10(step)))
	switch {
	case nearly(q, 1):
		return 1
	case nearly(q, 2):
		return 0.8
	case nearly(q, 5):
		return 0.6
	case nearly(q, 10):
		return 0.4
	default:
		return 0
	}
}

func coverage(dmin, dmax, tmin, tmax float64) float64 {
	rg := dmax - dmin
	span := math.Min((tmax-tmin)/rg, 2)
	over := (math.Abs(tmin-dmin) + math.Abs(tmax-dmax)) / rg
	return span - 1.5*over
}

func density(actual, target int) float64 {
	var (
		a = float64(actual)
		t = float64(target)
	)
	ratio := math.Min(a/t, t/a)
	dev := math.Min(math.Abs(a-t)/t, 1)
	return (ratio - 0.5*dev) * 2
}

func formatting(decimals int) float64 {
	switch decimals {
	case 0:
		return 0.5
	case 1:
		return 0.3
	case 2:
		return 0.1
	default:
		return -0.2
	}
}

func granularity(step float64) float64 {
	l := math.Log10(step)
	f := l - math.Floor(l)
	if f < 0.1 || f > 0.9 {
		return 0.2
	}
	return 0
}

func stepDecimals(step float64) int {
	if step >= 1 {
		return 0
	}
	return max(int(math.Ceil(-math.Log10(step)-1e-9)), 0)
}

func FormatValue(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	v = roundTo(v, decimals)
	str := strconv.FormatFloat(v, 'f', decimals, 64)
	if len(str) > maxLabelWidth {
		str = strconv.FormatFloat(v, 'g', 4, 64)
	}
	return str
}

// BinLabel renders the extent of an histogram bin: the centre for bins with
// integer edges, the edges otherwise. Half way centres are rounded away from
// zero so that consecutive bins never share a label.
func BinLabel(lo, hi float64) string {
	w := hi - lo
	switch {
	case w >= 1 && isInteger(lo) && isInteger(hi):
		return strconv.FormatFloat(math.Round((lo+hi)/2), 'f', 0, 64)
	case w >= 1:
		return fmt.Sprintf("%.0f-%.0f", lo, hi)
	default:
		return fmt.Sprintf("%.1f-%.1f", lo, hi)
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if !isFinite(r) {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b))
}

func isInteger(f float64) bool {
	return f == math.Trunc(f)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
