package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/midbel/slices"
)

type Fence int

const (
	FenceIQR Fence = iota
	FenceFar
	FenceNone
)

func ParseFence(str string) (Fence, error) {
	switch strings.ToLower(str) {
	case "", "iqr", "1.5":
		return FenceIQR, nil
	case "far", "3", "3.0":
		return FenceFar, nil
	case "none", "off":
		return FenceNone, nil
	default:
		return FenceIQR, fmt.Errorf("%s: unknown outlier fence", str)
	}
}

func (f Fence) Multiplier() float64 {
	switch f {
	case FenceIQR:
		return 1.5
	case FenceFar:
		return 3.0
	default:
		return math.Inf(1)
	}
}

func (f Fence) String() string {
	switch f {
	case FenceIQR:
		return "iqr"
	case FenceFar:
		return "far"
	case FenceNone:
		return "none"
	default:
		return "unknown"
	}
}

type BoxStats struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	IQR    float64

	LowerWhisker float64
	UpperWhisker float64
	Outliers     []float64
	Count        int
}

// Percentile gives the value at p of sorted, interpolating linearly between
// the two samples around p*(n-1).
func Percentile(sorted []float64, p float64) float64 {
	switch n := len(sorted); n {
	case 0:
		return math.NaN()
	case 1:
		return slices.Fst(sorted)
	}
	p = math.Min(math.Max(p, 0), 1)
	var (
		ix   = p * float64(len(sorted)-1)
		lo   = int(math.Floor(ix))
		hi   = int(math.Ceil(ix))
		frac = ix - float64(lo)
	)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Box computes the five number summary of the finite values of xs. Samples
// further than the fence from the quartiles are reported as outliers and
// the whiskers stop at the most extreme sample inside the fences.
func Box(xs []float64, fence Fence) (BoxStats, error) {
	var bs BoxStats
	xs, _ = Finite(xs)
	if len(xs) == 0 {
		return bs, ErrEmpty
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	bs.Count = len(sorted)
	bs.Min = slices.Fst(sorted)
	bs.Max = slices.Lst(sorted)
	bs.Mean = mstats.Mean(sorted)
	bs.Q1 = Percentile(sorted, 0.25)
	bs.Median = Percentile(sorted, 0.5)
	bs.Q3 = Percentile(sorted, 0.75)
	bs.IQR = bs.Q3 - bs.Q1

	var (
		mul   = fence.Multiplier()
		lower = math.Inf(-1)
		upper = math.Inf(1)
	)
	if !math.IsInf(mul, 0) {
		lower = bs.Q1 - mul*bs.IQR
		upper = bs.Q3 + mul*bs.IQR
	}
	bs.LowerWhisker = math.NaN()
	bs.UpperWhisker = math.NaN()
	for _, x := range sorted {
		if x < lower || x > upper {
			bs.Outliers = append(bs.Outliers, x)
			continue
		}
		if math.IsNaN(bs.LowerWhisker) {
			bs.LowerWhisker = x
		}
		bs.UpperWhisker = x
	}
	if math.IsNaN(bs.LowerWhisker) {
		bs.LowerWhisker = bs.Min
		bs.UpperWhisker = bs.Max
	}
	bs.LowerWhisker = math.Min(bs.LowerWhisker, bs.Q1)
	bs.UpperWhisker = math.Max(bs.UpperWhisker, bs.Q3)
	return bs, nil
}
