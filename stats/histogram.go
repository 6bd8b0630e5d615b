package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
)

const (
	minBins = 1
	maxBins = 50
)

type Bin struct {
	Lo    float64
	Hi    float64
	Count float64
}

func (b Bin) Center() float64 {
	return (b.Lo + b.Hi) / 2
}

func (b Bin) Width() float64 {
	return b.Hi - b.Lo
}

type HistogramOptions struct {
	Bins       int
	Normalize  bool
	Cumulative bool
}

type Histogram struct {
	Bins  []Bin
	Total int
}

func (h Histogram) Max() float64 {
	var m float64
	for _, b := range h.Bins {
		m = math.Max(m, b.Count)
	}
	return m
}

func (h Histogram) Sum() float64 {
	var s float64
	for _, b := range h.Bins {
		s += b.Count
	}
	return s
}

// SturgesBins gives ceil(log2(n) + 1) bins, between 1 and 50.
func SturgesBins(n int) int {
	if n <= 1 {
		return minBins
	}
	b := int(math.Ceil(math.Log2(float64(n)) + 1))
	return min(max(b, minBins), maxBins)
}

// NewHistogram splits the range of the finite values of xs in bins of equal
// width. The upper edge of the last bin is inclusive.
func NewHistogram(xs []float64, opts HistogramOptions) (Histogram, error) {
	var h Histogram
	xs, _ = Finite(xs)
	if len(xs) == 0 {
		return h, ErrEmpty
	}
	h.Total = len(xs)

	lo, hi := mstats.Bounds(xs)
	if lo == hi {
		h.Bins = []Bin{
			{Lo: lo - 0.5, Hi: hi + 0.5, Count: float64(len(xs))},
		}
		return h.finish(opts), nil
	}
	n := opts.Bins
	if n <= 0 {
		n = SturgesBins(len(xs))
	}

	lh := mstats.NewLinearHist(lo, hi, n)
	for _, x := range xs {
		lh.Add(x)
	}
	under, counts, over := lh.Counts()
	width := (hi - lo) / float64(n)
	for i, c := range counts {
		b := Bin{
			Lo:    lo + float64(i)*width,
			Hi:    lo + float64(i+1)*width,
			Count: float64(c),
		}
		h.Bins = append(h.Bins, b)
	}
	h.Bins[0].Count += float64(under)
	h.Bins[n-1].Count += float64(over)
	h.Bins[n-1].Hi = hi
	return h.finish(opts), nil
}

func (h Histogram) finish(opts HistogramOptions) Histogram {
	if opts.Normalize && h.Total > 0 {
		for i := range h.Bins {
			h.Bins[i].Count /= float64(h.Total)
		}
	}
	if opts.Cumulative {
		for i := 1; i < len(h.Bins); i++ {
			h.Bins[i].Count += h.Bins[i-1].Count
		}
	}
	return h
}
