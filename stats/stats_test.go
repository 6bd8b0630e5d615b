package stats

import (
	"errors"
	"math"
	"testing"
)

func TestFinite(t *testing.T) {
	xs, skipped := Finite([]float64{1, math.NaN(), 2, math.Inf(1), math.Inf(-1), 3})
	if skipped != 3 {
		t.Errorf("skipped: want 3, got %d", skipped)
	}
	if len(xs) != 3 || xs[0] != 1 || xs[2] != 3 {
		t.Errorf("unexpected values: %v", xs)
	}
}

func TestSturgesBins(t *testing.T) {
	tests := []struct {
		Count int
		Want  int
	}{
		{Count: 0, Want: 1},
		{Count: 1, Want: 1},
		{Count: 2, Want: 2},
		{Count: 9, Want: 5},
		{Count: 100, Want: 8},
		{Count: 1 << 60, Want: 50},
	}
	for _, c := range tests {
		got := SturgesBins(c.Count)
		if got != c.Want {
			t.Errorf("SturgesBins(%d): want %d, got %d", c.Count, c.Want, got)
		}
	}
}

func TestHistogram(t *testing.T) {
	xs := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	h, err := NewHistogram(xs, HistogramOptions{Bins: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Bins) != 5 {
		t.Fatalf("bins: want 5, got %d", len(h.Bins))
	}
	if h.Sum() != 9 || h.Total != 9 {
		t.Errorf("total: want 9, got %f (%d)", h.Sum(), h.Total)
	}
	want := []float64{1, 2, 3, 2, 1}
	for i, b := range h.Bins {
		if b.Count != want[i] {
			t.Errorf("bin %d: want %f, got %f", i, want[i], b.Count)
		}
	}
	if last := h.Bins[len(h.Bins)-1]; last.Hi != 5 {
		t.Errorf("last edge: want 5, got %f", last.Hi)
	}
}

func TestHistogramTotal(t *testing.T) {
	data := [][]float64{
		{0.1, 0.2, 0.3, 10},
		{-5, -4, 3, 3, 3, 100, 1e6},
		{1, math.NaN(), 2, math.Inf(1)},
	}
	for _, xs := range data {
		want, _ := Finite(xs)
		for _, bins := range []int{0, 1, 3, 7} {
			h, err := NewHistogram(xs, HistogramOptions{Bins: bins})
			if err != nil {
				t.Fatal(err)
			}
			if h.Sum() != float64(len(want)) {
				t.Errorf("%v (%d bins): want total %d, got %f", xs, bins, len(want), h.Sum())
			}
		}
	}
}

func TestHistogramOptions(t *testing.T) {
	xs := []float64{1, 1, 2, 3}
	h, err := NewHistogram(xs, HistogramOptions{Bins: 2, Normalize: true, Cumulative: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Bins[len(h.Bins)-1].Count; math.Abs(got-1) > 1e-12 {
		t.Errorf("cumulative normalized: want 1, got %f", got)
	}
}

func TestHistogramConstant(t *testing.T) {
	h, err := NewHistogram([]float64{4, 4, 4}, HistogramOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Bins) != 1 {
		t.Fatalf("bins: want 1, got %d", len(h.Bins))
	}
	b := h.Bins[0]
	if b.Width() != 1 || b.Center() != 4 || b.Count != 3 {
		t.Errorf("unexpected bin: %+v", b)
	}
}

func TestHistogramEmpty(t *testing.T) {
	_, err := NewHistogram([]float64{math.NaN()}, HistogramOptions{})
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("want ErrEmpty, got %v", err)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	tests := []struct {
		P    float64
		Want float64
	}{
		{P: 0, Want: 1},
		{P: 0.25, Want: 1.75},
		{P: 0.5, Want: 2.5},
		{P: 1, Want: 4},
	}
	for _, c := range tests {
		got := Percentile(sorted, c.P)
		if math.Abs(got-c.Want) > 1e-12 {
			t.Errorf("Percentile(%f): want %f, got %f", c.P, c.Want, got)
		}
	}
}

func TestBox(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}
	bs, err := Box(xs, FenceIQR)
	if err != nil {
		t.Fatal(err)
	}
	if bs.Median != 5 || bs.Q1 != 3 || bs.Q3 != 7 {
		t.Errorf("quartiles: got %f %f %f", bs.Q1, bs.Median, bs.Q3)
	}
	if len(bs.Outliers) != 1 || bs.Outliers[0] != 100 {
		t.Errorf("outliers: got %v", bs.Outliers)
	}
	if bs.UpperWhisker != 8 || bs.LowerWhisker != 1 {
		t.Errorf("whiskers: got %f %f", bs.LowerWhisker, bs.UpperWhisker)
	}

	bs, err = Box(xs, FenceNone)
	if err != nil {
		t.Fatal(err)
	}
	if len(bs.Outliers) != 0 || bs.UpperWhisker != 100 {
		t.Errorf("no fence: got outliers %v and whisker %f", bs.Outliers, bs.UpperWhisker)
	}
}

func TestBoxOrdering(t *testing.T) {
	data := [][]float64{
		{1},
		{3, 3, 3},
		{1, 100},
		{-10, 0, 0, 0, 0, 0, 10},
		{5, 1, 9, 2, 8, 3, 7, 4, 6, 1000, -1000},
	}
	for _, xs := range data {
		for _, f := range []Fence{FenceIQR, FenceFar, FenceNone} {
			bs, err := Box(xs, f)
			if err != nil {
				t.Fatal(err)
			}
			if !(bs.Q1 <= bs.Median && bs.Median <= bs.Q3) {
				t.Errorf("%v: quartiles out of order: %+v", xs, bs)
			}
			if bs.LowerWhisker > bs.Q1 || bs.UpperWhisker < bs.Q3 {
				t.Errorf("%v: whiskers inside the box: %+v", xs, bs)
			}
		}
	}
}

func TestKernel(t *testing.T) {
	for _, k := range []Kernel{Epanechnikov, Uniform, Triangular} {
		if v := k.Eval(1.5); v != 0 {
			t.Errorf("%s: want 0 outside support, got %f", k, v)
		}
		if v := k.Eval(0); v <= 0 {
			t.Errorf("%s: want positive weight at 0, got %f", k, v)
		}
	}
	if v := Gaussian.Eval(3); v <= 0 {
		t.Errorf("gaussian: want positive weight, got %f", v)
	}
	if _, err := ParseKernel("cosine"); !errors.Is(err, ErrKernel) {
		t.Errorf("want ErrKernel, got %v", err)
	}
}

func TestScottBandwidth(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	var (
		sd   = math.Sqrt(2.5)
		want = 1.06 * sd * math.Pow(5, -0.2)
	)
	if got := ScottBandwidth(xs); math.Abs(got-want) > 1e-9 {
		t.Errorf("bandwidth: want %f, got %f", want, got)
	}
}

func TestDensity(t *testing.T) {
	xs := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	for _, k := range []Kernel{Gaussian, Epanechnikov, Uniform, Triangular} {
		c, err := Density(xs, KDEOptions{Kernel: k})
		if err != nil {
			t.Fatal(err)
		}
		if len(c.Xs) != DefaultResolution {
			t.Errorf("%s: want %d points, got %d", k, DefaultResolution, len(c.Xs))
		}
		if c.Xs[0] >= 1 || c.Xs[len(c.Xs)-1] <= 5 {
			t.Errorf("%s: grid does not cover the data: %f..%f", k, c.Xs[0], c.Xs[len(c.Xs)-1])
		}
		step := c.Xs[1] - c.Xs[0]
		var area, top float64
		for _, y := range c.Ys {
			if y < 0 {
				t.Fatalf("%s: negative density", k)
			}
			area += y * step
			top = math.Max(top, y)
		}
		if c.Max() != top {
			t.Errorf("%s: max: want %f, got %f", k, top, c.Max())
		}
		if area < 0.8 || area > 1.1 {
			t.Errorf("%s: density should integrate close to 1, got %f", k, area)
		}
	}
}

func TestDensityErrors(t *testing.T) {
	if _, err := Density(nil, KDEOptions{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("want ErrEmpty, got %v", err)
	}
	if _, err := Density([]float64{1}, KDEOptions{}); !errors.Is(err, ErrSamples) {
		t.Errorf("want ErrSamples, got %v", err)
	}
	c, err := Density([]float64{2, 2, 2}, KDEOptions{Resolution: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Xs) != MinResolution || c.Bandwidth <= 0 {
		t.Errorf("constant data: got %d points and bandwidth %f", len(c.Xs), c.Bandwidth)
	}
}
