package stats

import (
	"fmt"
	"math"
	"strings"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

const (
	DefaultResolution = 200
	MinResolution     = 50

	gridPadding  = 0.1
	fallbackBand = 0.1
)

type Kernel int

const (
	Gaussian Kernel = iota
	Epanechnikov
	Uniform
	Triangular
)

func ParseKernel(str string) (Kernel, error) {
	switch strings.ToLower(str) {
	case "", "gaussian", "normal":
		return Gaussian, nil
	case "epanechnikov":
		return Epanechnikov, nil
	case "uniform", "box":
		return Uniform, nil
	case "triangular":
		return Triangular, nil
	default:
		return Gaussian, fmt.Errorf("%w: %s", ErrKernel, str)
	}
}

func (k Kernel) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Epanechnikov:
		return "epanechnikov"
	case Uniform:
		return "uniform"
	case Triangular:
		return "triangular"
	default:
		return "unknown"
	}
}

// Eval gives the weight of the kernel at the normalized distance u. Every
// kernel but the gaussian one is zero when |u| > 1.
func (k Kernel) Eval(u float64) float64 {
	if k != Gaussian && math.Abs(u) > 1 {
		return 0
	}
	switch k {
	case Gaussian:
		return math.Exp(-u*u/2) / math.Sqrt(2*math.Pi)
	case Epanechnikov:
		return 0.75 * (1 - u*u)
	case Uniform:
		return 0.5
	case Triangular:
		return 1 - math.Abs(u)
	default:
		return 0
	}
}

// ScottBandwidth gives 1.06 * σ * n^(-1/5) with σ the sample standard
// deviation of xs.
func ScottBandwidth(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return mstats.BandwidthSilverman(mstats.Sample{Xs: xs})
}

type KDEOptions struct {
	Kernel     Kernel
	Bandwidth  float64
	Resolution int
}

type Curve struct {
	Xs        []float64
	Ys        []float64
	Bandwidth float64
	Kernel    Kernel
}

func (c Curve) Max() float64 {
	var m float64
	for _, y := range c.Ys {
		m = math.Max(m, y)
	}
	return m
}

// Density estimates the probability density of the finite values of xs on a
// grid of evenly spaced points covering their range widened by a tenth on
// each side.
func Density(xs []float64, opts KDEOptions) (Curve, error) {
	var c Curve
	xs, _ = Finite(xs)
	if len(xs) == 0 {
		return c, ErrEmpty
	}
	if len(xs) < 2 {
		return c, fmt.Errorf("%w: density needs at least 2 values, got %d", ErrSamples, len(xs))
	}
	res := opts.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	res = max(res, MinResolution)

	var (
		sample = mstats.Sample{Xs: xs}
		lo, hi = sample.Bounds()
		band   = opts.Bandwidth
	)
	if band <= 0 || math.IsNaN(band) || math.IsInf(band, 0) {
		band = ScottBandwidth(xs)
	}
	if band <= 0 || math.IsNaN(band) {
		band = math.Abs(lo) * fallbackBand
		if band == 0 {
			band = 1
		}
	}
	pad := (hi - lo) * gridPadding
	if pad == 0 {
		pad = 3 * band
	}
	var (
		weight = sample.Weight() * band
		kernel = opts.Kernel
	)
	c.Bandwidth = band
	c.Kernel = kernel
	c.Xs = vec.Linspace(lo-pad, hi+pad, res)
	c.Ys = vec.Map(func(x float64) float64 {
		var sum float64
		for _, xi := range xs {
			sum += kernel.Eval((x - xi) / band)
		}
		return sum / weight
	}, c.Xs)
	return c, nil
}
