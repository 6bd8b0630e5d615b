package charts

import (
	"math"
)

const (
	defaultMin   = -10.0
	defaultMax   = 10.0
	paddingRatio = 0.1
)

type Point struct {
	X float64
	Y float64
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Coordinate is either a Point or a Category. Transformer.Resolve is the
// only place where the two are told apart.
type Coordinate interface {
	coordinate()
}

func (Point) coordinate() {}

type Category struct {
	Label string
	Y     float64
}

func CategoryPoint(label string, y float64) Category {
	return Category{
		Label: label,
		Y:     y,
	}
}

func (Category) coordinate() {}

type Limit struct {
	Min float64
	Max float64
}

func (l Limit) Valid() bool {
	return isFinite(l.Min) && isFinite(l.Max) && l.Min < l.Max
}

type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

func DefaultBounds() Bounds {
	return Bounds{
		MinX: defaultMin,
		MaxX: defaultMax,
		MinY: defaultMin,
		MaxY: defaultMax,
	}
}

// BoundsFrom computes the window needed to display all the finite points
// given. Each axis is padded by a tenth of its range. Axis without extent
// are widened around their unique value.
func BoundsFrom(points []Point) Bounds {
	var (
		b   Bounds
		set bool
	)
	for _, p := range points {
		if !p.Finite() {
			continue
		}
		if !set {
			b = Bounds{
				MinX: p.X,
				MaxX: p.X,
				MinY: p.Y,
				MaxY: p.Y,
			}
			set = true
			continue
		}
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	if !set {
		return DefaultBounds()
	}
	b.MinX, b.MaxX = PadRange(b.MinX, b.MaxX)
	b.MinY, b.MaxY = PadRange(b.MinY, b.MaxY)
	return b
}

// PadRange extends [min, max] by a tenth of its length on both sides. An
// empty range becomes v±1 when v is zero and v±10% of |v| otherwise.
func PadRange(min, max float64) (float64, float64) {
	if min > max {
		min, max = max, min
	}
	diff := max - min
	if diff == 0 {
		pad := math.Abs(min) * paddingRatio
		if pad == 0 {
			pad = 1
		}
		return min - pad, max + pad
	}
	pad := diff * paddingRatio
	return min - pad, max + pad
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

func (b Bounds) Valid() bool {
	return isFinite(b.Width()) && isFinite(b.Height()) && b.Width() > 0 && b.Height() > 0
}

// Limit replaces the extent of the axis for which a valid limit is given.
func (b Bounds) Limit(xlim, ylim *Limit) Bounds {
	if xlim != nil && xlim.Valid() {
		b.MinX, b.MaxX = xlim.Min, xlim.Max
	}
	if ylim != nil && ylim.Valid() {
		b.MinY, b.MaxY = ylim.Min, ylim.Max
	}
	return b
}

func (b Bounds) xScaler() Scaler {
	return NumberScaler(NumberDomain(b.MinX, b.MaxX))
}

func (b Bounds) yScaler() Scaler {
	return NumberScaler(NumberDomain(b.MinY, b.MaxY))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
