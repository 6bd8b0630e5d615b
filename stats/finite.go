package stats

import (
	"math"
)

// Finite returns the values of xs that are neither NaN nor infinite and the
// number of values it skipped.
func Finite(xs []float64) ([]float64, int) {
	list := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		list = append(list, x)
	}
	return list, len(xs) - len(list)
}
