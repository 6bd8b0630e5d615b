package expr

import (
	"errors"
	"fmt"
	"math"
)

const DefaultPoints = 200

var ErrSample = errors.New("function can not be sampled")

// Function is a compiled expression of the single variable x.
type Function struct {
	source string
	expr   Expression
}

func Compile(str string) (Function, error) {
	e, err := Parse(str)
	if err != nil {
		return Function{}, err
	}
	return Function{
		source: str,
		expr:   e,
	}, nil
}

func (f Function) String() string {
	return f.source
}

func (f Function) Label() string {
	return fmt.Sprintf("f(x) = %s", f.source)
}

func (f Function) Eval(x float64) (float64, error) {
	env := enclosed(constants())
	env.Define("x", x)
	return eval(f.expr, env)
}

// Sample evaluates f at n evenly spaced values of [lo, hi]. Values for which
// the evaluation fails or gives a non finite result are left out.
func (f Function) Sample(lo, hi float64, n int) ([]float64, []float64, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: number of points must be greater than 0", ErrSample)
	}
	var step float64
	if n > 1 {
		step = (hi - lo) / float64(n-1)
	}
	var (
		xs = make([]float64, 0, n)
		ys = make([]float64, 0, n)
	)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		if i > 0 && i == n-1 {
			x = hi
		}
		y, err := f.Eval(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("%w: evaluation failed for all points in [%g, %g]", ErrSample, lo, hi)
	}
	return xs, ys, nil
}

// Range gives a window suited to the functions called by f.
func (f Function) Range() (float64, float64) {
	names := make(map[string]bool)
	calls(f.expr, names)
	switch {
	case names["exp"]:
		return -5, 5
	case names["ln"] || names["log"] || names["log2"]:
		return 0.1, 10
	case names["sqrt"]:
		return 0, 10
	case names["tan"]:
		return -1.5, 1.5
	default:
		return -10, 10
	}
}

func calls(e Expression, names map[string]bool) {
	switch e := e.(type) {
	case call:
		names[e.ident] = true
		for _, a := range e.args {
			calls(a, names)
		}
	case unary:
		calls(e.right, names)
	case binary:
		calls(e.left, names)
		calls(e.right, names)
	default:
	}
}
