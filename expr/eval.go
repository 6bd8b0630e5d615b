package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/midbel/slices"
)

var (
	ErrUndefined = errors.New("undefined")
	ErrArgument  = errors.New("invalid number of arguments")
	ErrDomain    = errors.New("value outside function domain")
)

type environ struct {
	values map[string]float64
	parent *environ
}

func emptyEnv() *environ {
	return &environ{
		values: make(map[string]float64),
	}
}

func constants() *environ {
	env := emptyEnv()
	env.Define("pi", math.Pi)
	env.Define("PI", math.Pi)
	env.Define("e", math.E)
	env.Define("E", math.E)
	return env
}

func enclosed(parent *environ) *environ {
	env := emptyEnv()
	env.parent = parent
	return env
}

func (e *environ) Resolve(name string) (float64, error) {
	v, ok := e.values[name]
	if ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Resolve(name)
	}
	return 0, fmt.Errorf("%s: %w variable", name, ErrUndefined)
}

func (e *environ) Define(name string, value float64) {
	e.values[name] = value
}

type builtin struct {
	arity int
	call  func([]float64) float64
}

func unaryFunc(fn func(float64) float64) builtin {
	return builtin{
		arity: 1,
		call: func(args []float64) float64 {
			return fn(slices.Fst(args))
		},
	}
}

func binaryFunc(fn func(float64, float64) float64) builtin {
	return builtin{
		arity: 2,
		call: func(args []float64) float64 {
			return fn(slices.Fst(args), slices.Lst(args))
		},
	}
}

var builtins = map[string]builtin{
	"sin":   unaryFunc(math.Sin),
	"cos":   unaryFunc(math.Cos),
	"tan":   unaryFunc(math.Tan),
	"asin":  unaryFunc(math.Asin),
	"acos":  unaryFunc(math.Acos),
	"atan":  unaryFunc(math.Atan),
	"sinh":  unaryFunc(math.Sinh),
	"cosh":  unaryFunc(math.Cosh),
	"tanh":  unaryFunc(math.Tanh),
	"exp":   unaryFunc(math.Exp),
	"ln":    unaryFunc(math.Log),
	"log":   unaryFunc(math.Log10),
	"log2":  unaryFunc(math.Log2),
	"sqrt":  unaryFunc(math.Sqrt),
	"abs":   unaryFunc(math.Abs),
	"floor": unaryFunc(math.Floor),
	"ceil":  unaryFunc(math.Ceil),
	"round": unaryFunc(math.Round),
	"pow":   binaryFunc(math.Pow),
	"min":   binaryFunc(math.Min),
	"max":   binaryFunc(math.Max),
}

func eval(e Expression, env *environ) (float64, error) {
	switch e := e.(type) {
	case number:
		return e.value, nil
	case variable:
		return env.Resolve(e.ident)
	case unary:
		return evalUnary(e, env)
	case binary:
		return evalBinary(e, env)
	case call:
		return evalCall(e, env)
	default:
		return 0, fmt.Errorf("unsupported expression type %T", e)
	}
}

func evalUnary(u unary, env *environ) (float64, error) {
	right, err := eval(u.right, env)
	if err != nil {
		return 0, err
	}
	if u.op == Sub {
		right = -right
	}
	return right, nil
}

func evalBinary(b binary, env *environ) (float64, error) {
	left, err := eval(b.left, env)
	if err != nil {
		return 0, err
	}
	right, err := eval(b.right, env)
	if err != nil {
		return 0, err
	}
	switch b.op {
	case Add:
		return left + right, nil
	case Sub:
		return left - right, nil
	case Mul:
		return left * right, nil
	case Div:
		if right == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrDomain)
		}
		return left / right, nil
	case Mod:
		if right == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrDomain)
		}
		return math.Mod(left, right), nil
	case Pow:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("unsupported operator")
	}
}

func evalCall(c call, env *environ) (float64, error) {
	fn, ok := builtins[c.ident]
	if !ok {
		return 0, fmt.Errorf("%s: %w function", c.ident, ErrUndefined)
	}
	if len(c.args) != fn.arity {
		return 0, fmt.Errorf("%s: %w (want %d, got %d)", c.ident, ErrArgument, fn.arity, len(c.args))
	}
	args := make([]float64, 0, len(c.args))
	for _, a := range c.args {
		v, err := eval(a, env)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return fn.call(args), nil
}
