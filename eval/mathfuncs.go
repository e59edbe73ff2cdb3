package eval

import (
	"math"

	"github.com/andybalaam/graft/value"
)

// Graft's angle unit is degrees throughout (matching d's unit); the
// trig wrappers convert at the boundary so cell code never has to
// think in radians. Grounded in make_graft_env.py's
// `wrap_math_radinp`/`wrap_math_radout`/`wrap_math2_radout`.

func degreesToRadians(d float64) float64 { return d * math.Pi / 180.0 }
func radiansToDegrees(r float64) float64 { return r * 180.0 / math.Pi }

func oneNumberArg(name string, args []value.Value) (float64, error) {
	if len(args) != 1 {
		return 0, newErrf(Arity, "%s takes 1 argument, got %d", name, len(args))
	}
	n, ok := args[0].(value.Number)
	if !ok {
		return 0, newErrf(TypeMismatch, "%s's argument must be a number, got %T", name, args[0])
	}
	return float64(n), nil
}

func twoNumberArgs(name string, args []value.Value) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, newErrf(Arity, "%s takes 2 arguments, got %d", name, len(args))
	}
	a, ok := args[0].(value.Number)
	if !ok {
		return 0, 0, newErrf(TypeMismatch, "%s's first argument must be a number, got %T", name, args[0])
	}
	b, ok := args[1].(value.Number)
	if !ok {
		return 0, 0, newErrf(TypeMismatch, "%s's second argument must be a number, got %T", name, args[1])
	}
	return float64(a), float64(b), nil
}

// wrapMathRadIn wraps a stdlib trig function that expects radians,
// taking a degrees argument (Sin, Cos, Tan).
func wrapMathRadIn(name string, fn func(float64) float64) value.NativeFunc {
	return func(_ *value.ProgramEnv, args []value.Value) (value.Value, error) {
		n, err := oneNumberArg(name, args)
		if err != nil {
			return nil, err
		}
		return value.Number(fn(degreesToRadians(n))), nil
	}
}

// wrapMathRadOut wraps a stdlib inverse-trig function that returns
// radians, converting its result to degrees (ASin, ACos, ATan).
func wrapMathRadOut(name string, fn func(float64) float64) value.NativeFunc {
	return func(_ *value.ProgramEnv, args []value.Value) (value.Value, error) {
		n, err := oneNumberArg(name, args)
		if err != nil {
			return nil, err
		}
		return value.Number(radiansToDegrees(fn(n))), nil
	}
}

// wrapMath2RadOut wraps a two-argument stdlib function returning
// radians, converting to degrees (ATan2).
func wrapMath2RadOut(name string, fn func(float64, float64) float64) value.NativeFunc {
	return func(_ *value.ProgramEnv, args []value.Value) (value.Value, error) {
		a, b, err := twoNumberArgs(name, args)
		if err != nil {
			return nil, err
		}
		return value.Number(radiansToDegrees(fn(a, b))), nil
	}
}

// wrapMath wraps a plain one-argument stdlib math function (Sqrt).
func wrapMath(name string, fn func(float64) float64) value.NativeFunc {
	return func(_ *value.ProgramEnv, args []value.Value) (value.Value, error) {
		n, err := oneNumberArg(name, args)
		if err != nil {
			return nil, err
		}
		return value.Number(fn(n)), nil
	}
}

// wrapMath2 wraps a plain two-argument stdlib math function (Pow,
// Hypot).
func wrapMath2(name string, fn func(float64, float64) float64) value.NativeFunc {
	return func(_ *value.ProgramEnv, args []value.Value) (value.Value, error) {
		a, b, err := twoNumberArgs(name, args)
		if err != nil {
			return nil, err
		}
		return value.Number(fn(a, b)), nil
	}
}
