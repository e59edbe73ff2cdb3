package eval

import (
	"math"

	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/stroke"
	"github.com/andybalaam/graft/value"
)

// asNumber requires v to be a Number, the type every turtle state
// variable (x, y, d, s, r, g, b, a, z) is defined to hold.
func asNumber(v value.Value) (float64, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, newErrf(TypeMismatch, "expected a number, got %T", v)
	}
	return float64(n), nil
}

// theta converts a direction in degrees (graft's angle unit
// throughout) to radians, grounded in
// original_source/graftlib/functions.py's `theta`.
func theta(degrees float64) float64 {
	return 2 * math.Pi * (degrees / 360.0)
}

func currentColor(penv *value.ProgramEnv) (stroke.Color, error) {
	r, err := asNumber(penv.Get("r"))
	if err != nil {
		return stroke.Color{}, err
	}
	g, err := asNumber(penv.Get("g"))
	if err != nil {
		return stroke.Color{}, err
	}
	b, err := asNumber(penv.Get("b"))
	if err != nil {
		return stroke.Color{}, err
	}
	a, err := asNumber(penv.Get("a"))
	if err != nil {
		return stroke.Color{}, err
	}
	return stroke.Color{R: r, G: g, B: b, A: a}, nil
}

func currentPos(penv *value.ProgramEnv) (stroke.Pt, error) {
	x, err := asNumber(penv.Get("x"))
	if err != nil {
		return stroke.Pt{}, err
	}
	y, err := asNumber(penv.Get("y"))
	if err != nil {
		return stroke.Pt{}, err
	}
	return stroke.Pt{X: x, Y: y}, nil
}

func prevPos(penv *value.ProgramEnv) (stroke.Pt, error) {
	x, err := asNumber(penv.Get("xprev"))
	if err != nil {
		return stroke.Pt{}, err
	}
	y, err := asNumber(penv.Get("yprev"))
	if err != nil {
		return stroke.Pt{}, err
	}
	return stroke.Pt{X: x, Y: y}, nil
}

func noArgs(name string, args []value.Value) error {
	if len(args) != 0 {
		return newErrf(Arity, "%s takes no arguments, got %d", name, len(args))
	}
	return nil
}

// biStep is the `S` built-in: advance the turtle by `s` in direction
// `d` and draw a line over the distance travelled. Grounded in
// functions.py's `step`.
func biStep(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if err := noArgs("S", args); err != nil {
		return nil, err
	}
	d, err := asNumber(penv.Get("d"))
	if err != nil {
		return nil, err
	}
	s, err := asNumber(penv.Get("s"))
	if err != nil {
		return nil, err
	}
	old, err := currentPos(penv)
	if err != nil {
		return nil, err
	}
	th := theta(d)
	newPos := stroke.Pt{X: old.X + s*math.Sin(th), Y: old.Y + s*math.Cos(th)}
	penv.Set("x", value.Number(newPos.X))
	penv.Set("y", value.Number(newPos.Y))
	col, err := currentColor(penv)
	if err != nil {
		return nil, err
	}
	size, err := asNumber(penv.Get("z"))
	if err != nil {
		return nil, err
	}
	penv.AppendStroke(&stroke.Line{Start: old, End: newPos, Color: col, Size: size})
	glog.Debugf("S: %v -> %v", old, newPos)
	return value.None{}, nil
}

// biJump is the `J` built-in: move like S but draw nothing. Grounded
// in functions.py's `jump`.
func biJump(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if err := noArgs("J", args); err != nil {
		return nil, err
	}
	d, err := asNumber(penv.Get("d"))
	if err != nil {
		return nil, err
	}
	s, err := asNumber(penv.Get("s"))
	if err != nil {
		return nil, err
	}
	old, err := currentPos(penv)
	if err != nil {
		return nil, err
	}
	th := theta(d)
	penv.Set("x", value.Number(old.X+s*math.Sin(th)))
	penv.Set("y", value.Number(old.Y+s*math.Cos(th)))
	return value.None{}, nil
}

// biDot is the `D` built-in: draw a dot at the current position.
// Grounded in functions.py's `dot`.
func biDot(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if err := noArgs("D", args); err != nil {
		return nil, err
	}
	pos, err := currentPos(penv)
	if err != nil {
		return nil, err
	}
	col, err := currentColor(penv)
	if err != nil {
		return nil, err
	}
	size, err := asNumber(penv.Get("z"))
	if err != nil {
		return nil, err
	}
	penv.AppendStroke(&stroke.Dot{Pos: pos, Color: col, Size: size})
	return value.None{}, nil
}

// biLineTo is the `L` built-in: draw a line from the turtle's
// previous position to its current one, without moving it. Grounded
// in functions.py's `line_to`.
func biLineTo(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if err := noArgs("L", args); err != nil {
		return nil, err
	}
	prev, err := prevPos(penv)
	if err != nil {
		return nil, err
	}
	pos, err := currentPos(penv)
	if err != nil {
		return nil, err
	}
	col, err := currentColor(penv)
	if err != nil {
		return nil, err
	}
	size, err := asNumber(penv.Get("z"))
	if err != nil {
		return nil, err
	}
	penv.AppendStroke(&stroke.Line{Start: prev, End: pos, Color: col, Size: size})
	return value.None{}, nil
}

// biRandom is the `R` built-in: a value in [-10, 10), useful only as
// an operand (spec.md section 4.3's note that R does nothing as a
// bare statement, since its Number result carries no draw side
// effect). Grounded in functions.py's `random`.
func biRandom(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if err := noArgs("R", args); err != nil {
		return nil, err
	}
	return value.Number(penv.Rand.Float(-10, 10)), nil
}

// biFork is the `F` built-in: ask the scheduler to clone this running
// program. Grounded in functions.py's `fork`.
func biFork(penv *value.ProgramEnv, args []value.Value) (value.Value, error) {
	if err := noArgs("F", args); err != nil {
		return nil, err
	}
	return penv.Fork()
}

// NewGraftEnv builds a root Env with the turtle state variables and
// the six core built-ins every dialect shares, grounded in
// make_graft_env.py's `_add_graft_symbols`.
func NewGraftEnv() *value.Env {
	e := value.NewEnv()
	e.Set("f", value.Number(0))
	e.Set("x", value.Number(0))
	e.Set("y", value.Number(0))
	e.Set("xprev", value.Number(0))
	e.Set("yprev", value.Number(0))
	e.Set("d", value.Number(0))
	e.Set("s", value.Number(10))
	e.Set("r", value.Number(0))
	e.Set("g", value.Number(0))
	e.Set("b", value.Number(0))
	e.Set("a", value.Number(100))
	e.Set("z", value.Number(5))
	e.Set("D", &value.NativeFunction{Name: "D", Fn: biDot})
	e.Set("F", &value.NativeFunction{Name: "F", Fn: biFork})
	e.Set("J", &value.NativeFunction{Name: "J", Fn: biJump})
	e.Set("L", &value.NativeFunction{Name: "L", Fn: biLineTo})
	e.Set("R", &value.NativeFunction{Name: "R", Fn: biRandom})
	e.Set("S", &value.NativeFunction{Name: "S", Fn: biStep})
	return e
}
