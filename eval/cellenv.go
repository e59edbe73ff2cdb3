package eval

import (
	"math"

	"github.com/andybalaam/graft/value"
)

// NewCellEnv builds a root Env with every graft built-in plus cell's
// control-flow helpers, array primitives and math library, and returns
// a child scope of it for the program to run in, so a program may
// assign turtle variables (`d = 90`) without tripping cell's
// single-assignment check. Grounded in make_graft_env.py's
// `add_cell_symbols`.
func NewCellEnv() *value.Env {
	e := NewGraftEnv()
	e.Set("endofloop", value.EndOfLoop{})
	e.Set("Add", &value.NativeFunction{Name: "Add", Fn: cellAdd})
	e.Set("Get", &value.NativeFunction{Name: "Get", Fn: cellGet})
	e.Set("For", &value.NativeFunction{Name: "For", Fn: cellFor})
	e.Set("If", &value.NativeFunction{Name: "If", Fn: cellIf})
	e.Set("Len", &value.NativeFunction{Name: "Len", Fn: cellLen})
	e.Set("T", &value.NativeFunction{Name: "T", Fn: cellTimes})
	e.Set("Sin", &value.NativeFunction{Name: "Sin", Fn: wrapMathRadIn("Sin", math.Sin)})
	e.Set("Cos", &value.NativeFunction{Name: "Cos", Fn: wrapMathRadIn("Cos", math.Cos)})
	e.Set("Tan", &value.NativeFunction{Name: "Tan", Fn: wrapMathRadIn("Tan", math.Tan)})
	e.Set("ASin", &value.NativeFunction{Name: "ASin", Fn: wrapMathRadOut("ASin", math.Asin)})
	e.Set("ACos", &value.NativeFunction{Name: "ACos", Fn: wrapMathRadOut("ACos", math.Acos)})
	e.Set("ATan", &value.NativeFunction{Name: "ATan", Fn: wrapMathRadOut("ATan", math.Atan)})
	e.Set("ATan2", &value.NativeFunction{Name: "ATan2", Fn: wrapMath2RadOut("ATan2", math.Atan2)})
	e.Set("Sqrt", &value.NativeFunction{Name: "Sqrt", Fn: wrapMath("Sqrt", math.Sqrt)})
	e.Set("Pow", &value.NativeFunction{Name: "Pow", Fn: wrapMath2("Pow", math.Pow)})
	e.Set("Hypot", &value.NativeFunction{Name: "Hypot", Fn: wrapMath2("Hypot", math.Hypot)})
	return e.MakeChild()
}
