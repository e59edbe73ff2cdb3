// Package value defines graft's runtime Value family and the
// lexically-scoped Env it lives in, grounded in
// original_source/graftlib/numbervalue.py, env.py and programenv.py.
package value

import (
	"fmt"

	"github.com/andybalaam/graft/ast"
)

// Value is any graft runtime value: None, Number, String, Array,
// UserFunction, NativeFunction, or the EndOfLoop sentinel (spec.md
// section 3). Closed via an unexported method, same discipline as
// ast.Node.
type Value interface {
	value()
}

// None is the absence of a value, returned by statements with no
// result (spec.md "empty statement" cases).
type None struct{}

// Number is graft's only scalar numeric type: all arithmetic is
// IEEE-754 double precision (spec.md section 6).
type Number float64

// String is a cell string literal's runtime value.
type String string

// Array is an ordered, mutable sequence of values (cell only).
type Array struct {
	Elems []Value
}

// NativeFunc is the signature every built-in (turtle primitive, cell
// control-flow helper, math wrapper) implements: it receives the
// calling environment and already-evaluated arguments and returns a
// value, appending any strokes it draws into env's buffer itself.
type NativeFunc func(env *ProgramEnv, args []Value) (Value, error)

// NativeFunction wraps a built-in so it can live in an Env like any
// other value and be called uniformly.
type NativeFunction struct {
	Name string
	Fn   NativeFunc
}

// UserFunction is a function literal closed over the environment it
// was defined in.
type UserFunction struct {
	Params []string
	Body   []ast.Node
	Env    *Env
}

// EndOfLoop is the sentinel a cell `For` source function returns to
// signal "stop iterating" (spec.md section 4.3).
type EndOfLoop struct{}

func (None) value()           {}
func (Number) value()         {}
func (String) value()         {}
func (*Array) value()         {}
func (*NativeFunction) value() {}
func (*UserFunction) value()  {}
func (EndOfLoop) value()      {}

func (n Number) String() string { return fmt.Sprintf("%g", float64(n)) }

// Truthy follows cell's `If` convention: any Number other than
// exactly 0 is true (original_source/graftlib/cellfunctions.py's
// `if_`: `env.eval_expr(env, condition).value != 0`).
func Truthy(v Value) bool {
	n, ok := v.(Number)
	return ok && n != 0
}
