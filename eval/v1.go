package eval

import (
	"strconv"

	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/value"
)

// EvalV1Statement runs one v1 statement against penv. Strokes drawn
// are collected via penv.AppendStroke; the scheduler drains them after
// each call. Grounded in original_source/graftlib/eval_v1.py's
// Evaluator.statement.
func EvalV1Statement(penv *value.ProgramEnv, node ast.Node) error {
	_, err := execV1(penv, node)
	return err
}

// execV1 runs a v1 statement and returns the value it "produces" —
// meaningful only when the statement is itself the last one inside an
// inline function-literal block being used as an operand (e.g. a
// block ending in `:R`), matching eval_v1.py's per-statement return
// value threaded through `_function_call_userdefined`.
func execV1(penv *value.ProgramEnv, node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.FunctionCall:
		return callV1(penv, n)
	case *ast.Modify:
		return value.None{}, modifyV1(penv, n)
	case *ast.Symbol, *ast.Number:
		return value.None{}, nil
	case *ast.Label:
		return nil, newErr(LabelInFunction, "")
	case *ast.FunctionDef:
		return nil, newErr(NotAFunction, "function defined but never called")
	default:
		return nil, newErrf(TypeMismatch, "unexpected v1 statement %T", node)
	}
}

// callV1 evaluates a FunctionCall, invoking its target `Repeat` times
// and returning the last invocation's value (functions.py's `:R`
// idiom relies on this — see biRandom's doc comment).
func callV1(penv *value.ProgramEnv, fc *ast.FunctionCall) (value.Value, error) {
	repeat := fc.Repeat
	if repeat < 1 {
		repeat = 1
	}
	var last value.Value = value.None{}
	for i := 0; i < repeat; i++ {
		v, err := callV1Once(penv, fc.Fn)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// callV1Once invokes fn once: a Symbol names a built-in (v1 has no
// user-named functions — see DESIGN.md), a FunctionDef is an inline
// block run statement-by-statement in penv's own scope (no child
// scope, no parameters; grounded in eval_v1.py's
// `_function_call_userdefined`, which calls `self.statement(stmt)`
// using the calling Evaluator's own env).
func callV1Once(penv *value.ProgramEnv, fn ast.Node) (value.Value, error) {
	switch f := fn.(type) {
	case *ast.Symbol:
		if !penv.Env.Has(f.Name) {
			return nil, newErr(UnknownSymbol, f.Name)
		}
		v := penv.Get(f.Name)
		nf, ok := v.(*value.NativeFunction)
		if !ok {
			return nil, newErrf(NotAFunction, "%s is not a function", f.Name)
		}
		glog.Debugf("v1 call %s", f.Name)
		return nf.Fn(penv, nil)
	case *ast.FunctionDef:
		var last value.Value = value.None{}
		for _, stmt := range f.Body {
			v, err := execV1(penv, stmt)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil
	default:
		return nil, newErrf(NotAFunction, "cannot call %T", fn)
	}
}

// valueV1 evaluates a v1 value expression: a number literal, a
// symbol lookup, or (as an operand) a function call's last result.
// Grounded in eval_v1.py's `Evaluator._value`.
func valueV1(penv *value.ProgramEnv, node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Number:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, newErrf(TypeMismatch, "malformed number %q", n.Value)
		}
		if n.Negative {
			f = -f
		}
		return value.Number(f), nil
	case *ast.FunctionCall:
		return callV1(penv, n)
	case *ast.Symbol:
		return penv.Get(n.Name), nil
	default:
		return nil, newErrf(TypeMismatch, "cannot evaluate %T as a value", node)
	}
}

// modifyV1 applies a Modify statement: target := op(target, value).
// v1's bare-juxtaposition multiply ("3d" meaning d *= 3) parses to
// OpMul, the same as an explicit operator would. Grounded in
// eval_v1.py's `Evaluator._modify` and `_operator_fn`.
func modifyV1(penv *value.ProgramEnv, m *ast.Modify) error {
	val, err := valueV1(penv, m.Value)
	if err != nil {
		return err
	}
	valNum, ok := val.(value.Number)
	if !ok {
		return newErrf(TypeMismatch, "modify value must be a number, got %T", val)
	}
	cur, err := asNumber(penv.Get(m.Target))
	if err != nil {
		return err
	}
	var result float64
	switch m.Op {
	case ast.OpAssign:
		result = float64(valNum)
	case ast.OpAdd:
		result = cur + float64(valNum)
	case ast.OpSub:
		result = cur - float64(valNum)
	case ast.OpMul:
		result = cur * float64(valNum)
	case ast.OpDiv:
		if valNum == 0 {
			return newErr(DivisionByZero, "")
		}
		result = cur / float64(valNum)
	default:
		return newErrf(UnknownOperator, "%d", m.Op)
	}
	penv.Set(m.Target, value.Number(result))
	return nil
}
