package eval

import (
	"strconv"

	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/value"
)

// EvalCellStatement runs one cell top-level statement and returns its
// value. Cell statements are expressions (spec.md section 4.3), so
// returning a value is meaningful at every call site, unlike v1's
// side-effect-only statements.
func EvalCellStatement(penv *value.ProgramEnv, node ast.Node) (value.Value, error) {
	return EvalCell(penv, node)
}

// EvalCell evaluates any cell expression node to a Value. Grounded in
// original_source/graftlib/eval_cell.py's `eval_cell`.
func EvalCell(penv *value.ProgramEnv, node ast.Node) (value.Value, error) {
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

	case *ast.String:
		return value.String(n.Value), nil

	case *ast.Negative:
		v, err := EvalCell(penv, n.Value)
		if err != nil {
			return nil, err
		}
		num, ok := v.(value.Number)
		if !ok {
			return nil, newErrf(TypeMismatch, "unary minus needs a number, got %T", v)
		}
		return -num, nil

	case *ast.Symbol:
		return penv.Get(n.Name), nil

	case *ast.Operation:
		return evalOperation(penv, n)

	case *ast.Assignment:
		if penv.Env.HasLocal(n.Target) {
			return nil, newErr(ReassignmentForbidden, n.Target)
		}
		v, err := EvalCell(penv, n.Value)
		if err != nil {
			return nil, err
		}
		penv.Set(n.Target, v)
		return v, nil

	case *ast.Modify:
		return evalModifyCell(penv, n)

	case *ast.FunctionCall:
		fn, err := EvalCell(penv, n.Fn)
		if err != nil {
			return nil, err
		}
		args := make([]value.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := EvalCell(penv, a)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return CallCell(penv, fn, args)

	case *ast.FunctionDef:
		return &value.UserFunction{Params: n.Params, Body: n.Body, Env: penv.Env.MakeChild()}, nil

	case *ast.Array:
		elems := make([]value.Value, len(n.Elements))
		for i, e := range n.Elements {
			v, err := EvalCell(penv, e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &value.Array{Elems: elems}, nil

	case *ast.Label:
		return nil, newErr(LabelInFunction, "")

	default:
		return nil, newErrf(TypeMismatch, "unknown cell expression type %T", node)
	}
}

func evalOperation(penv *value.ProgramEnv, op *ast.Operation) (value.Value, error) {
	lv, err := EvalCell(penv, op.Left)
	if err != nil {
		return nil, err
	}
	rv, err := EvalCell(penv, op.Right)
	if err != nil {
		return nil, err
	}
	l, ok := lv.(value.Number)
	if !ok {
		return nil, newErrf(TypeMismatch, "left operand must be a number, got %T", lv)
	}
	r, ok := rv.(value.Number)
	if !ok {
		return nil, newErrf(TypeMismatch, "right operand must be a number, got %T", rv)
	}
	switch op.Op {
	case ast.OpAdd:
		return l + r, nil
	case ast.OpSub:
		return l - r, nil
	case ast.OpMul:
		return l * r, nil
	case ast.OpDiv:
		if r == 0 {
			return nil, newErr(DivisionByZero, "")
		}
		return l / r, nil
	case ast.OpEq:
		return boolNumber(l == r), nil
	case ast.OpNotEq:
		return boolNumber(l != r), nil
	case ast.OpLess:
		return boolNumber(l < r), nil
	case ast.OpGreater:
		return boolNumber(l > r), nil
	case ast.OpLessEq:
		return boolNumber(l <= r), nil
	case ast.OpGreaterEq:
		return boolNumber(l >= r), nil
	default:
		return nil, newErrf(UnknownOperator, "%d", op.Op)
	}
}

func boolNumber(b bool) value.Number {
	if b {
		return value.Number(1)
	}
	return value.Number(0)
}

// evalModifyCell applies `+= -= *= /=`, cell's only compound-
// assignment operators (no bare juxtaposition, no "="-as-Modify — cell
// spells fresh binding as Assignment).
func evalModifyCell(penv *value.ProgramEnv, m *ast.Modify) (value.Value, error) {
	cur, err := asNumber(penv.Get(m.Target))
	if err != nil {
		return nil, err
	}
	rv, err := EvalCell(penv, m.Value)
	if err != nil {
		return nil, err
	}
	val, ok := rv.(value.Number)
	if !ok {
		return nil, newErrf(TypeMismatch, "modify value must be a number, got %T", rv)
	}
	var result float64
	switch m.Op {
	case ast.OpAdd:
		result = cur + float64(val)
	case ast.OpSub:
		result = cur - float64(val)
	case ast.OpMul:
		result = cur * float64(val)
	case ast.OpDiv:
		if val == 0 {
			return nil, newErr(DivisionByZero, "")
		}
		result = cur / float64(val)
	default:
		return nil, newErrf(UnknownOperator, "%d", m.Op)
	}
	penv.Set(m.Target, value.Number(result))
	return value.Number(result), nil
}

// CallCell invokes fn (a NativeFunction or UserFunction) with args.
// Exported because cellfuncs.go's `If`/`T`/`For` built-ins need to
// call back into user-supplied function values. Grounded in
// eval_cell.py's `_function_call`.
func CallCell(penv *value.ProgramEnv, fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.UserFunction:
		if len(args) != len(f.Params) {
			return nil, newErrf(Arity, "%d arguments passed, function requires %d", len(args), len(f.Params))
		}
		newEnv := f.Env.MakeChild()
		for i, p := range f.Params {
			newEnv.Set(p, args[i])
		}
		callPenv := penv.WithEnv(newEnv)
		return evalBodyCell(callPenv, f.Body)
	case *value.NativeFunction:
		glog.Debugf("cell call %s", f.Name)
		return f.Fn(penv, args)
	default:
		return nil, newErrf(NotAFunction, "%v", fn)
	}
}

func evalBodyCell(penv *value.ProgramEnv, body []ast.Node) (value.Value, error) {
	var result value.Value = value.None{}
	for _, stmt := range body {
		v, err := EvalCell(penv, stmt)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
