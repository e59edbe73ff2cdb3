// Package eval walks an AST and produces values and drawing side
// effects against a value.ProgramEnv. v1 and cell share the same
// Value/Env runtime but differ enough in calling convention (v1's
// inline, scope-less blocks vs cell's closures) to warrant separate
// per-dialect statement evaluators — see v1.go and cell.go — built on
// the shared built-ins in turtle.go, cellfuncs.go and mathfuncs.go.
package eval

import (
	"fmt"

	"github.com/andybalaam/graft/internal/glog"
)

// ErrorKind is the EvalError taxonomy from spec.md section 4.3.
type ErrorKind int

const (
	UnknownSymbol ErrorKind = iota
	UnknownOperator
	TypeMismatch
	Arity
	NotAFunction
	DivisionByZero
	LabelInFunction
	ReassignmentForbidden
)

// EvalError is a runtime failure while evaluating a statement.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UnknownSymbol:
		return "eval: unknown symbol '" + e.Msg + "'"
	case UnknownOperator:
		return "eval: unknown operator '" + e.Msg + "'"
	case TypeMismatch:
		return "eval: type mismatch: " + e.Msg
	case Arity:
		return "eval: wrong number of arguments: " + e.Msg
	case NotAFunction:
		return "eval: not a function: " + e.Msg
	case DivisionByZero:
		return "eval: division by zero"
	case LabelInFunction:
		return "eval: labels are not allowed inside a function body"
	case ReassignmentForbidden:
		return "eval: '" + e.Msg + "' is already assigned in this scope"
	default:
		return "eval: error"
	}
}

func newErr(kind ErrorKind, msg string) *EvalError {
	e := &EvalError{Kind: kind, Msg: msg}
	glog.Warnf("%s", e.Error())
	return e
}

func newErrf(kind ErrorKind, format string, a ...interface{}) *EvalError {
	return newErr(kind, fmt.Sprintf(format, a...))
}
