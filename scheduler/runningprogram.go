// Package scheduler advances many concurrent interpreter instances in
// lockstep, one statement each per tick, forking new instances on
// demand and emitting a time-indexed slice of strokes (one slot per
// active fork) every tick. Grounded directly in
// original_source/graftlib/graftrun.py's RunningProgram,
// MultipleRunningPrograms and FramesCounter.
package scheduler

import (
	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/stroke"
	"github.com/andybalaam/graft/value"
)

// StatementFn runs one top-level statement against penv. Both dialect
// evaluators fit this shape; V1Statement and CellStatement adapt
// eval.EvalV1Statement/EvalCellStatement to it.
type StatementFn func(penv *value.ProgramEnv, node ast.Node) error

// RunningProgram is one interpreter instance: a program counter over a
// shared statement list, a label to loop back to, and its own
// ProgramEnv. Grounded in graftrun.py's RunningProgram.
type RunningProgram struct {
	Program []ast.Node
	Penv    *value.ProgramEnv
	Eval    StatementFn
	PC      int
	Label   int
}

// Next runs the statement at PC (wrapping to Label when PC runs off
// the end, graftrun.py's "pc = label" loop-back), advances PC, and
// returns every stroke the statement drew. A Label statement instead
// just records the loop-back point and draws nothing, matching
// `RunningProgram.statement`'s `Label` case.
func (rp *RunningProgram) Next() ([]stroke.Stroke, error) {
	if len(rp.Program) == 0 {
		return nil, nil
	}
	if rp.PC >= len(rp.Program) {
		rp.PC = rp.Label
	}
	stmt := rp.Program[rp.PC]
	rp.PC++

	if _, ok := stmt.(*ast.Label); ok {
		rp.Label = rp.PC
		return nil, nil
	}

	if err := rp.Eval(rp.Penv, stmt); err != nil {
		return nil, err
	}
	return rp.Penv.DrainStrokes(), nil
}
