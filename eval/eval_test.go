package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/eval"
	"github.com/andybalaam/graft/parse"
	"github.com/andybalaam/graft/rng"
	"github.com/andybalaam/graft/value"
)

func newV1Penv() *value.ProgramEnv {
	return value.NewProgramEnv(eval.NewGraftEnv(), rng.NewDefault(1), nil)
}

func newCellPenv() *value.ProgramEnv {
	return value.NewProgramEnv(eval.NewCellEnv(), rng.NewDefault(1), nil)
}

func runV1(t *testing.T, penv *value.ProgramEnv, src string) {
	t.Helper()
	nodes, err := parse.ParseV1(src)
	require.NoError(t, err)
	for _, n := range nodes {
		require.NoError(t, eval.EvalV1Statement(penv, n))
	}
}

func TestV1StepDrawsALineAndMoves(t *testing.T) {
	penv := newV1Penv()
	runV1(t, penv, ":S")

	x, _ := penv.Get("x").(value.Number)
	y, _ := penv.Get("y").(value.Number)
	assert.InDelta(t, 0.0, float64(x), 1e-9)
	assert.InDelta(t, 10.0, float64(y), 1e-9)

	strokes := penv.DrainStrokes()
	require.Len(t, strokes, 1)
}

func TestV1RepeatedFunctionCall(t *testing.T) {
	penv := newV1Penv()
	runV1(t, penv, "2:S")
	strokes := penv.DrainStrokes()
	assert.Len(t, strokes, 2)
}

func TestV1ModifyDefaultValue(t *testing.T) {
	penv := newV1Penv()
	runV1(t, penv, "+d")
	d := penv.Get("d").(value.Number)
	assert.Equal(t, value.Number(10), d)
}

func TestV1ModifyExplicitValue(t *testing.T) {
	penv := newV1Penv()
	runV1(t, penv, "3+d")
	d := penv.Get("d").(value.Number)
	assert.Equal(t, value.Number(3), d)
}

func TestV1JuxtapositionMultiply(t *testing.T) {
	penv := newV1Penv()
	runV1(t, penv, "+d") // d = 10
	runV1(t, penv, "3d") // d = 10 * 3
	d := penv.Get("d").(value.Number)
	assert.Equal(t, value.Number(30), d)
}

func TestV1RandomOperandUsedInModify(t *testing.T) {
	penv := newV1Penv()
	nodes, err := parse.ParseV1(":R~+d")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.NoError(t, eval.EvalV1Statement(penv, nodes[0]))
	d := penv.Get("d").(value.Number)
	assert.GreaterOrEqual(t, float64(d), -10.0)
	assert.Less(t, float64(d), 10.0)
}

func TestV1BareFunctionDefIsAnError(t *testing.T) {
	penv := newV1Penv()
	nodes, err := parse.ParseV1("{:S}")
	require.NoError(t, err)
	err = eval.EvalV1Statement(penv, nodes[0])
	require.Error(t, err)
	var ee *eval.EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, eval.NotAFunction, ee.Kind)
}

func TestV1InlineFunctionLiteralCallRunsBody(t *testing.T) {
	penv := newV1Penv()
	runV1(t, penv, ":{:S:S}")
	assert.Len(t, penv.DrainStrokes(), 2)
}

func TestCellAssignmentThenReassignmentForbidden(t *testing.T) {
	penv := newCellPenv()
	nodes, err := parse.ParseCell("x = 3")
	require.NoError(t, err)
	_, err = eval.EvalCellStatement(penv, nodes[0])
	require.NoError(t, err)

	_, err = eval.EvalCellStatement(penv, nodes[0])
	require.Error(t, err)
	var ee *eval.EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, eval.ReassignmentForbidden, ee.Kind)
}

func TestCellModify(t *testing.T) {
	penv := newCellPenv()
	for _, src := range []string{"x = 3", "x += 4"} {
		nodes, err := parse.ParseCell(src)
		require.NoError(t, err)
		_, err = eval.EvalCellStatement(penv, nodes[0])
		require.NoError(t, err)
	}
	v := penv.Get("x").(value.Number)
	assert.Equal(t, value.Number(7), v)
}

func TestCellArithmeticIsFlatLeftToRight(t *testing.T) {
	// spec.md section 4.2: no operator precedence in cell, so
	// "1 + 2 * 3" evaluates as (1 + 2) * 3 == 9, not 1 + (2 * 3) == 7.
	penv := newCellPenv()
	nodes, err := parse.ParseCell("1 + 2 * 3")
	require.NoError(t, err)
	v, err := eval.EvalCellStatement(penv, nodes[0])
	require.NoError(t, err)
	assert.Equal(t, value.Number(9), v)
}

func TestCellFunctionLiteralCallWithArgs(t *testing.T) {
	penv := newCellPenv()
	nodes, err := parse.ParseCell("f = :[a, b] { a + b }")
	require.NoError(t, err)
	_, err = eval.EvalCellStatement(penv, nodes[0])
	require.NoError(t, err)

	call, err := parse.ParseCell("f(3, 4)")
	require.NoError(t, err)
	v, err := eval.EvalCellStatement(penv, call[0])
	require.NoError(t, err)
	assert.Equal(t, value.Number(7), v)
}

func TestCellIfTrueBranch(t *testing.T) {
	penv := newCellPenv()
	for _, src := range []string{
		"yes = :[] { 1 }",
		"no = :[] { 0 }",
	} {
		nodes, err := parse.ParseCell(src)
		require.NoError(t, err)
		_, err = eval.EvalCellStatement(penv, nodes[0])
		require.NoError(t, err)
	}
	nodes, err := parse.ParseCell("If(1, yes, no)")
	require.NoError(t, err)
	v, err := eval.EvalCellStatement(penv, nodes[0])
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestCellArrayAddGetLen(t *testing.T) {
	penv := newCellPenv()
	for _, src := range []string{
		"arr = [1, 2, 3]",
		"Add(arr, 4)",
	} {
		nodes, err := parse.ParseCell(src)
		require.NoError(t, err)
		_, err = eval.EvalCellStatement(penv, nodes[0])
		require.NoError(t, err)
	}
	nodes, err := parse.ParseCell("Len(arr)")
	require.NoError(t, err)
	v, err := eval.EvalCellStatement(penv, nodes[0])
	require.NoError(t, err)
	assert.Equal(t, value.Number(4), v)

	nodes, err = parse.ParseCell("Get(arr, 5)")
	require.NoError(t, err)
	v, err = eval.EvalCellStatement(penv, nodes[0])
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v) // index 5 % 4 == 1 -> second element
}

func TestCellDivisionByZero(t *testing.T) {
	penv := newCellPenv()
	nodes, err := parse.ParseCell("1 / 0")
	require.NoError(t, err)
	_, err = eval.EvalCellStatement(penv, nodes[0])
	require.Error(t, err)
	var ee *eval.EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, eval.DivisionByZero, ee.Kind)
}
