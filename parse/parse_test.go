package parse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/parse"
)

func TestParseV1FunctionCall(t *testing.T) {
	nodes, err := parse.ParseV1(":S")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	fc, ok := nodes[0].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, 1, fc.Repeat)
	sym, ok := fc.Fn.(*ast.Symbol)
	require.True(t, ok)
	assert.Equal(t, "S", sym.Name)
}

func TestParseV1RepeatedFunctionCall(t *testing.T) {
	nodes, err := parse.ParseV1("5:F")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	fc := nodes[0].(*ast.FunctionCall)
	assert.Equal(t, 5, fc.Repeat)
}

func TestParseV1ModifyWithDefaultValue(t *testing.T) {
	// "+d" with nothing preceding the operator defaults the step to 10.
	nodes, err := parse.ParseV1("+d")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	m := nodes[0].(*ast.Modify)
	assert.Equal(t, "d", m.Target)
	assert.Equal(t, ast.OpAdd, m.Op)
	n := m.Value.(*ast.Number)
	assert.Equal(t, "10", n.Value)
}

func TestParseV1ModifyWithExplicitValue(t *testing.T) {
	nodes, err := parse.ParseV1("3+d")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	m := nodes[0].(*ast.Modify)
	assert.Equal(t, "d", m.Target)
	n := m.Value.(*ast.Number)
	assert.Equal(t, "3", n.Value)
}

func TestParseV1TrailingSeparatorIsEquivalent(t *testing.T) {
	a, err := parse.ParseV1(":S")
	require.NoError(t, err)
	b, err := parse.ParseV1(":S;")
	require.NoError(t, err)
	assert.Equal(t, len(a), len(b))
}

func TestParseV1Continuation(t *testing.T) {
	// ":R~+d" is one statement: the continuation feeds the call's
	// result in as the Modify's operand instead of ending the statement.
	nodes, err := parse.ParseV1(":R~+d")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	m, ok := nodes[0].(*ast.Modify)
	require.True(t, ok)
	assert.Equal(t, "d", m.Target)
	_, ok = m.Value.(*ast.FunctionCall)
	assert.True(t, ok)
}

func TestParseV1FuncDef(t *testing.T) {
	// A bare block statement parses fine (eval rejects it as "defined
	// but never called" — see eval/v1.go).
	nodes, err := parse.ParseV1("{:S}")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	fd, ok := nodes[0].(*ast.FunctionDef)
	require.True(t, ok)
	require.Len(t, fd.Body, 1)
}

func TestParseV1InlineFunctionLiteralCall(t *testing.T) {
	// ":{...}" calls an anonymous block inline, immediately.
	nodes, err := parse.ParseV1(":{:S}")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	fc, ok := nodes[0].(*ast.FunctionCall)
	require.True(t, ok)
	fd, ok := fc.Fn.(*ast.FunctionDef)
	require.True(t, ok)
	require.Len(t, fd.Body, 1)
}

func TestParseCellAssignment(t *testing.T) {
	nodes, err := parse.ParseCell("x = 3")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	a := nodes[0].(*ast.Assignment)
	assert.Equal(t, "x", a.Target)
	n := a.Value.(*ast.Number)
	assert.Equal(t, "3", n.Value)
}

func TestParseCellModify(t *testing.T) {
	nodes, err := parse.ParseCell("x += 1")
	require.NoError(t, err)
	m := nodes[0].(*ast.Modify)
	assert.Equal(t, ast.OpAdd, m.Op)
	assert.Equal(t, "x", m.Target)
}

func TestParseCellIsFlatLeftToRightNotPrecedenceClimbing(t *testing.T) {
	// spec.md section 4.2: cell is "left-associative and flat", never
	// giving `*`/`/` higher precedence than `+`/`-`. So "1 + 2 * 3"
	// parses as (1 + 2) * 3, not 1 + (2 * 3).
	nodes, err := parse.ParseCell("1 + 2 * 3")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	op := nodes[0].(*ast.Operation)
	assert.Equal(t, ast.OpMul, op.Op)
	_, ok := op.Right.(*ast.Number)
	require.True(t, ok)
	lhs := op.Left.(*ast.Operation)
	assert.Equal(t, ast.OpAdd, lhs.Op)
}

func TestParseCellFunctionCall(t *testing.T) {
	nodes, err := parse.ParseCell("step(10, 20)")
	require.NoError(t, err)
	fc := nodes[0].(*ast.FunctionCall)
	assert.Len(t, fc.Args, 2)
	sym := fc.Fn.(*ast.Symbol)
	assert.Equal(t, "step", sym.Name)
}

func TestParseCellFunctionLiteral(t *testing.T) {
	nodes, err := parse.ParseCell(":[x, y] { x + y }")
	require.NoError(t, err)
	fd := nodes[0].(*ast.FunctionDef)
	assert.Equal(t, []string{"x", "y"}, fd.Params)
	require.Len(t, fd.Body, 1)
}

func TestParseCellArrayLiteral(t *testing.T) {
	nodes, err := parse.ParseCell("[1, 2, 3]")
	require.NoError(t, err)
	arr := nodes[0].(*ast.Array)
	assert.Len(t, arr.Elements, 3)
}

func TestParseCellComparison(t *testing.T) {
	nodes, err := parse.ParseCell("x == 1")
	require.NoError(t, err)
	op := nodes[0].(*ast.Operation)
	assert.Equal(t, ast.OpEq, op.Op)
}

func TestParseCellLabel(t *testing.T) {
	nodes, err := parse.ParseCell("^ x = 1")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	_, ok := nodes[0].(*ast.Label)
	require.True(t, ok)
}

func TestParseCellFlatFoldTreeShapeMatchesExactly(t *testing.T) {
	// A deep structural diff of the whole AST, rather than picking
	// apart individual nodes with type assertions.
	nodes, err := parse.ParseCell("1 - 2 - 3")
	require.NoError(t, err)

	want := []ast.Node{
		&ast.Operation{
			Op: ast.OpSub,
			Left: &ast.Operation{
				Op:    ast.OpSub,
				Left:  &ast.Number{Value: "1"},
				Right: &ast.Number{Value: "2"},
			},
			Right: &ast.Number{Value: "3"},
		},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("cell AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCellUnexpectedTokenIsAnError(t *testing.T) {
	_, err := parse.ParseCell(")")
	require.Error(t, err)
	var pe *parse.ParseError
	require.ErrorAs(t, err, &pe)
}
