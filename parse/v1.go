package parse

import (
	"strconv"

	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/lex"
	"github.com/andybalaam/graft/token"
)

// ParseV1 parses src in the terse v1 dialect into a sequence of
// top-level statement trees, one per tick of execution. Grounded in
// original_source/graftlib/parse_v1.py's recursive "so_far"
// accumulator, adapted to the single V1Function token this package's
// lexer emits (name and all) instead of parse_v1.py's separate marker
// + symbol pair.
func ParseV1(src string) (nodes []ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()

	d := lex.NewV1(src)
	p := newPager(func() (token.Token, error) { return d.NextToken() })
	v := &v1Parser{p: p}

	for {
		n, ok := v.nextStatement(token.EOF)
		if !ok {
			break
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return nodes, nil
}

type v1Parser struct {
	p *pager
}

// defaultModifyValue is the value a Modify takes when none was written
// before the operator, e.g. "+d" meaning d is nudged by this default
// rather than by an explicit operand. Supplements spec.md from
// original_source/graftlib/modify.py's `Number("10") if x is None`.
var defaultModifyValue ast.Node = &ast.Number{Value: "10"}

// nextStatement parses one top-level v1 statement, stopping at endTok
// (token.EOF at top level; V1FuncDefEnd inside a function body). The
// second return is false once there is nothing left to parse.
func (v *v1Parser) nextStatement(endTok token.Type) (ast.Node, bool) {
	return v.continuing(nil, endTok)
}

// continuing mirrors parse_v1.py's continuing_tree: soFar is the
// expression built so far (nil at the very start of a statement). A
// "complete" expression (FunctionCall, Modify or bare Symbol) ends the
// statement unless immediately followed by a continuation '~'.
func (v *v1Parser) continuing(soFar ast.Node, endTok token.Type) (ast.Node, bool) {
	if soFar != nil {
		if v.p.peek().Type == token.EOF && endTok == token.EOF {
			return soFar, true
		}
		switch soFar.(type) {
		case *ast.FunctionCall, *ast.Modify, *ast.Symbol:
			if v.p.peek().Type != token.V1Continuation {
				return soFar, true
			}
		}
	}

	nx := v.p.next()
	if nx.Type == endTok {
		if soFar == nil {
			return nil, false
		}
		return soFar, true
	}
	if nx.Type == token.EOF {
		if soFar == nil {
			return nil, false
		}
		return soFar, true
	}

	// A continuation just keeps reading; swallow any run of them.
	for nx.Type == token.V1Continuation {
		nx = v.p.next()
	}

	next := v.dispatch(soFar, nx, endTok)
	return v.continuing(next, endTok)
}

func (v *v1Parser) dispatch(soFar ast.Node, nx token.Token, endTok token.Type) ast.Node {
	switch nx.Type {
	case token.V1Separator:
		// An empty statement (e.g. a doubled ";;") contributes nothing;
		// keep the accumulator as-is.
		return soFar

	case token.V1Label:
		if soFar != nil {
			panic(newError(UnexpectedToken, nx, "label"))
		}
		return &ast.Label{}

	case token.V1FuncDefStart:
		if soFar != nil {
			panic(newError(UnexpectedToken, nx, "function definition"))
		}
		return v.parseFuncDef()

	case token.V1Function:
		repeat := 1
		if n, ok := soFar.(*ast.Number); ok {
			iv, err := strconv.Atoi(n.Value)
			if err != nil {
				panic(newError(UnexpectedToken, nx, "repeat count"))
			}
			repeat = iv
		} else if soFar != nil {
			panic(newError(UnexpectedToken, nx, "function call"))
		}
		if nx.Val == "" {
			// ':' was not followed by any letters: the only legal
			// continuation is an inline function-literal call target,
			// e.g. ":{ :S }" — the lexer already split the '{' off as
			// its own V1FuncDefStart token.
			if v.p.peek().Type != token.V1FuncDefStart {
				panic(newError(UnexpectedToken, nx, "function name after ':'"))
			}
			v.p.next()
			return &ast.FunctionCall{Fn: v.parseFuncDef(), Repeat: repeat}
		}
		return &ast.FunctionCall{Fn: &ast.Symbol{Name: nx.Val}, Repeat: repeat}

	case token.Number:
		if soFar != nil {
			panic(newError(UnexpectedToken, nx, "number"))
		}
		return &ast.Number{Value: nx.Val}

	case token.Symbol:
		if soFar == nil {
			return &ast.Symbol{Name: nx.Val}
		}
		switch soFar.(type) {
		case *ast.Number, *ast.Symbol:
			return &ast.Modify{Op: ast.OpMul, Target: nx.Val, Value: soFar}
		default:
			panic(newError(UnexpectedToken, nx, "symbol"))
		}

	case token.Operator:
		op := v1Op(nx.Val)
		if soFar == nil {
			if nx.Val == "-" && v.p.peek().Type == token.Number {
				numTok := v.p.next()
				return &ast.Number{Value: numTok.Val, Negative: true}
			}
			return &ast.Modify{Op: op, Target: v.expectSymbolName(), Value: defaultModifyValue}
		}
		return &ast.Modify{Op: op, Target: v.expectSymbolName(), Value: soFar}

	default:
		panic(newError(UnexpectedToken, nx, "statement"))
	}
}

// expectSymbolName consumes the token following an operator, which in
// v1's Modify construction must name the symbol being modified.
func (v *v1Parser) expectSymbolName() string {
	nx := v.p.next()
	if nx.Type != token.Symbol {
		panic(newError(TrailingOperator, nx, nx.Val))
	}
	return nx.Val
}

// v1Op maps a v1 operator's surface text (`+ - * / =`) to the shared
// ast.Op enum; `=` maps to OpAssign. Juxtaposition (Number-Symbol or
// Symbol-Symbol, multiply-and-assign) has no operator text and does not
// come through here: dispatch builds it as OpMul directly.
func v1Op(s string) ast.Op {
	switch s {
	case "+":
		return ast.OpAdd
	case "-":
		return ast.OpSub
	case "*":
		return ast.OpMul
	case "/":
		return ast.OpDiv
	case "=":
		return ast.OpAssign
	default:
		panic(newError(UnexpectedToken, token.Token{Type: token.Operator, Val: s}, "operator"))
	}
}

// parseFuncDef parses a `{ statements }` block, already past the
// opening V1FuncDefStart token. v1 blocks take no parameters: per
// original_source/graftlib/eval_v1.py's
// `_function_call_userdefined`, they run inline in the calling scope
// rather than a fresh child scope with bound arguments — there is
// nothing for a v1 block to bind parameters into.
func (v *v1Parser) parseFuncDef() *ast.FunctionDef {
	var body []ast.Node
	for {
		n, ok := v.nextStatement(token.V1FuncDefEnd)
		if !ok {
			break
		}
		if n != nil {
			body = append(body, n)
		}
	}
	return &ast.FunctionDef{Body: body}
}
