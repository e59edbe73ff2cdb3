package parse

import (
	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/lex"
	"github.com/andybalaam/graft/token"
)

// ParseCell parses src in the C-like cell dialect into a sequence of
// top-level statements. Grounded in
// original_source/graftlib/parse_cell.py's grammar: expressions are a
// flat left-fold over binary operators with no precedence
// distinctions (spec.md section 4.2's "left-associative and flat"
// requirement), the same shape as v1's left-fold in parse/v1.go
// rather than expr/parse.go's operator-precedence Tree.O / Tree.F
// loop.
func ParseCell(src string) (nodes []ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()

	d := lex.NewCell(src)
	// The lexer emits a StatementSep for every run of whitespace, including
	// whitespace inside a statement ("x = 3"); the grammar is
	// self-delimiting, so the parser drops them.
	p := newPager(func() (token.Token, error) {
		for {
			t, err := d.NextToken()
			if err != nil || t.Type != token.StatementSep {
				return t, err
			}
		}
	})
	c := &cellParser{p: p}

	c.skipSeps()
	for c.p.peek().Type != token.EOF {
		n := c.statement()
		if n != nil {
			nodes = append(nodes, n)
		}
		c.skipSeps()
	}
	if p.err != nil {
		return nil, p.err
	}
	return nodes, nil
}

type cellParser struct {
	p *pager
}

func (c *cellParser) skipSeps() {
	for c.p.peek().Type == token.StatementSep {
		c.p.next()
	}
}

func (c *cellParser) expect(t token.Type, context string) token.Token {
	nx := c.p.next()
	if nx.Type != t {
		panic(newError(UnexpectedToken, nx, context))
	}
	return nx
}

// statement parses one cell statement: a label, an assignment/modify,
// or a bare expression.
func (c *cellParser) statement() ast.Node {
	if c.p.peek().Type == token.CellLabel {
		c.p.next()
		return &ast.Label{}
	}

	if c.p.peek().Type == token.Symbol {
		save := c.p.pos
		name := c.p.next().Val
		switch c.p.peek().Type {
		case token.Assign:
			c.p.next()
			return &ast.Assignment{Target: name, Value: c.expr()}
		case token.ModifyAdd:
			c.p.next()
			return &ast.Modify{Op: ast.OpAdd, Target: name, Value: c.expr()}
		case token.ModifySub:
			c.p.next()
			return &ast.Modify{Op: ast.OpSub, Target: name, Value: c.expr()}
		case token.ModifyMul:
			c.p.next()
			return &ast.Modify{Op: ast.OpMul, Target: name, Value: c.expr()}
		case token.ModifyDiv:
			c.p.next()
			return &ast.Modify{Op: ast.OpDiv, Target: name, Value: c.expr()}
		}
		c.p.pos = save
	}

	return c.expr()
}

func binOpFor(t token.Type) (ast.Op, bool) {
	switch t {
	case token.Operator:
		return 0, false // resolved from Val below
	case token.Equal:
		return ast.OpEq, true
	case token.NotEqual:
		return ast.OpNotEq, true
	case token.Less:
		return ast.OpLess, true
	case token.Greater:
		return ast.OpGreater, true
	case token.LessEqual:
		return ast.OpLessEq, true
	case token.GreaterEqual:
		return ast.OpGreaterEq, true
	default:
		return 0, false
	}
}

func arithOpFor(val string) (ast.Op, bool) {
	switch val {
	case "+":
		return ast.OpAdd, true
	case "-":
		return ast.OpSub, true
	case "*":
		return ast.OpMul, true
	case "/":
		return ast.OpDiv, true
	default:
		return 0, false
	}
}

// expr parses a full expression as a flat left-fold over every binary
// operator, with no precedence distinctions: spec.md section 4.2
// requires cell to be "left-associative and flat", evaluating
// "operators strictly left-to-right as tokens arrive" (a deliberate,
// pedagogic-language choice, not an oversight). `1 + 2 * 3` therefore
// parses as `(1 + 2) * 3`, exactly like v1's juxtaposed-multiply
// left-fold in parse/v1.go.
func (c *cellParser) expr() ast.Node {
	left := c.unary()
	for {
		op, ok := c.peekOp()
		if !ok {
			return left
		}
		c.p.next()
		right := c.unary()
		left = &ast.Operation{Op: op, Left: left, Right: right}
	}
}

func (c *cellParser) peekOp() (ast.Op, bool) {
	t := c.p.peek()
	if t.Type == token.Operator {
		return arithOpFor(t.Val)
	}
	return binOpFor(t.Type)
}

// unary parses a unary minus or falls through to a postfix-call
// primary.
func (c *cellParser) unary() ast.Node {
	if t := c.p.peek(); t.Type == token.Operator && t.Val == "-" {
		c.p.next()
		return &ast.Negative{Value: c.unary()}
	}
	return c.postfix(c.primary())
}

// postfix attaches any number of `(args)` call suffixes to base, e.g.
// `f(1)(2)` or `sin(x)`.
func (c *cellParser) postfix(base ast.Node) ast.Node {
	for c.p.peek().Type == token.LParen {
		c.p.next()
		var args []ast.Node
		if c.p.peek().Type != token.RParen {
			args = append(args, c.expr())
			for c.p.peek().Type == token.Comma {
				c.p.next()
				args = append(args, c.expr())
			}
		}
		c.expect(token.RParen, "call argument list")
		base = &ast.FunctionCall{Fn: base, Args: args, Repeat: 1}
	}
	return base
}

// primary parses the atoms of a cell expression: literals, symbols,
// parenthesised expressions, array literals, and function literals.
func (c *cellParser) primary() ast.Node {
	nx := c.p.next()
	switch nx.Type {
	case token.Number:
		return &ast.Number{Value: nx.Val}
	case token.String:
		return &ast.String{Value: nx.Val}
	case token.Symbol:
		return &ast.Symbol{Name: nx.Val}
	case token.LParen:
		inner := c.expr()
		c.expect(token.RParen, "parenthesised expression")
		return inner
	case token.LBracket:
		return c.arrayLiteral()
	case token.ParamListPrefix:
		return c.funcLiteral()
	default:
		panic(newError(UnexpectedToken, nx, "expression"))
	}
}

// arrayLiteral parses the remainder of `[ expr, expr, ... ]`, already
// past the opening '['.
func (c *cellParser) arrayLiteral() ast.Node {
	var elems []ast.Node
	if c.p.peek().Type != token.RBracket {
		elems = append(elems, c.expr())
		for c.p.peek().Type == token.Comma {
			c.p.next()
			elems = append(elems, c.expr())
		}
	}
	c.expect(token.RBracket, "array literal")
	return &ast.Array{Elements: elems}
}

// funcLiteral parses a function literal `:[p, q]{ stmt stmt }`,
// already past the leading ParamListPrefix (`:`) marker.
func (c *cellParser) funcLiteral() ast.Node {
	c.expect(token.LBracket, "function parameter list")
	var params []string
	if c.p.peek().Type != token.RBracket {
		params = append(params, c.expect(token.Symbol, "parameter name").Val)
		for c.p.peek().Type == token.Comma {
			c.p.next()
			params = append(params, c.expect(token.Symbol, "parameter name").Val)
		}
	}
	c.expect(token.RBracket, "function parameter list")
	c.expect(token.LBrace, "function body")
	var body []ast.Node
	c.skipSeps()
	for c.p.peek().Type != token.RBrace {
		body = append(body, c.statement())
		c.skipSeps()
	}
	c.expect(token.RBrace, "function body")
	return &ast.FunctionDef{Params: params, Body: body}
}
