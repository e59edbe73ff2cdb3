package lex

import (
	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/token"
)

// Cell is the C-like dialect's scanner. Grounded in
// original_source/graftlib/lex_cell.py's structure (single-pass,
// whitespace folded to one StatementSeparator token, tabs rejected,
// `'...'`/`"..."` strings), extended per spec.md section 4.1 to the
// fuller operator set (`== += -= *= /= < > <= >= ^`).
type Cell struct {
	s *token.RuneScanner
}

// NewCell builds a cell-dialect scanner over src.
func NewCell(src string) *Cell {
	return &Cell{s: token.NewRuneScanner(src)}
}

func isCellWhitespace(r rune) bool { return r == ' ' || r == '\n' }

func isNumStart(r rune) bool  { return isDigit(r) || r == '.' }
func isIdentStart(r rune) bool { return isLetter(r) }

// maybeEq peeks for a trailing '=' and, if present, consumes it and
// returns (withEq, true); otherwise returns (without, false).
func (c *Cell) maybeEq(withEq, without token.Type, pos int) token.Token {
	if r, ok := c.s.Peek(); ok && r == '=' {
		c.s.Next()
		return token.Token{Type: withEq, Pos: pos}
	}
	return token.Token{Type: without, Pos: pos}
}

// maybeOperatorOrModify peeks for a trailing '=' after an arithmetic
// operator char; if present it's a Modify token (`+=` family),
// otherwise a plain Operator carrying the operator's text.
func (c *Cell) maybeOperatorOrModify(op rune, modifyType token.Type, pos int) token.Token {
	if r, ok := c.s.Peek(); ok && r == '=' {
		c.s.Next()
		return token.Token{Type: modifyType, Pos: pos}
	}
	return token.Token{Type: token.Operator, Val: string(op), Pos: pos}
}

// NextToken returns the next token in the stream.
func (c *Cell) NextToken() (token.Token, error) {
	tok, err := c.nextToken()
	if err != nil {
		return tok, err
	}
	glog.Debugf("lex cell: %s", tok)
	return tok, nil
}

func (c *Cell) nextToken() (token.Token, error) {
	if r, ok := c.s.Peek(); ok && isCellWhitespace(r) {
		pos := c.s.Pos()
		c.s.Next()
		for {
			r, ok := c.s.Peek()
			if !ok || !isCellWhitespace(r) {
				break
			}
			c.s.Next()
		}
		return token.Token{Type: token.StatementSep, Pos: pos}, nil
	}

	pos := c.s.Pos()
	ch, ok := c.s.Next()
	if !ok {
		return token.Token{Type: token.EOF, Pos: pos}, nil
	}

	switch {
	case ch == '\t':
		return token.Token{}, &LexError{Kind: IllegalTab, Pos: pos}
	case ch == '(':
		return token.Token{Type: token.LParen, Pos: pos}, nil
	case ch == ')':
		return token.Token{Type: token.RParen, Pos: pos}, nil
	case ch == '{':
		return token.Token{Type: token.LBrace, Pos: pos}, nil
	case ch == '}':
		return token.Token{Type: token.RBrace, Pos: pos}, nil
	case ch == '[':
		return token.Token{Type: token.LBracket, Pos: pos}, nil
	case ch == ']':
		return token.Token{Type: token.RBracket, Pos: pos}, nil
	case ch == ',':
		return token.Token{Type: token.Comma, Pos: pos}, nil
	case ch == ':':
		return token.Token{Type: token.ParamListPrefix, Pos: pos}, nil
	case ch == '^':
		return token.Token{Type: token.CellLabel, Pos: pos}, nil
	case ch == '=':
		return c.maybeEq(token.Equal, token.Assign, pos), nil
	case ch == '<':
		return c.maybeEq(token.LessEqual, token.Less, pos), nil
	case ch == '>':
		return c.maybeEq(token.GreaterEqual, token.Greater, pos), nil
	case ch == '+':
		return c.maybeOperatorOrModify('+', token.ModifyAdd, pos), nil
	case ch == '-':
		return c.maybeOperatorOrModify('-', token.ModifySub, pos), nil
	case ch == '*':
		return c.maybeOperatorOrModify('*', token.ModifyMul, pos), nil
	case ch == '/':
		return c.maybeOperatorOrModify('/', token.ModifyDiv, pos), nil
	case ch == '\'' || ch == '"':
		s, err := c.scanString(ch, pos)
		return s, err
	case isDigit(ch) || ch == '.':
		return token.Token{Type: token.Number, Val: c.s.Collect(ch, isNumStart), Pos: pos}, nil
	case isIdentStart(ch):
		return token.Token{Type: token.Symbol, Val: c.s.Collect(ch, isIdentTail), Pos: pos}, nil
	default:
		return token.Token{}, &LexError{Kind: UnknownChar, Rune: ch, Pos: pos}
	}
}

func (c *Cell) scanString(delim rune, pos int) (token.Token, error) {
	var buf []rune
	for {
		r, ok := c.s.Next()
		if !ok {
			return token.Token{}, &LexError{Kind: UnterminatedString, Pos: pos}
		}
		if r == delim {
			return token.Token{Type: token.String, Val: string(buf), Pos: pos}, nil
		}
		buf = append(buf, r)
	}
}
