package lex

import (
	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/token"
)

// V1 is the terse dialect's scanner. Grounded in
// original_source/graftlib/lex_v1.py: `:name` is a function-call
// token, `~` a continuation marker, `;` a statement separator, `^` a
// label, `{`/`}` delimit a function body, and juxtaposition (no
// operator between a number/symbol and what follows) is how
// multiplication is spelled — the lexer never emits a token for it.
type V1 struct {
	s *token.RuneScanner
}

// NewV1 builds a v1-dialect scanner over src.
func NewV1(src string) *V1 {
	return &V1{s: token.NewRuneScanner(src)}
}

func isV1Operator(r rune) bool {
	return r == '+' || r == '-' || r == '/' || r == '='
}

func isV1Whitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// NextToken returns the next token in the stream.
func (v *V1) NextToken() (token.Token, error) {
	tok, err := v.nextToken()
	if err != nil {
		return tok, err
	}
	glog.Debugf("lex v1: %s", tok)
	return tok, nil
}

func (v *V1) nextToken() (token.Token, error) {
	for {
		pos := v.s.Pos()
		c, ok := v.s.Next()
		if !ok {
			return token.Token{Type: token.EOF, Pos: pos}, nil
		}
		switch {
		case isV1Whitespace(c):
			// v1 programs are written without whitespace, but
			// tolerating it costs nothing and keeps property-test
			// generators (spec.md section 8) from needing to avoid it.
			continue
		case isDigit(c):
			return token.Token{Type: token.Number, Val: v.s.Collect(c, isDigitDot), Pos: pos}, nil
		case c == ':':
			name := v.s.CollectWhile(isLetter)
			return token.Token{Type: token.V1Function, Val: name, Pos: pos}, nil
		case c == '~':
			return token.Token{Type: token.V1Continuation, Pos: pos}, nil
		case c == ';':
			return token.Token{Type: token.V1Separator, Pos: pos}, nil
		case c == '^':
			return token.Token{Type: token.V1Label, Pos: pos}, nil
		case c == '{':
			return token.Token{Type: token.V1FuncDefStart, Pos: pos}, nil
		case c == '}':
			return token.Token{Type: token.V1FuncDefEnd, Pos: pos}, nil
		case isV1Operator(c):
			return token.Token{Type: token.Operator, Val: v.s.Collect(c, isV1Operator), Pos: pos}, nil
		case isLetter(c):
			return token.Token{Type: token.Symbol, Val: v.s.Collect(c, isLetter), Pos: pos}, nil
		default:
			return token.Token{}, &LexError{Kind: UnknownChar, Rune: c, Pos: pos}
		}
	}
}
