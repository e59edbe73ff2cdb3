// Package lex turns graft source text into a stream of token.Token,
// one dialect-specific scanner per surface syntax (v1, cell) sharing
// the token.RuneScanner lookahead primitive. Pull-based NextToken,
// mirroring github.com/araddon/qlbridge's lex.Lexer as consumed by
// expr/parse.go's LexTokenPager ("tok := m.lex.NextToken()").
package lex

import (
	"fmt"

	"github.com/andybalaam/graft/token"
)

// ErrorKind classifies a LexError, per spec.md section 7.
type ErrorKind int

const (
	UnknownChar ErrorKind = iota
	UnterminatedString
	IllegalTab
)

// LexError is a fatal, dialect-agnostic lexing failure.
type LexError struct {
	Kind ErrorKind
	Rune rune
	Pos  int
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnterminatedString:
		return fmt.Sprintf("lex: unterminated string at %d", e.Pos)
	case IllegalTab:
		return fmt.Sprintf("lex: tab character not allowed at %d", e.Pos)
	default:
		return fmt.Sprintf("lex: unknown character %q at %d", e.Rune, e.Pos)
	}
}

func isDigit(r rune) bool    { return r >= '0' && r <= '9' }
func isDigitDot(r rune) bool { return isDigit(r) || r == '.' }
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
func isIdentTail(r rune) bool { return isLetter(r) || isDigit(r) }

// Dialect is the parser-facing handle to whichever scanner is active.
type Dialect interface {
	// NextToken returns the next token, or a LexError. Returns an
	// EOF-typed token (never an error) when the source is exhausted.
	NextToken() (token.Token, error)
}
