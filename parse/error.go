// Package parse turns a token stream into AST nodes, one dialect at a
// time (v1, cell), sharing the token pager in this file's sibling
// pager.go. Grounded in expr/parse.go's TokenPager and errorf/recover
// model; there is no Tree type here.
package parse

import (
	"fmt"

	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/token"
)

// ErrorKind is the ParseError taxonomy from spec.md section 4.2.
type ErrorKind int

const (
	UnexpectedEof ErrorKind = iota
	UnexpectedToken
	AssignToNonSymbol
	MalformedParamList
	TrailingOperator
	OrphanContinuation
)

// ParseError is a fatal parse failure.
type ParseError struct {
	Kind    ErrorKind
	Context string
	Found   token.Token
	Pos     int
}

// newError builds a ParseError and logs it at warn level, the same
// errorf-then-return shape expr/parse.go uses around its own
// unexpected-token diagnostics.
func newError(kind ErrorKind, found token.Token, context string) *ParseError {
	e := &ParseError{Kind: kind, Found: found, Context: context}
	glog.Warnf("%s", e.Error())
	return e
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEof:
		return fmt.Sprintf("parse: unexpected end of input, expected %s", e.Context)
	case AssignToNonSymbol:
		return "parse: can only assign to a symbol"
	case MalformedParamList:
		return fmt.Sprintf("parse: malformed parameter list: %s", e.Context)
	case TrailingOperator:
		return fmt.Sprintf("parse: operator %q at end of expression", e.Context)
	case OrphanContinuation:
		return "parse: '~' with no preceding expression to continue"
	default:
		return fmt.Sprintf("parse: unexpected token %s in %s", e.Found, e.Context)
	}
}
