package parse

import "github.com/andybalaam/graft/token"

// pager buffers a lex.Dialect's token stream so the grammar can peek
// one token ahead and back up by one, the same shape as
// expr/parse.go's LexTokenPager wrapping qlbridge's lexer.
type pager struct {
	toks []token.Token
	pos  int // index of the token last returned by next(); -1 before the first call
	err  error
}

// nextFn pulls one token from the underlying lexer. It is a func
// rather than an interface because both dialects' NextToken already
// satisfy this exact shape (lex.Dialect).
type nextFn func() (token.Token, error)

func newPager(next nextFn) *pager {
	p := &pager{pos: -1}
	for {
		t, err := next()
		if err != nil {
			p.err = err
			break
		}
		p.toks = append(p.toks, t)
		if t.Type == token.EOF {
			break
		}
	}
	return p
}

// cur returns the token at the pager's current position. Call next()
// at least once before calling cur().
func (p *pager) cur() token.Token {
	if p.pos < 0 || p.pos >= len(p.toks) {
		return token.Token{Type: token.EOF}
	}
	return p.toks[p.pos]
}

// peek returns the token after cur() without advancing.
func (p *pager) peek() token.Token {
	if p.pos+1 >= len(p.toks) {
		return token.Token{Type: token.EOF}
	}
	return p.toks[p.pos+1]
}

// next advances and returns the new current token.
func (p *pager) next() token.Token {
	if p.pos+1 < len(p.toks) {
		p.pos++
	}
	return p.cur()
}

// backup rewinds by one token; next() will re-return the token just
// consumed.
func (p *pager) backup() {
	if p.pos >= 0 {
		p.pos--
	}
}

// atEnd reports whether cur() is the final EOF token.
func (p *pager) atEnd() bool {
	return p.cur().Type == token.EOF
}
