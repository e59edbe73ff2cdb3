package token

// RuneScanner is the single-character-lookahead primitive both
// lexers scan over. It is the Go shape of
// original_source/graftlib/peekable.py's Peekable: Next consumes and
// returns the rune under the cursor, Peek reports it without
// consuming, and Done reports end of input instead of raising.
type RuneScanner struct {
	src  []rune
	pos  int
	done bool
}

// NewRuneScanner builds a scanner over src, primed so Peek/Next see
// the first rune immediately.
func NewRuneScanner(src string) *RuneScanner {
	return &RuneScanner{src: []rune(src)}
}

// Done reports whether the scanner has no more runes to give out.
func (s *RuneScanner) Done() bool {
	return s.pos >= len(s.src)
}

// Peek returns the rune under the cursor without consuming it. ok is
// false at end of input.
func (s *RuneScanner) Peek() (r rune, ok bool) {
	if s.Done() {
		return 0, false
	}
	return s.src[s.pos], true
}

// Next consumes and returns the rune under the cursor. ok is false at
// end of input.
func (s *RuneScanner) Next() (r rune, ok bool) {
	if s.Done() {
		return 0, false
	}
	r = s.src[s.pos]
	s.pos++
	return r, true
}

// Pos is the current rune offset, used to stamp Token.Pos.
func (s *RuneScanner) Pos() int {
	return s.pos
}

// Collect consumes and returns runes starting with first, continuing
// for as long as allowed(peeked rune) is true. Mirrors the `collect`/
// `_scan` helper duplicated across original_source/graftlib/lex*.py.
func (s *RuneScanner) Collect(first rune, allowed func(rune) bool) string {
	buf := []rune{first}
	for {
		r, ok := s.Peek()
		if !ok || !allowed(r) {
			break
		}
		s.Next()
		buf = append(buf, r)
	}
	return string(buf)
}

// CollectWhile consumes and returns runes for as long as
// allowed(peeked rune) is true, without a pre-consumed first rune.
// Used by v1's `:name` (the function name may be empty, as in a bare
// `:`) where the ':' itself is not part of the collected text.
func (s *RuneScanner) CollectWhile(allowed func(rune) bool) string {
	var buf []rune
	for {
		r, ok := s.Peek()
		if !ok || !allowed(r) {
			break
		}
		s.Next()
		buf = append(buf, r)
	}
	return string(buf)
}
