package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/token"
)

func TestRuneScannerPeekDoesNotConsume(t *testing.T) {
	s := token.NewRuneScanner("ab")
	r, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
}

func TestRuneScannerNextAdvances(t *testing.T) {
	s := token.NewRuneScanner("ab")
	r, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, 'b', r)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.True(t, s.Done())
}

func TestRuneScannerCollectStopsAtDisallowed(t *testing.T) {
	s := token.NewRuneScanner("bc+d")
	r, _ := s.Next()
	got := s.Collect(r, func(c rune) bool { return c != '+' })
	assert.Equal(t, "bc", got)

	next, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, '+', next)
}

func TestRuneScannerCollectWhileEmptyResult(t *testing.T) {
	s := token.NewRuneScanner(":")
	s.Next() // consume the ':'
	got := s.CollectWhile(func(c rune) bool { return c != ':' && c != 0 })
	assert.Equal(t, "", got)
}

func TestRuneScannerPosTracksOffset(t *testing.T) {
	s := token.NewRuneScanner("xyz")
	assert.Equal(t, 0, s.Pos())
	s.Next()
	assert.Equal(t, 1, s.Pos())
}

func TestTokenStringFormatsValAndType(t *testing.T) {
	tok := token.Token{Type: token.Symbol, Val: "d"}
	assert.Equal(t, `Symbol("d")`, tok.String())

	punct := token.Token{Type: token.LParen}
	assert.Equal(t, "LParen", punct.String())
}
