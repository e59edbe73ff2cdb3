// Package rng is the dependency-injected random source graft's `R`/
// `random` built-in draws from (spec.md section 5: "The RNG is
// external to the evaluator ... so tests may substitute a
// deterministic source"). Grounded in
// original_source/graftlib/world.py's injected `random` field.
package rng

import "math/rand"

// Source draws a uniform float64 in [lo, hi].
type Source interface {
	Float(lo, hi float64) float64
}

// Default wraps math/rand.Rand behind Source. No example repo in the
// pack ships a third-party uniform-range RNG suited to dependency
// injection; stdlib is the justified choice here (see DESIGN.md).
type Default struct {
	r *rand.Rand
}

// NewDefault builds a Source seeded with seed. Callers that want
// nondeterministic output should seed from time.Now().UnixNano().
func NewDefault(seed int64) *Default {
	return &Default{r: rand.New(rand.NewSource(seed))}
}

func (d *Default) Float(lo, hi float64) float64 {
	return lo + d.r.Float64()*(hi-lo)
}

// Fixed is a deterministic test double that replays a fixed sequence
// of values, cycling once exhausted.
type Fixed struct {
	Values []float64
	idx    int
}

func (f *Fixed) Float(lo, hi float64) float64 {
	if len(f.Values) == 0 {
		return lo
	}
	v := f.Values[f.idx%len(f.Values)]
	f.idx++
	return v
}
