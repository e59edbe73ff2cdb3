package value

import (
	"github.com/andybalaam/graft/rng"
	"github.com/andybalaam/graft/stroke"
)

// strokeBuf is the append-only stroke buffer a ProgramEnv writes into
// during one evaluator step. It is boxed so MakeChild can share the
// same buffer by reference (a called function's strokes attribute to
// the calling fork, spec.md section 5) while Clone (forking) gets a
// fresh one.
type strokeBuf struct {
	strokes []stroke.Stroke
}

// ForkFunc is invoked by the `fork`/`F` built-in. It performs the
// actual fork (cloning the RunningProgram, assigning the new fork its
// id) and is supplied by the scheduler, keeping value package free of
// any scheduler dependency.
type ForkFunc func() (Value, error)

// ProgramEnv is an Env plus the three per-fork amenities spec.md
// section 3 calls for: an RNG handle, a fork callback, and a stroke
// buffer. Grounded in original_source/graftlib/programenv.py.
type ProgramEnv struct {
	Env  *Env
	Rand rng.Source
	Fork ForkFunc
	buf  *strokeBuf
}

// NewProgramEnv creates a ProgramEnv over env with an empty stroke
// buffer.
func NewProgramEnv(env *Env, r rng.Source, fork ForkFunc) *ProgramEnv {
	return &ProgramEnv{Env: env, Rand: r, Fork: fork, buf: &strokeBuf{}}
}

// MakeChild creates a child scope (function-call invocation) that
// shares this ProgramEnv's stroke buffer and fork/RNG amenities.
func (p *ProgramEnv) MakeChild() *ProgramEnv {
	return &ProgramEnv{Env: p.Env.MakeChild(), Rand: p.Rand, Fork: p.Fork, buf: p.buf}
}

// WithEnv returns a ProgramEnv identical to p but scoped to e instead
// of p.Env — used when calling a user-defined function, whose body
// must run against its closure environment (a child of the scope it
// was defined in) rather than the caller's dynamic scope, while still
// sharing the caller's stroke buffer, RNG and fork callback.
func (p *ProgramEnv) WithEnv(e *Env) *ProgramEnv {
	return &ProgramEnv{Env: e, Rand: p.Rand, Fork: p.Fork, buf: p.buf}
}

// Clone deep-copies the Env chain and gives the result its own fresh
// stroke buffer, used when a running program forks (spec.md section
// 4.4): the clone's strokes must never be attributed to the parent.
// fork replaces the forked clone's ForkFunc (bound to its own
// scheduler slot).
func (p *ProgramEnv) Clone(fork ForkFunc) *ProgramEnv {
	return &ProgramEnv{Env: p.Env.Clone(), Rand: p.Rand, Fork: fork, buf: &strokeBuf{}}
}

// Get reads name (auto-vivifying Number(0) on miss, see Env.Get).
func (p *ProgramEnv) Get(name string) Value {
	return p.Env.Get(name)
}

// Set writes name, snapshotting x/y's previous value into xprev/yprev
// first — the one "magic variable" behaviour in the language (spec.md
// section 3's TurtleState invariant), grounded in programenv.py's set.
func (p *ProgramEnv) Set(name string, v Value) {
	switch name {
	case "x":
		p.Env.Set("xprev", p.Env.Get("x"))
	case "y":
		p.Env.Set("yprev", p.Env.Get("y"))
	}
	p.Env.Set(name, v)
}

// AppendStroke records a stroke drawn during the current step.
func (p *ProgramEnv) AppendStroke(s stroke.Stroke) {
	p.buf.strokes = append(p.buf.strokes, s)
}

// DrainStrokes returns and clears the strokes collected since the
// last drain (scheduler.RunningProgram.Next calls this once per
// statement).
func (p *ProgramEnv) DrainStrokes() []stroke.Stroke {
	s := p.buf.strokes
	p.buf.strokes = nil
	return s
}
