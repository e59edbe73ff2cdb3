// Package stroke defines the atomic drawing output of the
// interpreter — Line, Dot, and the Elided wrapper — plus the
// optimiser that rounds and deduplicates a stroke stream. Grounded in
// original_source/graftlib/pt.py, line.py, dot.py,
// strokeoptimiser.py and round_.py.
package stroke

import "fmt"

// Pt is a 2D point. Value type, equality by component (spec.md
// section 3).
type Pt struct {
	X, Y float64
}

func (p Pt) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Color is an (r,g,b,a) tuple, each channel folded into (-100, 100]
// by the optimiser.
type Color struct {
	R, G, B, A float64
}

// Stroke is any of Line, Dot, or Elided[Line]/Elided[Dot]. Closed via
// an unexported method.
type Stroke interface {
	stroke()
}

// Line is a drawn segment from Start to End.
type Line struct {
	Start, End Pt
	Color      Color
	Size       float64
}

// Dot is a drawn point.
type Dot struct {
	Pos   Pt
	Color Color
	Size  float64
}

// Elided wraps a Line or Dot that was suppressed as a duplicate of an
// already-emitted canonical stroke, but whose positional effect on the
// turtle still needs to be observed by consumers (spec.md section 3's
// invariant: Elided never wraps Elided). Inner is always a *Line or
// *Dot.
type Elided struct {
	Inner Stroke
}

func (*Line) stroke()    {}
func (*Dot) stroke()     {}
func (*Elided) stroke()  {}

// NewElided wraps s, panicking if s is itself an *Elided — the one
// invariant this type exists to uphold.
func NewElided(s Stroke) *Elided {
	if _, ok := s.(*Elided); ok {
		panic("stroke: cannot elide an already-elided stroke")
	}
	return &Elided{Inner: s}
}

// End returns the turtle position this stroke leaves behind —
// Line.End, Dot.Pos, or (recursively) the wrapped stroke's End. Used
// by the animation driver and by the section 8 "eliding is position-
// preserving" property test.
func End(s Stroke) Pt {
	switch v := s.(type) {
	case *Line:
		return v.End
	case *Dot:
		return v.Pos
	case *Elided:
		return End(v.Inner)
	default:
		panic(fmt.Sprintf("stroke: unknown stroke type %T", s))
	}
}
