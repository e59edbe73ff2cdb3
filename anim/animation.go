package anim

import (
	"fmt"
	"time"

	"github.com/leekchan/timeutil"

	"github.com/andybalaam/graft/internal/glog"
	"github.com/andybalaam/graft/scheduler"
	"github.com/andybalaam/graft/stroke"
)

// TickSource produces one scheduler tick at a time; scheduler.Next
// wrapped together with a scheduler.FramesCounter check fits this
// shape (cmd/graft wires the two together).
type TickSource func() ([]scheduler.TickEntry, error)

// DeleteListener is notified when Animation prunes a stroke off the
// front of its bounded window, so a renderer can retract it.
type DeleteListener interface {
	DeleteStroke(s stroke.Stroke)
}

// Animation is the bounded, always-current view onto a running
// program's stroke output: it keeps at most maxStrokes strokes,
// tracks the turtle's last-known position, and feeds a WindowAnimator
// so callers can pan/zoom to follow the drawing. Grounded in
// animation.py's Animation.
type Animation struct {
	strokes        []stroke.Stroke
	pos            stroke.Pt
	extents        *Extents
	windowAnimator *WindowAnimator
	source         TickSource
	buffered       [][]scheduler.TickEntry
	bufIdx         int
	deleteListener DeleteListener
	maxStrokes     int
}

// NewAnimation builds an Animation reading ticks from source, training
// its initial extents on the first lookaheadSteps ticks (buffering
// them so Step still sees every tick exactly once, in order).
// Grounded in animation.py's `Animation.__init__` and extents.py's
// `train_on`.
func NewAnimation(source TickSource, deleteListener DeleteListener, lookaheadSteps, maxStrokes int) (*Animation, error) {
	a := &Animation{
		extents:        NewExtents(),
		windowAnimator: NewWindowAnimator(lookaheadSteps),
		source:         source,
		deleteListener: deleteListener,
		maxStrokes:     maxStrokes,
	}
	if err := a.trainOn(lookaheadSteps); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Animation) trainOn(lookaheadSteps int) error {
	for i := 0; i < lookaheadSteps; i++ {
		tick, err := a.source()
		if err != nil {
			return err
		}
		a.buffered = append(a.buffered, tick)
		for _, entry := range tick {
			if line, ok := entry.Stroke.(*stroke.Line); ok {
				a.extents.Add(line.Start)
				a.extents.Add(line.End)
			}
		}
	}
	return nil
}

func (a *Animation) nextTick() ([]scheduler.TickEntry, error) {
	if a.bufIdx < len(a.buffered) {
		t := a.buffered[a.bufIdx]
		a.buffered[a.bufIdx] = nil
		a.bufIdx++
		return t, nil
	}
	return a.source()
}

// Step consumes one tick, folding every fork's drawn stroke into the
// bounded window and moving the tracked position. It returns false,
// with no error, once the tick source is exhausted (the frame budget
// was reached) — the same "ran out of frames, not a failure" shape as
// animation.py's `step` catching StopIteration.
func (a *Animation) Step() (bool, error) {
	tick, err := a.nextTick()
	if err == scheduler.ErrMaxFramesReached {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	for _, entry := range tick {
		if entry.Stroke == nil {
			continue
		}
		if err := a.absorb(entry.Stroke); err != nil {
			return false, err
		}
	}
	a.prune()
	glog.Debugf("anim: frame at %s, %d strokes", timeutil.Strftime(timeNow(), "%Y-%m-%d %H:%M:%S"), len(a.strokes))
	return true, nil
}

func (a *Animation) absorb(cmd stroke.Stroke) error {
	switch s := cmd.(type) {
	case *stroke.Line:
		a.pos = s.End
		a.strokes = append(a.strokes, s)
	case *stroke.Dot:
		a.pos = s.Pos
		a.strokes = append(a.strokes, s)
	case *stroke.Elided:
		switch inner := s.Inner.(type) {
		case *stroke.Line:
			a.pos = inner.End
		case *stroke.Dot:
			a.pos = inner.Pos
		}
	default:
		return fmt.Errorf("anim: unknown stroke type %T", cmd)
	}
	return nil
}

func timeNow() *time.Time {
	t := time.Now()
	return &t
}

// prune evicts strokes past maxStrokes from the front of the window,
// notifying deleteListener for each one.
func (a *Animation) prune() {
	if len(a.strokes) <= a.maxStrokes {
		return
	}
	cut := len(a.strokes) - a.maxStrokes
	toDelete := a.strokes[:cut]
	a.strokes = a.strokes[cut:]
	for _, d := range toDelete {
		a.deleteListener.DeleteStroke(d)
	}
}

func (a *Animation) addExtents(s stroke.Stroke) {
	switch v := s.(type) {
	case *stroke.Elided:
		a.addExtents(v.Inner)
	case *stroke.Line:
		a.extents.Add(v.Start)
		a.extents.Add(v.End)
	case *stroke.Dot:
		a.extents.Add(v.Pos)
	}
}

// AnimateWindow recomputes the camera transform from the current
// stroke window and returns it. Grounded in animation.py's
// `animate_window`.
func (a *Animation) AnimateWindow(winW, winH float64) (float64, float64, float64) {
	x, y, scale := a.windowAnimator.Animate(a.extents, winW, winH)
	a.extents.Reset()
	for _, s := range a.strokes {
		a.addExtents(s)
	}
	return x, y, scale
}

// Strokes returns the current bounded stroke window.
func (a *Animation) Strokes() []stroke.Stroke {
	return a.strokes
}

// Pos returns the turtle's last-known position.
func (a *Animation) Pos() stroke.Pt {
	return a.pos
}
