package anim

import "math"

func limit(val, r float64) float64 {
	if val < -r {
		return -r
	}
	if val > r {
		return r
	}
	return val
}

// smoothValue critically-damps its way towards whatever target it was
// last asked to track. Grounded in windowanimator.py's _SmoothValue.
type smoothValue struct {
	value float64
	v     float64
}

func newSmoothValue(value float64) *smoothValue {
	return &smoothValue{value: value}
}

func (s *smoothValue) setTarget(target float64) {
	s.v += 0.5 * (target - s.value) // acceleration
	s.v = limit(s.v, 200.0) * 0.2   // limit + damping
	s.value += s.v
}

// WindowAnimator smooths the jump from wherever the camera is now to
// wherever the stroke extents say it should be, so the view pans and
// zooms instead of snapping. Grounded in windowanimator.py's
// WindowAnimator.
type WindowAnimator struct {
	lookaheadSteps int
	x, y, w, h     *smoothValue
	counter        int
}

// NewWindowAnimator builds a WindowAnimator that holds its first
// lookaheadSteps frames' extents fixed before starting to track
// movement, giving Extents.train_on's buffered lookahead somewhere to
// land without the camera jerking at startup.
func NewWindowAnimator(lookaheadSteps int) *WindowAnimator {
	return &WindowAnimator{lookaheadSteps: lookaheadSteps}
}

// Animate returns the (x, y, scale) transform that centres and fits
// ext inside a window of size (winW, winH).
func (wa *WindowAnimator) Animate(ext *Extents, winW, winH float64) (float64, float64, float64) {
	cx, cy := ext.Centre()
	sw, sh := ext.Size()
	if wa.x == nil {
		wa.x = newSmoothValue(cx)
		wa.y = newSmoothValue(cy)
		wa.w = newSmoothValue(sw)
		wa.h = newSmoothValue(sh)
	}
	return wa.move(cx, cy, sw, sh, winW, winH)
}

func (wa *WindowAnimator) move(cx, cy, sw, sh, winW, winH float64) (float64, float64, float64) {
	if wa.counter >= wa.lookaheadSteps {
		wa.x.setTarget(cx)
		wa.y.setTarget(cy)
		wa.w.setTarget(sw)
		wa.h.setTarget(sh)
	}
	wa.counter++

	wScale := 1.0
	if wa.w.value != 0 {
		wScale = winW / wa.w.value
	}
	hScale := 1.0
	if wa.h.value != 0 {
		hScale = winH / wa.h.value
	}
	scale := 0.8 * math.Min(wScale, hScale)
	if scale > 2.0 {
		scale = 2.0
	}

	x := -wa.x.value*scale + winW/2
	y := -wa.y.value*scale + winH/2
	return x, y, scale
}
