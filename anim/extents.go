// Package anim drives the on-screen stroke list and the window's
// pan/zoom animation from a scheduler tick stream, grounded in
// original_source/graftlib/animation.py, extents.py and
// windowanimator.py.
package anim

import "github.com/andybalaam/graft/stroke"

// Extents tracks the bounding box of every point it has seen.
// Grounded in extents.py's Extents.
type Extents struct {
	xMin, xMax, yMin, yMax float64
}

// NewExtents builds an empty Extents, reset to its initial
// (inverted, so the first Add always wins) bounds.
func NewExtents() *Extents {
	e := &Extents{}
	e.Reset()
	return e
}

// Reset clears the bounding box back to its initial inverted state.
func (e *Extents) Reset() {
	e.xMin = 1_000_000.0
	e.xMax = -1_000_000.0
	e.yMin = 1_000_000.0
	e.yMax = -1_000_000.0
}

// Add folds pt into the bounding box.
func (e *Extents) Add(pt stroke.Pt) {
	if pt.X < e.xMin {
		e.xMin = pt.X
	}
	if pt.X > e.xMax {
		e.xMax = pt.X
	}

	if pt.Y < e.yMin {
		e.yMin = pt.Y
	}
	if pt.Y > e.yMax {
		e.yMax = pt.Y
	}
}

// Centre returns the midpoint of the bounding box.
func (e *Extents) Centre() (float64, float64) {
	return (e.xMax + e.xMin) / 2, (e.yMax + e.yMin) / 2
}

// Size returns the width and height of the bounding box.
func (e *Extents) Size() (float64, float64) {
	return e.xMax - e.xMin, e.yMax - e.yMin
}
