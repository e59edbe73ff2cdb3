package stroke_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/stroke"
)

func TestRoundRoundsToOneDecimalPlace(t *testing.T) {
	l := &stroke.Line{
		Start: stroke.Pt{X: 1.04, Y: 2.06},
		End:   stroke.Pt{X: 3.93, Y: 4.97},
		Color: stroke.Color{R: 1, G: 2, B: 3, A: 4},
		Size:  5,
	}
	got := stroke.Round(l).(*stroke.Line)
	assert.Equal(t, 1.0, got.Start.X)
	assert.Equal(t, 2.1, got.Start.Y)
	assert.Equal(t, 3.9, got.End.X)
	assert.Equal(t, 5.0, got.End.Y)
}

func TestRoundIsIdempotent(t *testing.T) {
	l := &stroke.Line{Start: stroke.Pt{X: 1.23, Y: 4.56}, End: stroke.Pt{X: 7.89, Y: 0.12}}
	once := stroke.Round(l)
	twice := stroke.Round(once)
	assert.Equal(t, once, twice)
}

func TestFoldColorWrapsAt100(t *testing.T) {
	d := &stroke.Dot{Color: stroke.Color{R: 150, G: -150, B: 0, A: 0}}
	got := stroke.Round(d).(*stroke.Dot)
	assert.Equal(t, -50.0, got.Color.R)
	assert.Equal(t, 50.0, got.Color.G)
}

func TestFoldChannelBoundaryMapsNegative100ToPositive100(t *testing.T) {
	d := &stroke.Dot{Color: stroke.Color{R: 100}}
	got := stroke.Round(d).(*stroke.Dot)
	assert.Equal(t, 100.0, got.Color.R)

	d2 := &stroke.Dot{Color: stroke.Color{R: -100}}
	got2 := stroke.Round(d2).(*stroke.Dot)
	assert.Equal(t, 100.0, got2.Color.R)
}

func TestOptimiserElidesRepeatedStroke(t *testing.T) {
	o := stroke.NewOptimiser()
	l := &stroke.Line{Start: stroke.Pt{X: 0, Y: 0}, End: stroke.Pt{X: 0, Y: 10}}

	first := o.Process(l)
	_, isElided := first.(*stroke.Elided)
	assert.False(t, isElided)

	second := o.Process(l)
	elided, ok := second.(*stroke.Elided)
	require.True(t, ok)
	assert.Equal(t, stroke.Pt{X: 0, Y: 10}, stroke.End(elided))
}

func TestOptimiserDeleteStrokeReenablesEmission(t *testing.T) {
	o := stroke.NewOptimiser()
	l := &stroke.Line{Start: stroke.Pt{X: 0, Y: 0}, End: stroke.Pt{X: 0, Y: 10}}

	canon := o.Process(l)
	second := o.Process(l)
	_, ok := second.(*stroke.Elided)
	require.True(t, ok)

	o.DeleteStroke(canon)
	third := o.Process(l)
	_, ok = third.(*stroke.Elided)
	assert.False(t, ok, "after delete_stroke, the next emission should be unelided")
}

func TestOptimiserDeleteStrokeAcceptsElided(t *testing.T) {
	o := stroke.NewOptimiser()
	l := &stroke.Line{Start: stroke.Pt{X: 1, Y: 1}, End: stroke.Pt{X: 2, Y: 2}}
	o.Process(l)
	elided := o.Process(l).(*stroke.Elided)

	o.DeleteStroke(elided)
	again := o.Process(l)
	_, ok := again.(*stroke.Elided)
	assert.False(t, ok)
}

func TestElidingPreservesPosition(t *testing.T) {
	l := &stroke.Line{End: stroke.Pt{X: 5, Y: 6}}
	e := stroke.NewElided(l)
	assert.Equal(t, stroke.Pt{X: 5, Y: 6}, stroke.End(e))

	d := &stroke.Dot{Pos: stroke.Pt{X: 1, Y: 2}}
	assert.Equal(t, stroke.Pt{X: 1, Y: 2}, stroke.End(d))
}

func TestNewElidedPanicsOnDoubleWrap(t *testing.T) {
	e := stroke.NewElided(&stroke.Dot{})
	assert.Panics(t, func() { stroke.NewElided(e) })
}

func TestOptimiserDistinguishesLineAndDotAtSamePosition(t *testing.T) {
	o := stroke.NewOptimiser()
	l := &stroke.Line{End: stroke.Pt{X: 1, Y: 1}}
	d := &stroke.Dot{Pos: stroke.Pt{X: 1, Y: 1}}

	_, lineElided := o.Process(l).(*stroke.Elided)
	_, dotElided := o.Process(d).(*stroke.Elided)
	assert.False(t, lineElided)
	assert.False(t, dotElided)
}

func TestOptimiserProcessedStreamMatchesExpectedShape(t *testing.T) {
	// A deep structural diff of the whole processed stroke slice
	// (nested *Elided wrapping a *Line), rather than asserting on one
	// field at a time.
	o := stroke.NewOptimiser()
	repeated := &stroke.Line{Start: stroke.Pt{X: 0, Y: 0}, End: stroke.Pt{X: 0, Y: 10}, Size: 1}

	got := []stroke.Stroke{
		o.Process(repeated),
		o.Process(repeated),
	}
	want := []stroke.Stroke{
		&stroke.Line{Start: stroke.Pt{X: 0, Y: 0}, End: stroke.Pt{X: 0, Y: 10}, Size: 1},
		stroke.NewElided(&stroke.Line{Start: stroke.Pt{X: 0, Y: 0}, End: stroke.Pt{X: 0, Y: 10}, Size: 1}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("processed stroke stream mismatch (-want +got):\n%s", diff)
	}
}
