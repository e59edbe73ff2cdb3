package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/rng"
	"github.com/andybalaam/graft/stroke"
	"github.com/andybalaam/graft/value"
)

func newPenv() *value.ProgramEnv {
	return value.NewProgramEnv(value.NewEnv(), rng.NewDefault(1), nil)
}

func TestProgramEnvSetXSnapshotsXprev(t *testing.T) {
	p := newPenv()
	p.Set("x", value.Number(5))
	p.Set("x", value.Number(9))
	assert.Equal(t, value.Number(5), p.Get("xprev"))
	assert.Equal(t, value.Number(9), p.Get("x"))
}

func TestProgramEnvSetYSnapshotsYprev(t *testing.T) {
	p := newPenv()
	p.Set("y", value.Number(3))
	p.Set("y", value.Number(7))
	assert.Equal(t, value.Number(3), p.Get("yprev"))
}

func TestProgramEnvMakeChildSharesStrokeBuffer(t *testing.T) {
	p := newPenv()
	child := p.MakeChild()
	child.AppendStroke(&stroke.Dot{})
	strokes := p.DrainStrokes()
	require.Len(t, strokes, 1)
}

func TestProgramEnvCloneGetsFreshStrokeBuffer(t *testing.T) {
	p := newPenv()
	p.AppendStroke(&stroke.Dot{})
	clone := p.Clone(nil)
	assert.Empty(t, clone.DrainStrokes())
	assert.Len(t, p.DrainStrokes(), 1)
}

func TestProgramEnvCloneIsolatesEnv(t *testing.T) {
	p := newPenv()
	p.Set("d", value.Number(1))
	clone := p.Clone(nil)
	clone.Set("d", value.Number(2))
	assert.Equal(t, value.Number(1), p.Get("d"))
	assert.Equal(t, value.Number(2), clone.Get("d"))
}

func TestProgramEnvDrainStrokesClearsBuffer(t *testing.T) {
	p := newPenv()
	p.AppendStroke(&stroke.Dot{})
	first := p.DrainStrokes()
	require.Len(t, first, 1)
	assert.Empty(t, p.DrainStrokes())
}
