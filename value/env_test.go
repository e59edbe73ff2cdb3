package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/value"
)

func TestEnvGetAutoVivifiesZero(t *testing.T) {
	e := value.NewEnv()
	assert.False(t, e.Has("x"))
	got := e.Get("x")
	assert.Equal(t, value.Number(0), got)
	assert.True(t, e.Has("x"))
}

func TestEnvGetWalksParentChain(t *testing.T) {
	parent := value.NewEnv()
	parent.Set("d", value.Number(90))
	child := parent.MakeChild()
	assert.Equal(t, value.Number(90), child.Get("d"))
}

func TestEnvSetWritesLocallyNotParent(t *testing.T) {
	parent := value.NewEnv()
	parent.Set("d", value.Number(1))
	child := parent.MakeChild()
	child.Set("d", value.Number(2))

	assert.Equal(t, value.Number(2), child.Get("d"))
	assert.Equal(t, value.Number(1), parent.Get("d"))
}

func TestEnvSetNewFailsOnLocalShadow(t *testing.T) {
	e := value.NewEnv()
	require.NoError(t, e.SetNew("x", value.Number(1)))
	err := e.SetNew("x", value.Number(2))
	require.Error(t, err)
}

func TestEnvSetNewAllowedInChildEvenIfParentHasIt(t *testing.T) {
	parent := value.NewEnv()
	parent.Set("x", value.Number(1))
	child := parent.MakeChild()
	require.NoError(t, child.SetNew("x", value.Number(2)))
	assert.Equal(t, value.Number(2), child.Get("x"))
}

func TestEnvCloneIsIndependentDeepCopy(t *testing.T) {
	parent := value.NewEnv()
	parent.Set("d", value.Number(1))
	child := parent.MakeChild()
	child.Set("s", value.Number(2))

	clone := child.Clone()
	clone.Set("s", value.Number(99))
	assert.Equal(t, value.Number(2), child.Get("s"))

	clone.Set("d", value.Number(42))
	assert.Equal(t, value.Number(1), parent.Get("d"))
}

func TestEnvHasLocalDoesNotSeeAncestors(t *testing.T) {
	parent := value.NewEnv()
	parent.Set("d", value.Number(1))
	child := parent.MakeChild()
	assert.False(t, child.HasLocal("d"))
	assert.True(t, child.Has("d"))
}
