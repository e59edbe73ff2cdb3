package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalaam/graft/eval"
	"github.com/andybalaam/graft/parse"
	"github.com/andybalaam/graft/rng"
	"github.com/andybalaam/graft/scheduler"
)

func TestSchedulerTicksOneStatementPerFork(t *testing.T) {
	nodes, err := parse.ParseV1(":S:S")
	require.NoError(t, err)

	sched := scheduler.NewScheduler(nodes, eval.NewGraftEnv(), rng.NewDefault(1), 8, scheduler.V1Statement)

	tick1, err := sched.Next()
	require.NoError(t, err)
	require.Len(t, tick1, 1)
	assert.NotNil(t, tick1[0].Stroke)

	tick2, err := sched.Next()
	require.NoError(t, err)
	require.Len(t, tick2, 1)
	assert.NotNil(t, tick2[0].Stroke)

	// Program is exhausted (no label to loop to); pc wraps to 0 and the
	// cycle of 2 strokes repeats.
	tick3, err := sched.Next()
	require.NoError(t, err)
	assert.NotNil(t, tick3[0].Stroke)
}

func TestSchedulerForkAddsANewActiveProgram(t *testing.T) {
	nodes, err := parse.ParseV1(":F")
	require.NoError(t, err)

	sched := scheduler.NewScheduler(nodes, eval.NewGraftEnv(), rng.NewDefault(1), 8, scheduler.V1Statement)

	tick1, err := sched.Next()
	require.NoError(t, err)
	require.Len(t, tick1, 1) // fork is staged, not yet active this tick
	assert.Nil(t, tick1[0].Stroke)

	tick2, err := sched.Next()
	require.NoError(t, err)
	assert.Len(t, tick2, 2) // the forked program is now active
}

func TestSchedulerEvictsOldestPastMaxForks(t *testing.T) {
	nodes, err := parse.ParseV1(":F")
	require.NoError(t, err)

	sched := scheduler.NewScheduler(nodes, eval.NewGraftEnv(), rng.NewDefault(1), 2, scheduler.V1Statement)

	for i := 0; i < 5; i++ {
		tick, err := sched.Next()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(tick), 2)
	}
}

func TestFramesCounterFoldsBlankTicksIntoOneFrame(t *testing.T) {
	max := 1
	fc := scheduler.NewFramesCounter(&max)

	blank := []scheduler.TickEntry{{Stroke: nil}}
	for i := 0; i < 10; i++ {
		require.NoError(t, fc.NextFrame(blank))
	}
	// the 11th consecutive blank tick folds into a synthetic frame and
	// trips the max-count-1 budget.
	err := fc.NextFrame(blank)
	require.ErrorIs(t, err, scheduler.ErrMaxFramesReached)
}

func TestFramesCounterCountsARealFrameImmediately(t *testing.T) {
	max := 1
	fc := scheduler.NewFramesCounter(&max)

	nodes, err := parse.ParseV1(":S")
	require.NoError(t, err)
	sched := scheduler.NewScheduler(nodes, eval.NewGraftEnv(), rng.NewDefault(1), 8, scheduler.V1Statement)
	tick, err := sched.Next()
	require.NoError(t, err)

	err = fc.NextFrame(tick)
	require.ErrorIs(t, err, scheduler.ErrMaxFramesReached)
}
