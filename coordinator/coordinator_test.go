package coordinator_test

import (
	"testing"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/coordinator"
	"github.com/katalvlaran/walkscore/op"
	"github.com/katalvlaran/walkscore/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoByTwoBoard(t *testing.T) *board.Board {
	t.Helper()
	o := op.New(1, 1)
	edges := []board.EdgeSpec{
		{A: 0, B: 1, Op: o},
		{A: 0, B: 2, Op: o},
		{A: 1, B: 3, Op: o},
		{A: 2, B: 3, Op: o},
	}
	b, err := board.Build(2, 2, edges, 0, 3, 1, []bool{true, true, true, true})
	require.NoError(t, err)

	return b
}

func TestRunFindsSameBestRegardlessOfWorkerCount(t *testing.T) {
	b := twoByTwoBoard(t)

	for _, workers := range []int{1, 2, 4, 8} {
		states := split.Expand(b, workers)
		res, err := coordinator.Run(b, states, workers)
		require.NoError(t, err)

		require.True(t, res.Found)
		assert.Equal(t, b.Start, res.Path[0])
		assert.Equal(t, b.Goal, res.Path[len(res.Path)-1])
	}
}

func TestRunMatchesSingleEngineSolve(t *testing.T) {
	b := twoByTwoBoard(t)

	single, err := coordinator.Run(b, split.Expand(b, 1), 1)
	require.NoError(t, err)
	fanned, err := coordinator.Run(b, split.Expand(b, 4), 4)
	require.NoError(t, err)

	assert.Equal(t, single.Score, fanned.Score)
}

func TestRunRejectsEmptyStates(t *testing.T) {
	b := twoByTwoBoard(t)
	_, err := coordinator.Run(b, nil, 1)
	require.ErrorIs(t, err, coordinator.ErrNoStates)
}
