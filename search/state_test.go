package search_test

import (
	"testing"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/op"
	"github.com/katalvlaran/walkscore/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLinearStrip(t *testing.T) *board.Board {
	t.Helper()
	edges := []board.EdgeSpec{
		{A: 0, B: 1, Op: op.New(2, 0)},
		{A: 1, B: 2, Op: op.New(1, 3)},
	}
	b, err := board.Build(3, 1, edges, 0, 2, 1, []bool{true, true})
	require.NoError(t, err)

	return b
}

func TestNewRootStateSeedsBounds(t *testing.T) {
	b := buildLinearStrip(t)
	st := search.NewRootState(b)

	assert.Equal(t, b.Start, st.Head())
	assert.Equal(t, int64(1), st.Score)
	// MaxMul: product of max(1,mul) over the two edges = 2 * 1 = 2.
	assert.Equal(t, int64(2), st.MaxMul)
	// MaxAdd: sum of AddPositive = max(0,0) + max(0,3) = 3.
	assert.Equal(t, int64(3), st.MaxAdd)
}

func TestCloneIsIndependent(t *testing.T) {
	b := buildLinearStrip(t)
	st := search.NewRootState(b)
	clone := st.Clone()

	clone.Score = 99
	clone.Used[0] = true
	assert.NotEqual(t, st.Score, clone.Score)
	assert.NotEqual(t, st.Used[0], clone.Used[0])
}
