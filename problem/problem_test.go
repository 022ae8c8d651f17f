package problem_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/walkscore/problem"
	"github.com/katalvlaran/walkscore/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByTwoAllPlusOne is the literal "2x2, all edges +1" grammar: one row of
// W-1=1 horizontal token, one row of W=2 vertical tokens, one row of 1
// horizontal token.
const twoByTwoAllPlusOne = `2 2
+1
+1 +1
+1
`

func TestParseTwoByTwoAllPlusOneBestScoreIsThree(t *testing.T) {
	b, err := problem.Parse(strings.NewReader(twoByTwoAllPlusOne), 0, 3)
	require.NoError(t, err)

	st := search.NewRootState(b)
	res := search.NewEngine(b, st, nil).Solve()

	require.True(t, res.Found)
	// Every cell has even degree, so no trail from 0 to 3 uses all 4 edges;
	// the best walk is a 2-edge path: 1 + 2.
	assert.Equal(t, int64(3), res.Score)
}

func TestParseStartEqualsGoalBestScoreIsPreScore(t *testing.T) {
	b, err := problem.Parse(strings.NewReader(twoByTwoAllPlusOne), 0, 0)
	require.NoError(t, err)

	st := search.NewRootState(b)
	res := search.NewEngine(b, st, nil).Solve()

	require.True(t, res.Found)
	assert.Equal(t, int64(1), res.Score)
}

// linearStrip is a 4x1 board with 3 "+1" edges — a single path from start
// to goal with no branching at all.
const linearStrip = `4 1
+1 +1 +1
`

func TestParseLinearStripBestScoreIsOnePlusLength(t *testing.T) {
	b, err := problem.Parse(strings.NewReader(linearStrip), 0, 3)
	require.NoError(t, err)

	st := search.NewRootState(b)
	res := search.NewEngine(b, st, nil).Solve()

	require.True(t, res.Found)
	assert.Equal(t, int64(1+3), res.Score) // 1 + L, L == 3 edges
}

func TestParseRejectsBadDimensions(t *testing.T) {
	_, err := problem.Parse(strings.NewReader("0 2\n"), 0, 0)
	require.ErrorIs(t, err, problem.ErrMalformedBoard)
}

func TestParseRejectsMissingEdgeToken(t *testing.T) {
	_, err := problem.Parse(strings.NewReader("2 2\n+1\n"), 0, 3)
	require.ErrorIs(t, err, problem.ErrMalformedBoard)
}

func TestParseRejectsUnknownOperator(t *testing.T) {
	_, err := problem.Parse(strings.NewReader("2 2\n?1\n+1 +1\n+1\n"), 0, 3)
	require.ErrorIs(t, err, problem.ErrMalformedBoard)
}

// twoByTwoWithPreamble carries "K p0 ... G" after the grid: a prefix of
// [0, 1] (one move along the 0-1 edge) with override goal 3.
const twoByTwoWithPreamble = `2 2
+1
+1 +1
+1
2 0 1 3
`

func TestParsePreambleConsumesEdgeAndFoldsScore(t *testing.T) {
	b, err := problem.Parse(strings.NewReader(twoByTwoWithPreamble), 0, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(2), b.PreScore) // pre_score 1, +1 applied once
	assert.Equal(t, 1, b.Start)           // last prefix cell becomes start
	assert.Equal(t, 3, b.Goal)

	// The 0-1 edge is consumed by the preamble and must not be reusable.
	// OneStep keeps every edge; liveness is carried by InitialUsable.
	var found bool
	for _, s := range b.OneStep[0] {
		if s.Next == 1 && b.InitialUsable[s.EdgeID] {
			found = true
		}
	}
	assert.False(t, found, "preamble-consumed edge must not be usable")
}

func TestParseStartOnlyPreambleMatchesNoPreamble(t *testing.T) {
	withoutPreamble, err := problem.Parse(strings.NewReader(twoByTwoAllPlusOne), 0, 3)
	require.NoError(t, err)

	// A preamble of exactly [start] (K=1) must leave the board identical:
	// no edges are consumed since there is no adjacent pair to walk.
	const withTrivialPreamble = `2 2
+1
+1 +1
+1
1 0 3
`
	withPreamble, err := problem.Parse(strings.NewReader(withTrivialPreamble), 0, 3)
	require.NoError(t, err)

	assert.Equal(t, withoutPreamble.PreScore, withPreamble.PreScore)
	assert.Equal(t, len(withoutPreamble.OneStep[0]), len(withPreamble.OneStep[0]))
}
