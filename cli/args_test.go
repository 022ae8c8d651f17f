package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsMinimal(t *testing.T) {
	o, err := parseArgs([]string{"board.txt", "0", "5"})
	require.NoError(t, err)
	assert.True(t, o.solverMode)
	assert.Equal(t, 1, o.workers)
}

func TestParseArgsSolverModeWithWorkers(t *testing.T) {
	o, err := parseArgs([]string{"board.txt", "0", "5", "4"})
	require.NoError(t, err)
	assert.True(t, o.solverMode)
	assert.Equal(t, 4, o.workers)
}

func TestParseArgsNegativeOptionFoldsToAbs(t *testing.T) {
	o, err := parseArgs([]string{"board.txt", "0", "5", "-4"})
	require.NoError(t, err)
	assert.True(t, o.solverMode)
	assert.Equal(t, 4, o.workers)
}

func TestParseArgsSplitMode(t *testing.T) {
	o, err := parseArgs([]string{"board.txt", "0", "5", "0", "8"})
	require.NoError(t, err)
	assert.False(t, o.solverMode)
	assert.Equal(t, 8, o.splitCount)
}

func TestParseArgsSplitModeDefaultCount(t *testing.T) {
	o, err := parseArgs([]string{"board.txt", "0", "5", "0"})
	require.NoError(t, err)
	assert.False(t, o.solverMode)
	assert.Equal(t, 2, o.splitCount)
}

func TestParseArgsRejectsNonInteger(t *testing.T) {
	_, err := parseArgs([]string{"board.txt", "x", "5"})
	require.ErrorIs(t, err, ErrBadArgs)
}
