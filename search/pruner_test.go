package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperBoundSoundness(t *testing.T) {
	// Every remaining additive gain applied before every remaining
	// multiplicative factor can never be beaten by any actual interleaving,
	// since multiplication by a factor >= 1 only ever helps a larger base.
	score, maxAdd, maxMul := int64(5), int64(3), int64(4)
	bound := upperBound(score, maxAdd, maxMul)
	assert.Equal(t, int64(32), bound)

	// Applying the same operations in a different order than the bound
	// assumes must never exceed it.
	interleaved := (score+1)*2 + 2 // add 1, mul 2, add 2: uses up the budget differently
	assert.LessOrEqual(t, interleaved, bound)
}

func TestUpperBoundZeroRemainingIsIdentity(t *testing.T) {
	assert.Equal(t, int64(7), upperBound(7, 0, 1))
}

func TestDegreeBlocks(t *testing.T) {
	assert.True(t, degreeBlocks(0))
	assert.True(t, degreeBlocks(1))
	assert.False(t, degreeBlocks(2))
	assert.False(t, degreeBlocks(3))
}
