// Package subset_test checks neighborhood sizes and the one-bit distance
// between a mask and each of its neighbors.
package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumsearch/subset"
)

// hamming counts differing bit positions of equal-length masks.
func hamming(t *testing.T, a, b subset.Mask) int {
	t.Helper()
	require.Equal(t, len(a), len(b))
	d := 0
	for i := range a {
		if (a[i] != 0) != (b[i] != 0) {
			d++
		}
	}
	return d
}

func TestAllNeighbors_ShapeAndOrder(t *testing.T) {
	mask := subset.Mask{0, 1, 0, 1, 1}
	nbs, err := subset.AllNeighbors(mask)
	require.NoError(t, err)
	require.Len(t, nbs, len(mask)+1)

	assert.True(t, nbs[0].Equal(mask), "first neighbor is the mask itself")
	for i := 1; i < len(nbs); i++ {
		assert.Equal(t, 1, hamming(t, mask, nbs[i]))
		assert.NotEqual(t, mask[i-1] != 0, nbs[i][i-1] != 0, "neighbor %d flips bit %d", i, i-1)
	}

	// Neighbors are fresh allocations.
	nbs[0][0] = 1
	assert.Equal(t, uint8(0), mask[0])
}

func TestAllNeighbors_Empty(t *testing.T) {
	_, err := subset.AllNeighbors(nil)
	assert.ErrorIs(t, err, subset.ErrEmptyInputSet)
	assert.ErrorIs(t, err, subset.ErrPrecondition)
}

func TestRandomNeighbor_ExactlyOneBit(t *testing.T) {
	rng := subset.NewRand(seedDet)
	mask, err := subset.RandomMask(17, rng)
	require.NoError(t, err)
	before := mask.Clone()

	hits := make([]int, len(mask))
	for trial := 0; trial < 2000; trial++ {
		nb, err := subset.RandomNeighbor(mask, rng)
		require.NoError(t, err)
		require.Equal(t, 1, hamming(t, mask, nb))
		for i := range nb {
			if (nb[i] != 0) != (mask[i] != 0) {
				hits[i]++
			}
		}
	}
	assert.True(t, mask.Equal(before), "RandomNeighbor must not modify its input")
	for i, h := range hits {
		assert.Greater(t, h, 0, "position %d never flipped in 2000 draws", i)
	}
}

func TestRandomNeighbor_SingleBit(t *testing.T) {
	nb, err := subset.RandomNeighbor(subset.Mask{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, subset.Mask{1}, nb)

	_, err = subset.RandomNeighbor(subset.Mask{}, nil)
	assert.ErrorIs(t, err, subset.ErrEmptyInputSet)
}
