// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// neighbors.go - single-bit-flip neighborhoods.
//
// Two flavours are provided:
//   - AllNeighbors: exhaustive, used by deterministic hill climbing to scan
//     every move each round. Order is fixed: the mask itself, then bit 0
//     flipped, bit 1 flipped, ... so scan order is reproducible.
//   - RandomNeighbor: one uniformly chosen flip, used by the stochastic
//     engines (first-choice hill climbing, simulated annealing).

package subset

import (
	"fmt"
	"math/rand"
)

// AllNeighbors returns len(mask)+1 masks: a copy of mask first, followed by
// one mask per bit position with exactly that bit flipped (position order).
//
// Errors: ErrEmptyInputSet when mask is empty.
//
// Complexity: O(n²) time and space (n+1 masks of length n).
func AllNeighbors(mask Mask) ([]Mask, error) {
	n := len(mask)
	if n == 0 {
		return nil, fmt.Errorf("AllNeighbors: %w", ErrEmptyInputSet)
	}

	out := make([]Mask, 0, n+1)
	out = append(out, mask.Clone())

	var i int
	for i = 0; i < n; i++ {
		out = append(out, mask.Flip(i))
	}

	return out, nil
}

// RandomNeighbor returns a copy of mask with exactly one bit flipped; the
// position is drawn uniformly from [0, len(mask)). If rng==nil, a fresh
// default stream is used, so repeated nil calls flip the same bit.
//
// Errors: ErrEmptyInputSet when mask is empty.
//
// Complexity: O(n) for the copy, O(1) for the draw.
func RandomNeighbor(mask Mask, rng *rand.Rand) (Mask, error) {
	n := len(mask)
	if n == 0 {
		return nil, fmt.Errorf("RandomNeighbor: %w", ErrEmptyInputSet)
	}
	r := ResolveRand(rng, 0)

	return mask.Flip(r.Intn(n)), nil
}
