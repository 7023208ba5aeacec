// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// codec.go - mask ↔ values decoding and fitness evaluation.

package subset

import "fmt"

// Decode returns the values selected by mask, in InputSet order.
// The result is never nil for a valid mask (an empty selection is []int{}).
//
// Errors: ErrMaskLength when len(mask) != set.Len().
//
// Complexity: O(n).
func Decode(mask Mask, set InputSet) ([]int, error) {
	if len(mask) != set.Len() {
		return nil, fmt.Errorf("Decode: len(mask)=%d, len(set)=%d: %w", len(mask), set.Len(), ErrMaskLength)
	}

	out := make([]int, 0, mask.Ones())
	var i int
	for i = range mask {
		if mask[i] != 0 {
			out = append(out, set.values[i])
		}
	}

	return out, nil
}

// WeightedSum returns Σ set[i] over the set bits of mask.
//
// Errors: ErrMaskLength when len(mask) != set.Len().
//
// Complexity: O(n).
func WeightedSum(mask Mask, set InputSet) (int, error) {
	if len(mask) != set.Len() {
		return 0, fmt.Errorf("WeightedSum: len(mask)=%d, len(set)=%d: %w", len(mask), set.Len(), ErrMaskLength)
	}

	var (
		sum int
		i   int
	)
	for i = range mask {
		if mask[i] != 0 {
			sum += set.values[i]
		}
	}

	return sum, nil
}

// Fitness returns |target − WeightedSum(mask, set)|. The result is always
// non-negative and is 0 exactly when the selection sums to target.
//
// Errors: those of WeightedSum.
//
// Complexity: O(n).
func Fitness(mask Mask, set InputSet, target int) (int, error) {
	sum, err := WeightedSum(mask, set)
	if err != nil {
		return 0, err
	}
	return Distance(target, sum), nil
}

// Distance returns |target − sum|.
func Distance(target, sum int) int {
	d := target - sum
	if d < 0 {
		return -d
	}
	return d
}
