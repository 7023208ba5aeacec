// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// mask.go - the binary inclusion vector and its value-semantics helpers.

package subset

import (
	"fmt"
	"math/rand"
	"strings"
)

// Mask is a fixed-length binary inclusion vector: Mask[i] == 1 means the
// InputSet value at position i is selected. Any non-zero byte counts as 1.
//
// Masks behave as values. No function in this module writes into a Mask it
// did not allocate, so a Mask may be shared freely once built.
type Mask []uint8

// RandomMask returns a mask of length n whose bits are drawn independently
// and uniformly from {0,1}. If rng==nil, a fresh default stream (seed 0
// policy, see rng.go) is used, so every nil call returns the same mask.
//
// Errors: ErrEmptyInputSet when n ≤ 0.
//
// Complexity: O(n).
func RandomMask(n int, rng *rand.Rand) (Mask, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RandomMask: n=%d: %w", n, ErrEmptyInputSet)
	}
	r := ResolveRand(rng, 0)

	m := make(Mask, n)
	var i int
	for i = 0; i < n; i++ {
		m[i] = uint8(r.Intn(2))
	}

	return m, nil
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	if m == nil {
		return nil
	}
	out := make(Mask, len(m))
	copy(out, m)
	return out
}

// Equal reports whether m and o have the same length and the same bits.
func (m Mask) Equal(o Mask) bool {
	if len(m) != len(o) {
		return false
	}
	var i int
	for i = range m {
		if (m[i] != 0) != (o[i] != 0) {
			return false
		}
	}
	return true
}

// Ones returns the number of set bits.
func (m Mask) Ones() int {
	var c int
	for _, b := range m {
		if b != 0 {
			c++
		}
	}
	return c
}

// Flip returns a copy of m with bit i inverted. It panics on out-of-range i,
// like slice indexing.
func (m Mask) Flip(i int) Mask {
	out := m.Clone()
	if out[i] == 0 {
		out[i] = 1
	} else {
		out[i] = 0
	}
	return out
}

// String renders the mask as a bit string, e.g. "01011".
func (m Mask) String() string {
	var sb strings.Builder
	sb.Grow(len(m))
	for _, b := range m {
		if b != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
