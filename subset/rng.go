// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// rng.go - explicit random streams shared by the stochastic engines.
//
// Goals:
//   - Determinism: same seed ⇒ identical search trajectories.
//   - No globals: engines never touch math/rand's package-level source; the
//     caller owns the generator (or a seed that produces one).
//   - Independence: DeriveRand splits one parent into decorrelated children
//     so engines compared side by side never share a stream.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Derive one stream per goroutine during
//     setup; never share a stream between engines running concurrently.

package subset

import "math/rand"

// DefaultSeed is the seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// ResolveRand returns r when non-nil, otherwise NewRand(seed).
// Engines call it once at construction so a nil generator never reaches the
// hot loop. Helpers that resolve nil on every call restart the same stream
// each time, so their nil-rng results repeat from call to call.
func ResolveRand(r *rand.Rand, seed int64) *rand.Rand {
	if r != nil {
		return r
	}
	return NewRand(seed)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// It applies the SplitMix64 finalizer (Vigna 2014 constants) so that
// neighbouring stream ids produce unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream identifier. If base==nil, DefaultSeed is the parent. Otherwise
// base.Int63() is consumed once, so two derivations with the same stream id
// still yield different children.
//
// Call during setup, not inside hot loops.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
