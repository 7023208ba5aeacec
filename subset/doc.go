// SPDX-License-Identifier: MIT
// Package subset is the shared representation layer for subset-sum search.
//
// 🚀 What lives here?
//
//	Every search engine in sumsearch (hill climbing, annealing, genetic)
//	works on the same three primitives:
//	  • InputSet — the caller's integers, deduplicated, order-stable
//	  • Mask     — a binary inclusion vector, one bit per InputSet position
//	  • Fitness  — |target − Σ selected|, lower is better, 0 is exact
//
// Quick ASCII example:
//
//	InputSet: [5, 1, 2, 3, 4]    target = 5
//	Mask:     [0, 1, 0, 1, 1]  → Decode = [1, 3, 4], Σ = 8, Fitness = 3
//
// ✨ Operations:
//   - Dedupe / NewInputSet   — build the InputSet (first occurrence wins).
//   - RandomMask             — uniform random starting point.
//   - Decode / WeightedSum   — mask → selected values / their sum.
//   - Fitness                — distance to target.
//   - AllNeighbors           — the mask itself plus every single-bit flip.
//   - RandomNeighbor         — one uniformly chosen single-bit flip.
//   - NewRand / DeriveRand   — explicit, seedable random streams.
//
// Contracts:
//   - Masks are values: every operation returns a fresh Mask and never writes
//     into a caller's Mask.
//   - No logging, no panics on user input; only sentinel errors from errors.go.
//   - Callers branch with errors.Is(err, ErrInvalidInput) or
//     errors.Is(err, ErrPrecondition).
//
// Complexity: every codec operation is O(n) in the InputSet size; AllNeighbors
// is O(n²) because it materializes n+1 masks.
package subset
