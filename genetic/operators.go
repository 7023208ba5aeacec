// SPDX-License-Identifier: MIT
// Package: sumsearch/genetic
//
// operators.go - rescaling, roulette selection, crossover and mutation.
//
// All operators are pure with respect to their inputs: they never mutate the
// masks they receive and always return freshly allocated ones.

package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
)

// Rescale turns lower-is-better fitness into higher-is-better weights:
// w_i = Σf − f_i. An all-equal population gets all-equal weights.
//
// Complexity: O(P).
func Rescale(fitness []int) []int {
	total := 0
	for _, f := range fitness {
		total += f
	}
	w := make([]int, len(fitness))
	for i, f := range fitness {
		w[i] = total - f
	}
	return w
}

// RouletteSelect draws len(pop) individuals with replacement.
//
// Each pick draws an integer uniformly from [0, Σw] and returns the first
// individual with positive weight whose cumulative weight reaches the draw.
// Zero-weight individuals are therefore never picked unless every weight is
// zero, in which case each pick is uniform over the population.
//
// A nil rng restarts the default stream on every call; pass the engine's
// generator to get independent draws across generations.
//
// Complexity: O(P²) worst case.
func RouletteSelect(pop []subset.Mask, weights []int, rng *rand.Rand) ([]subset.Mask, error) {
	if len(weights) != len(pop) {
		return nil, fmt.Errorf("RouletteSelect: %d weights for %d individuals: %w", len(weights), len(pop), ErrWeightsLength)
	}
	rng = subset.ResolveRand(rng, 0)

	total := 0
	for _, w := range weights {
		total += w
	}

	out := make([]subset.Mask, len(pop))
	var (
		draw, cum, i int
	)
	for k := range out {
		if total == 0 {
			out[k] = pop[rng.Intn(len(pop))].Clone()
			continue
		}
		draw = rng.Intn(total + 1)
		cum = 0
		for i = range weights {
			cum += weights[i]
			if weights[i] > 0 && cum >= draw {
				break
			}
		}
		out[k] = pop[i].Clone()
	}

	return out, nil
}

// Crossover pairs consecutive individuals and swaps their tails at a split
// point drawn uniformly from [1, n−1]. A nil rng restarts the default
// stream, so repeated nil calls pick the same split points.
//
// Errors: ErrOddPopulation for an odd or empty population, ErrMaskTooShort
// for masks shorter than 2, subset.ErrMaskLength for a pair of unequal length.
func Crossover(pop []subset.Mask, rng *rand.Rand) ([]subset.Mask, error) {
	if len(pop) == 0 || len(pop)%2 != 0 {
		return nil, fmt.Errorf("Crossover: size %d: %w", len(pop), ErrOddPopulation)
	}
	rng = subset.ResolveRand(rng, 0)

	out := make([]subset.Mask, len(pop))
	var (
		a, b  subset.Mask
		n     int
		split int
	)
	for i := 0; i < len(pop); i += 2 {
		a, b = pop[i], pop[i+1]
		n = len(a)
		if n < 2 {
			return nil, fmt.Errorf("Crossover: pair %d: length %d: %w", i/2, n, ErrMaskTooShort)
		}
		if len(b) != n {
			return nil, fmt.Errorf("Crossover: pair %d: lengths %d/%d: %w", i/2, n, len(b), subset.ErrMaskLength)
		}

		split = 1 + rng.Intn(n-1)
		c1 := make(subset.Mask, n)
		c2 := make(subset.Mask, n)
		copy(c1, a[:split])
		copy(c1[split:], b[split:])
		copy(c2, b[:split])
		copy(c2[split:], a[split:])
		out[i], out[i+1] = c1, c2
	}

	return out, nil
}

// Mutate returns copies of pop in which every bit is flipped when a draw
// from [0, denominator] equals 0. A nil rng restarts the default stream on
// every call.
func Mutate(pop []subset.Mask, denominator int, rng *rand.Rand) ([]subset.Mask, error) {
	if denominator < 0 {
		return nil, fmt.Errorf("Mutate: denominator=%d: %w", denominator, ErrBadMutation)
	}
	rng = subset.ResolveRand(rng, 0)

	out := make([]subset.Mask, len(pop))
	for i, m := range pop {
		c := m.Clone()
		for j := range c {
			if rng.Intn(denominator+1) == 0 {
				if c[j] == 0 {
					c[j] = 1
				} else {
					c[j] = 0
				}
			}
		}
		out[i] = c
	}

	return out, nil
}
