package hillclimb

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

const methodDeterministic = "Deterministic"

// Deterministic is exhaustive-neighborhood hill climbing.
//
// Round structure:
//  1. Build AllNeighbors(best): the best itself, then each single-bit flip
//     in position order.
//  2. Scan in that order; whenever a neighbor's fitness is ≤ the running
//     best fitness, it becomes the best. Ties go to the later neighbor, so
//     the search drifts toward flips of high bit positions on plateaus.
//  3. With EndOnFixedPoint, stop when the round ends on the mask it started
//     from.
//
// There is no early exit on fitness 0: an exact solution simply survives
// every later round because nothing can beat it.
type Deterministic struct {
	problem    subset.Problem
	iterations int
	opts       DeterministicOptions
	rng        *rand.Rand
}

// NewDeterministic validates inputs and returns a ready engine.
// values are deduplicated (first occurrence wins).
//
// Errors:
//   - subset.ErrNonPositiveBudget when iterations ≤ 0.
//   - subset.ErrEmptyInputSet when values is empty.
func NewDeterministic(target, iterations int, values []int, opts DeterministicOptions) (*Deterministic, error) {
	p, err := newProblem(methodDeterministic, target, iterations, values)
	if err != nil {
		return nil, err
	}

	return &Deterministic{
		problem:    p,
		iterations: iterations,
		opts:       opts,
		rng:        subset.ResolveRand(opts.Rand, opts.Seed),
	}, nil
}

// Problem returns the engine's validated problem.
func (d *Deterministic) Problem() subset.Problem { return d.problem }

// Search runs the climb from a fresh random mask and returns the decoded best
// subset. An error from the trace sink aborts the search and is returned
// wrapped.
//
// Complexity: O(iterations · n²).
func (d *Deterministic) Search() ([]int, error) {
	best, err := subset.RandomMask(d.problem.Len(), d.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDeterministic, err)
	}
	bestFit, err := d.problem.Fitness(best)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDeterministic, err)
	}

	var (
		round     int
		start     subset.Mask
		neighbors []subset.Mask
		nb        subset.Mask
		fit       int
	)
	for round = 1; round <= d.iterations; round++ {
		start = best
		if neighbors, err = subset.AllNeighbors(best); err != nil {
			return nil, fmt.Errorf("%s: %w", methodDeterministic, err)
		}

		for _, nb = range neighbors {
			if fit, err = d.problem.Fitness(nb); err != nil {
				return nil, fmt.Errorf("%s: %w", methodDeterministic, err)
			}
			if fit <= bestFit {
				best, bestFit = nb, fit
			}
			if d.opts.Trace != nil {
				err = d.opts.Trace.Record(trace.Step{
					Algorithm:         NameDeterministic,
					Round:             round,
					Candidate:         nb,
					CandidateFitness:  fit,
					Best:              best,
					BestFitness:       bestFit,
					GlobalBestFitness: bestFit,
				})
				if err != nil {
					return nil, fmt.Errorf("%s: round %d: %w", methodDeterministic, round, err)
				}
			}
		}

		// Same-round comparison: the round's start against its end.
		if d.opts.EndOnFixedPoint && best.Equal(start) {
			break
		}
	}

	return d.problem.Decode(best)
}
