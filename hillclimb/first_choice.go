// SPDX-License-Identifier: MIT
// Package: sumsearch/hillclimb
//
// first_choice.go - stochastic first-improvement hill climbing.

package hillclimb

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

const methodFirstChoice = "FirstChoice"

// FirstChoice is first-improvement hill climbing over random single flips.
//
// Each round compares the pending candidate against the best. A strictly
// better candidate is accepted, which resets the attempt counter and counts
// one iteration. Otherwise the attempt counter grows. A fresh candidate is
// then drawn from the (possibly updated) best.
//
// Counters start at 1, so with MaxNeighborAttempts=m the search gives up
// after m−1 consecutive rejections from the same best.
type FirstChoice struct {
	problem    subset.Problem
	iterations int
	opts       FirstChoiceOptions
	rng        *rand.Rand
}

// NewFirstChoice validates inputs and returns a ready engine.
//
// Errors:
//   - subset.ErrNonPositiveBudget when iterations ≤ 0.
//   - ErrBadAttempts when opts.MaxNeighborAttempts < 1.
//   - subset.ErrEmptyInputSet when values is empty.
func NewFirstChoice(target, iterations int, values []int, opts FirstChoiceOptions) (*FirstChoice, error) {
	if opts.MaxNeighborAttempts < 1 {
		return nil, fmt.Errorf("%s: MaxNeighborAttempts=%d: %w", methodFirstChoice, opts.MaxNeighborAttempts, ErrBadAttempts)
	}
	p, err := newProblem(methodFirstChoice, target, iterations, values)
	if err != nil {
		return nil, err
	}

	return &FirstChoice{
		problem:    p,
		iterations: iterations,
		opts:       opts,
		rng:        subset.ResolveRand(opts.Rand, opts.Seed),
	}, nil
}

// Problem returns the engine's validated problem.
func (f *FirstChoice) Problem() subset.Problem { return f.problem }

// Search runs the climb and returns the decoded best subset.
//
// Loop order per round: stop on an exact best, accept or reject the pending
// candidate, draw the next candidate, then stop on exhausted attempts or an
// exhausted iteration budget.
func (f *FirstChoice) Search() ([]int, error) {
	best, err := subset.RandomMask(f.problem.Len(), f.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFirstChoice, err)
	}
	bestFit, err := f.problem.Fitness(best)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFirstChoice, err)
	}
	cand, err := subset.RandomNeighbor(best, f.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFirstChoice, err)
	}

	var (
		candFit  int
		attempts = 1
		iter     = 1
		round    int
	)
	for round = 1; ; round++ {
		if bestFit == 0 {
			break
		}
		if candFit, err = f.problem.Fitness(cand); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFirstChoice, err)
		}
		if candFit < bestFit {
			best, bestFit = cand, candFit
			attempts = 1
			iter++
		} else {
			attempts++
		}

		if f.opts.Trace != nil {
			err = f.opts.Trace.Record(trace.Step{
				Algorithm:         NameFirstChoice,
				Round:             round,
				Candidate:         cand,
				CandidateFitness:  candFit,
				Best:              best,
				BestFitness:       bestFit,
				GlobalBestFitness: bestFit,
			})
			if err != nil {
				return nil, fmt.Errorf("%s: round %d: %w", methodFirstChoice, round, err)
			}
		}

		if cand, err = subset.RandomNeighbor(best, f.rng); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFirstChoice, err)
		}
		if attempts >= f.opts.MaxNeighborAttempts || iter >= f.iterations {
			break
		}
	}

	return f.problem.Decode(best)
}
