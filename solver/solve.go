// SPDX-License-Identifier: MIT
// Package: sumsearch/solver
//
// solve.go - single-run dispatcher.

package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/sumsearch/annealing"
	"github.com/katalvlaran/sumsearch/genetic"
	"github.com/katalvlaran/sumsearch/hillclimb"
	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

// Result is the outcome of one engine run.
type Result struct {
	// RunID identifies the run in logs and traces.
	RunID uuid.UUID
	// Algorithm that produced the result.
	Algorithm Algorithm
	// Subset is the decoded best subset, in input order (after dedup).
	Subset []int
	// Sum is Σ Subset.
	Sum int
	// Fitness is |target − Sum|; 0 means an exact solution.
	Fitness int
	// Elapsed is the wall time of the engine's search call.
	Elapsed time.Duration
	// Population is the final population; Genetic only, nil otherwise.
	Population []subset.Mask
}

// Exact reports whether the run hit the target.
func (r Result) Exact() bool { return r.Fitness == 0 }

// Solve validates opts, runs the selected engine once and returns its Result.
//
// Errors:
//   - ErrUnknownAlgorithm, subset.ErrNonPositiveBudget from Validate.
//   - engine constructor sentinels (subset.ErrEmptyInputSet, genetic.ErrOddPopulation, ...).
//   - ctx.Err() wrapped when ctx is done before or during the run.
func Solve(ctx context.Context, values []int, target int, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("Solve(%s): %w", opts.Algo, err)
	}

	sink := opts.Trace
	if ctx.Done() != nil {
		sink = trace.WithContext(ctx, sink)
	}
	rng := subset.ResolveRand(opts.Rand, opts.Seed)

	res := Result{RunID: opts.RunID, Algorithm: opts.Algo}
	if res.RunID == uuid.Nil {
		res.RunID = uuid.New()
	}

	var (
		best  []int
		err   error
		start time.Time
	)
	switch opts.Algo {
	case Deterministic:
		var e *hillclimb.Deterministic
		e, err = hillclimb.NewDeterministic(target, opts.Iterations, values, hillclimb.DeterministicOptions{
			EndOnFixedPoint: opts.EndOnFixedPoint,
			Rand:            rng,
			Trace:           sink,
		})
		if err == nil {
			start = time.Now()
			best, err = e.Search()
		}

	case FirstChoice:
		var e *hillclimb.FirstChoice
		e, err = hillclimb.NewFirstChoice(target, opts.Iterations, values, hillclimb.FirstChoiceOptions{
			MaxNeighborAttempts: opts.MaxNeighborAttempts,
			Rand:                rng,
			Trace:               sink,
		})
		if err == nil {
			start = time.Now()
			best, err = e.Search()
		}

	case Annealing:
		var e *annealing.Annealer
		e, err = annealing.New(target, opts.Iterations, values, annealing.Options{
			InitialTemperature:  opts.InitialTemperature,
			MaxNeighborAttempts: opts.AnnealingMaxNeighborAttempts,
			Rand:                rng,
			Trace:               sink,
		})
		if err == nil {
			start = time.Now()
			best, err = e.Search()
		}

	case Genetic:
		var e *genetic.Engine
		e, err = genetic.New(target, opts.Iterations, values, genetic.Options{
			PopulationSize:      opts.PopulationSize,
			MutationDenominator: opts.MutationDenominator,
			Rand:                rng,
			Trace:               sink,
		})
		if err == nil {
			start = time.Now()
			if res.Population, err = e.Search(); err == nil {
				best, err = e.BestIndividual()
			}
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("Solve(%s): %w", opts.Algo, err)
	}
	res.Elapsed = time.Since(start)

	res.Subset = best
	for _, v := range best {
		res.Sum += v
	}
	res.Fitness = subset.Distance(target, res.Sum)

	return res, nil
}
