package annealing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

const method = "Annealer"

// Annealer is a configured simulated-annealing engine.
type Annealer struct {
	problem    subset.Problem
	iterations int
	opts       Options
	rng        *rand.Rand
}

// New validates inputs and returns a ready engine.
//
// Errors:
//   - ErrBadTemperature, ErrBadAttempts for invalid options.
//   - subset.ErrNonPositiveBudget when iterations ≤ 0.
//   - subset.ErrEmptyInputSet when values is empty.
func New(target, iterations int, values []int, opts Options) (*Annealer, error) {
	t0 := opts.InitialTemperature
	if t0 <= 0 || math.IsNaN(t0) || math.IsInf(t0, 0) {
		return nil, fmt.Errorf("%s: InitialTemperature=%g: %w", method, t0, ErrBadTemperature)
	}
	if opts.MaxNeighborAttempts < 1 {
		return nil, fmt.Errorf("%s: MaxNeighborAttempts=%d: %w", method, opts.MaxNeighborAttempts, ErrBadAttempts)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("%s: iterations=%d: %w", method, iterations, subset.ErrNonPositiveBudget)
	}
	p, err := subset.NewProblem(target, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &Annealer{
		problem:    p,
		iterations: iterations,
		opts:       opts,
		rng:        subset.ResolveRand(opts.Rand, opts.Seed),
	}, nil
}

// Problem returns the engine's validated problem.
func (a *Annealer) Problem() subset.Problem { return a.problem }

// Temperature returns T0/t for accept counter t ≥ 1.
func (a *Annealer) Temperature(t int) float64 {
	return a.opts.InitialTemperature / float64(t)
}

// Search runs the annealing loop and returns the decoded global best.
func (a *Annealer) Search() ([]int, error) {
	best, err := subset.RandomMask(a.problem.Len(), a.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	bestFit, err := a.problem.Fitness(best)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	cand, err := subset.RandomNeighbor(best, a.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	var (
		global    = best
		globalFit = bestFit
		candFit   int
		attempts  = 1
		accepts   = 1
		round     int
		temp      float64
		draw      float64
		accept    bool
	)
	for round = 1; ; round++ {
		if bestFit == 0 {
			break
		}
		if candFit, err = a.problem.Fitness(cand); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}

		temp = a.Temperature(accepts)
		draw = a.rng.Float64()
		accept = candFit < bestFit || draw < math.Exp(-float64(candFit-bestFit)/temp)
		if accept {
			best, bestFit = cand, candFit
			attempts = 1
			accepts++
			if bestFit < globalFit {
				global, globalFit = best, bestFit
			}
		} else {
			attempts++
		}

		if a.opts.Trace != nil {
			err = a.opts.Trace.Record(trace.Step{
				Algorithm:         Name,
				Round:             round,
				Candidate:         cand,
				CandidateFitness:  candFit,
				Best:              best,
				BestFitness:       bestFit,
				GlobalBestFitness: globalFit,
				Temperature:       temp,
			})
			if err != nil {
				return nil, fmt.Errorf("%s: round %d: %w", method, round, err)
			}
		}

		if cand, err = subset.RandomNeighbor(best, a.rng); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if attempts >= a.opts.MaxNeighborAttempts || accepts >= a.iterations {
			break
		}
	}

	return a.problem.Decode(global)
}
