package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

const method = "Genetic"

// Engine is a configured genetic-algorithm run.
type Engine struct {
	problem     subset.Problem
	generations int
	opts        Options
	rng         *rand.Rand

	population []subset.Mask // last population produced by Search; nil before.
}

// New validates inputs and returns a ready engine.
//
// Errors:
//   - ErrOddPopulation when PopulationSize is odd or < 2.
//   - ErrBadMutation when MutationDenominator < 0.
//   - subset.ErrNonPositiveBudget when generations ≤ 0.
//   - subset.ErrEmptyInputSet when values is empty.
//   - ErrMaskTooShort when fewer than 2 distinct values remain.
func New(target, generations int, values []int, opts Options) (*Engine, error) {
	if opts.PopulationSize < 2 || opts.PopulationSize%2 != 0 {
		return nil, fmt.Errorf("%s: PopulationSize=%d: %w", method, opts.PopulationSize, ErrOddPopulation)
	}
	if opts.MutationDenominator < 0 {
		return nil, fmt.Errorf("%s: MutationDenominator=%d: %w", method, opts.MutationDenominator, ErrBadMutation)
	}
	if generations <= 0 {
		return nil, fmt.Errorf("%s: generations=%d: %w", method, generations, subset.ErrNonPositiveBudget)
	}
	p, err := subset.NewProblem(target, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if p.Len() < 2 {
		return nil, fmt.Errorf("%s: %d distinct values: %w", method, p.Len(), ErrMaskTooShort)
	}

	return &Engine{
		problem:     p,
		generations: generations,
		opts:        opts,
		rng:         subset.ResolveRand(opts.Rand, opts.Seed),
	}, nil
}

// Problem returns the engine's validated problem.
func (e *Engine) Problem() subset.Problem { return e.problem }

// Search evolves a fresh random population for the configured number of
// generations and returns a copy of the final population.
func (e *Engine) Search() ([]subset.Mask, error) {
	pop := make([]subset.Mask, e.opts.PopulationSize)
	var err error
	for i := range pop {
		if pop[i], err = subset.RandomMask(e.problem.Len(), e.rng); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	var (
		fitness    []int
		best       subset.Mask
		bestFit    int
		genBest    int
		haveBest   bool
		generation int
	)
	for generation = 1; generation <= e.generations; generation++ {
		if fitness, err = e.fitness(pop); err != nil {
			return nil, err
		}
		if pop, err = RouletteSelect(pop, Rescale(fitness), e.rng); err != nil {
			return nil, fmt.Errorf("%s: generation %d: %w", method, generation, err)
		}
		if pop, err = Crossover(pop, e.rng); err != nil {
			return nil, fmt.Errorf("%s: generation %d: %w", method, generation, err)
		}
		if pop, err = Mutate(pop, e.opts.MutationDenominator, e.rng); err != nil {
			return nil, fmt.Errorf("%s: generation %d: %w", method, generation, err)
		}

		if e.opts.Trace == nil {
			continue
		}
		if fitness, err = e.fitness(pop); err != nil {
			return nil, err
		}
		genBest = argMin(fitness)
		if !haveBest || fitness[genBest] < bestFit {
			best, bestFit, haveBest = pop[genBest], fitness[genBest], true
		}
		err = e.opts.Trace.Record(trace.Step{
			Algorithm:         Name,
			Round:             generation,
			Candidate:         pop[genBest],
			CandidateFitness:  fitness[genBest],
			Best:              best,
			BestFitness:       bestFit,
			GlobalBestFitness: bestFit,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: generation %d: %w", method, generation, err)
		}
	}

	e.population = pop

	return clonePopulation(pop), nil
}

// BestIndividual decodes the fittest member of the last population, running
// Search first when it has not run yet. Ties go to the earliest individual.
func (e *Engine) BestIndividual() ([]int, error) {
	if e.population == nil {
		if _, err := e.Search(); err != nil {
			return nil, err
		}
	}
	fitness, err := e.fitness(e.population)
	if err != nil {
		return nil, err
	}

	return e.problem.Decode(e.population[argMin(fitness)])
}

// Population returns a copy of the last population, or nil before Search.
func (e *Engine) Population() []subset.Mask {
	if e.population == nil {
		return nil
	}
	return clonePopulation(e.population)
}

func (e *Engine) fitness(pop []subset.Mask) ([]int, error) {
	out := make([]int, len(pop))
	var err error
	for i, m := range pop {
		if out[i], err = e.problem.Fitness(m); err != nil {
			return nil, fmt.Errorf("%s: individual %d: %w", method, i, err)
		}
	}
	return out, nil
}

// argMin returns the index of the first minimum.
func argMin(xs []int) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[best] {
			best = i
		}
	}
	return best
}

func clonePopulation(pop []subset.Mask) []subset.Mask {
	out := make([]subset.Mask, len(pop))
	for i, m := range pop {
		out[i] = m.Clone()
	}
	return out
}
