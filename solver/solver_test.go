package solver_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumsearch/annealing"
	"github.com/katalvlaran/sumsearch/genetic"
	"github.com/katalvlaran/sumsearch/hillclimb"
	"github.com/katalvlaran/sumsearch/solver"
	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

func optsFor(a solver.Algorithm, seed int64) solver.Options {
	o := solver.DefaultOptions()
	o.Algo = a
	o.Seed = seed
	o.Iterations = 200
	return o
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]solver.Algorithm{
		"deterministic": solver.Deterministic,
		" HC ":          solver.Deterministic,
		"first_choice":  solver.FirstChoice,
		"fc":            solver.FirstChoice,
		"SA":            solver.Annealing,
		"genetic":       solver.Genetic,
		"ga":            solver.Genetic,
	}
	for in, want := range cases {
		got, err := solver.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, a := range solver.Algorithms() {
		got, err := solver.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := solver.ParseAlgorithm("tabu")
	assert.ErrorIs(t, err, solver.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", solver.Algorithm(9).String())

	list, err := solver.ParseAlgorithms("sa, ga")
	require.NoError(t, err)
	assert.Equal(t, []solver.Algorithm{solver.Annealing, solver.Genetic}, list)

	all, err := solver.ParseAlgorithms("")
	require.NoError(t, err)
	assert.Equal(t, solver.Algorithms(), all)
}

func TestOptions_Validate(t *testing.T) {
	o := solver.DefaultOptions()
	require.NoError(t, o.Validate())

	o.Iterations = 0
	assert.ErrorIs(t, o.Validate(), subset.ErrNonPositiveBudget)

	o = solver.DefaultOptions()
	o.Algo = solver.Algorithm(-1)
	assert.ErrorIs(t, o.Validate(), solver.ErrUnknownAlgorithm)
}

func TestSolve_DeterministicExact(t *testing.T) {
	res, err := solver.Solve(context.Background(), []int{1, 2, 3, 4, 5}, 5, optsFor(solver.Deterministic, 3))
	require.NoError(t, err)
	assert.True(t, res.Exact())
	assert.Equal(t, 5, res.Sum)
	assert.Equal(t, solver.Deterministic, res.Algorithm)
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Nil(t, res.Population)
}

func TestSolve_UnreachableTargetTerminates(t *testing.T) {
	for _, a := range solver.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			res, err := solver.Solve(context.Background(), []int{3, 7}, 100, optsFor(a, 5))
			require.NoError(t, err)
			assert.Equal(t, 100-res.Sum, res.Fitness)
			assert.GreaterOrEqual(t, res.Fitness, 90)
			if a != solver.Genetic {
				assert.Equal(t, 90, res.Fitness)
			}
		})
	}
}

func TestSolve_EmptyInputFromEveryEngine(t *testing.T) {
	for _, a := range solver.Algorithms() {
		_, err := solver.Solve(context.Background(), nil, 5, optsFor(a, 1))
		assert.ErrorIs(t, err, subset.ErrEmptyInputSet, a.String())
		assert.ErrorIs(t, err, subset.ErrPrecondition, a.String())
	}
}

func TestSolve_EngineOptionErrors(t *testing.T) {
	o := optsFor(solver.Genetic, 1)
	o.PopulationSize = 5
	_, err := solver.Solve(context.Background(), []int{1, 2, 3}, 4, o)
	assert.ErrorIs(t, err, genetic.ErrOddPopulation)
}

func TestSolve_AttemptBudgetsAreRoutedPerEngine(t *testing.T) {
	o := solver.DefaultOptions()
	o.Iterations = 50
	o.MaxNeighborAttempts = 0
	o.AnnealingMaxNeighborAttempts = 20

	o.Algo = solver.FirstChoice
	_, err := solver.Solve(context.Background(), []int{1, 2, 3}, 4, o)
	assert.ErrorIs(t, err, hillclimb.ErrBadAttempts)

	o.Algo = solver.Annealing
	_, err = solver.Solve(context.Background(), []int{1, 2, 3}, 4, o)
	require.NoError(t, err)

	o.MaxNeighborAttempts = 20
	o.AnnealingMaxNeighborAttempts = 0
	_, err = solver.Solve(context.Background(), []int{1, 2, 3}, 4, o)
	assert.ErrorIs(t, err, annealing.ErrBadAttempts)

	_, err = solver.Compare(context.Background(), []int{1, 2, 3}, 4, o, solver.FirstChoice, solver.Annealing)
	assert.ErrorIs(t, err, annealing.ErrBadAttempts)
}

func TestSolve_GeneticCarriesPopulation(t *testing.T) {
	o := optsFor(solver.Genetic, 9)
	o.PopulationSize = 6
	res, err := solver.Solve(context.Background(), []int{8, 6, 7, 5, 3, 1}, 15, o)
	require.NoError(t, err)
	require.Len(t, res.Population, 6)

	p, err := subset.NewProblem(15, []int{8, 6, 7, 5, 3, 1})
	require.NoError(t, err)
	best := -1
	for _, m := range res.Population {
		f, err := p.Fitness(m)
		require.NoError(t, err)
		if best < 0 || f < best {
			best = f
		}
	}
	assert.Equal(t, best, res.Fitness)
}

func TestSolve_KeepsCallerRunID(t *testing.T) {
	o := optsFor(solver.FirstChoice, 1)
	o.RunID = uuid.New()
	res, err := solver.Solve(context.Background(), []int{1, 2}, 3, o)
	require.NoError(t, err)
	assert.Equal(t, o.RunID, res.RunID)
}

func TestSolve_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.Solve(ctx, []int{1, 2, 3}, 4, optsFor(solver.Annealing, 1))
	assert.ErrorIs(t, err, context.Canceled)

	// Cancel from inside the run via the trace hook.
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	o := optsFor(solver.Deterministic, 1)
	o.Iterations = 1000
	steps := 0
	o.Trace = trace.Func(func(trace.Step) error {
		steps++
		if steps == 10 {
			cancel()
		}
		return nil
	})
	_, err = solver.Solve(ctx, []int{3, 7, 11, 13}, 1000, o)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, steps)
}

func TestSolve_TraceReceivesSteps(t *testing.T) {
	var rec trace.Recorder
	o := optsFor(solver.Deterministic, 2)
	o.Iterations = 4
	o.Trace = &rec
	_, err := solver.Solve(context.Background(), []int{3, 7, 11}, 1000, o)
	require.NoError(t, err)
	assert.Equal(t, 4*4, rec.Len())
}

func TestSolve_SameSeedSameResult(t *testing.T) {
	values := []int{12, 5, 19, 33, 2, 8, 41, 27}
	for _, a := range solver.Algorithms() {
		r1, err := solver.Solve(context.Background(), values, 60, optsFor(a, 77))
		require.NoError(t, err)
		r2, err := solver.Solve(context.Background(), values, 60, optsFor(a, 77))
		require.NoError(t, err)
		assert.Equal(t, r1.Subset, r2.Subset, a.String())
		assert.NotEqual(t, r1.RunID, r2.RunID)
	}
}
