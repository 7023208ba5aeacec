package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumsearch/genetic"
	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		pop    int
		den    int
		gens   int
		values []int
		want   error
	}{
		{"odd population", 3, 100, 10, []int{1, 2}, genetic.ErrOddPopulation},
		{"zero population", 0, 100, 10, []int{1, 2}, genetic.ErrOddPopulation},
		{"negative mutation", 4, -1, 10, []int{1, 2}, genetic.ErrBadMutation},
		{"zero generations", 4, 100, 0, []int{1, 2}, subset.ErrNonPositiveBudget},
		{"empty input", 4, 100, 10, nil, subset.ErrEmptyInputSet},
		{"single value", 4, 100, 10, []int{7}, genetic.ErrMaskTooShort},
		{"duplicates collapse to one", 4, 100, 10, []int{7, 7, 7}, genetic.ErrMaskTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := genetic.DefaultOptions()
			opts.PopulationSize = tc.pop
			opts.MutationDenominator = tc.den
			_, err := genetic.New(10, tc.gens, tc.values, opts)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, subset.ErrPrecondition)
		})
	}
}

func TestEngine_SearchShapeAndTrace(t *testing.T) {
	var rec trace.Recorder
	opts := genetic.DefaultOptions()
	opts.Seed = 4
	opts.Trace = &rec
	values := []int{1, 2, 3, 4, 5}
	e, err := genetic.New(5, 30, values, opts)
	require.NoError(t, err)
	assert.Nil(t, e.Population())

	pop, err := e.Search()
	require.NoError(t, err)
	require.Len(t, pop, genetic.DefaultPopulationSize)
	for _, m := range pop {
		assert.Len(t, m, len(values))
	}

	steps := rec.Steps()
	require.Len(t, steps, 30)
	for i, s := range steps {
		assert.Equal(t, genetic.Name, s.Algorithm)
		assert.Equal(t, i+1, s.Round)
		assert.LessOrEqual(t, s.BestFitness, s.CandidateFitness)
		if i > 0 {
			assert.LessOrEqual(t, s.BestFitness, steps[i-1].BestFitness)
		}
	}

	// The returned population is a copy.
	pop[0][0] ^= 1
	assert.NotEqual(t, pop[0], e.Population()[0])
}

func TestEngine_BestIndividualMatchesPopulation(t *testing.T) {
	opts := genetic.DefaultOptions()
	opts.Seed = 12
	e, err := genetic.New(100, 50, []int{3, 7}, opts)
	require.NoError(t, err)

	// Runs Search on first use.
	best, err := e.BestIndividual()
	require.NoError(t, err)
	pop := e.Population()
	require.Len(t, pop, genetic.DefaultPopulationSize)

	p := e.Problem()
	minFit := -1
	for _, m := range pop {
		f, err := p.Fitness(m)
		require.NoError(t, err)
		if minFit < 0 || f < minFit {
			minFit = f
		}
	}
	total := 0
	for _, v := range best {
		total += v
	}
	assert.Equal(t, minFit, subset.Distance(100, total))
	assert.Contains(t, []int{90, 93, 97, 100}, minFit)

	// A second call reuses the stored population.
	again, err := e.BestIndividual()
	require.NoError(t, err)
	assert.Equal(t, best, again)
}

func TestEngine_Reproducible(t *testing.T) {
	values := []int{12, 5, 19, 33, 2, 8, 41, 27}
	run := func() []subset.Mask {
		opts := genetic.DefaultOptions()
		opts.Seed = 31
		e, err := genetic.New(60, 40, values, opts)
		require.NoError(t, err)
		pop, err := e.Search()
		require.NoError(t, err)
		return pop
	}
	assert.Equal(t, run(), run())
}

func TestEngine_SinkErrorAborts(t *testing.T) {
	stop := subset.NewPrecondition("stop")
	opts := genetic.DefaultOptions()
	opts.Trace = trace.Func(func(s trace.Step) error {
		if s.Round == 3 {
			return stop
		}
		return nil
	})
	e, err := genetic.New(10, 20, []int{1, 2, 3}, opts)
	require.NoError(t, err)

	_, err = e.Search()
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, e.Population())
}

func BenchmarkEngine_Search(b *testing.B) {
	values := make([]int, 64)
	for i := range values {
		values[i] = i*7 + 3
	}
	opts := genetic.DefaultOptions()
	opts.PopulationSize = 32
	e, err := genetic.New(5000, 100, values, opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = e.Search(); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}
