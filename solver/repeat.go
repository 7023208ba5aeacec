package solver

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sumsearch/subset"
)

// Summary aggregates the Results of Repeat.
type Summary struct {
	Algorithm Algorithm
	Runs      int

	// Fitness distribution across runs. StdDevFitness is the sample
	// standard deviation and is 0 for a single run.
	MeanFitness   float64
	StdDevFitness float64
	MinFitness    int
	MaxFitness    int

	// Hits counts exact solutions; HitRate = Hits / Runs.
	Hits    int
	HitRate float64

	MeanElapsed time.Duration

	// Best is the earliest run with the minimum fitness.
	Best Result
}

// Repeat restarts the selected engine runs times, each from its own derived
// random stream, and summarizes the outcomes. Runs execute concurrently on
// up to GOMAXPROCS goroutines; the summary does not depend on scheduling.
//
// Errors: ErrBadRuns for runs < 1, plus anything Solve returns.
func Repeat(ctx context.Context, values []int, target int, opts Options, runs int) (Summary, error) {
	if runs < 1 {
		return Summary{}, fmt.Errorf("Repeat: runs=%d: %w", runs, ErrBadRuns)
	}
	if err := opts.Validate(); err != nil {
		return Summary{}, fmt.Errorf("Repeat: %w", err)
	}

	base := subset.ResolveRand(opts.Rand, opts.Seed)
	streams := make([]*rand.Rand, runs)
	for i := range streams {
		streams[i] = subset.DeriveRand(base, uint64(i))
	}

	results := make([]Result, runs)
	p := pool.New().
		WithMaxGoroutines(runtime.GOMAXPROCS(0)).
		WithErrors().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i := range results {
		p.Go(func(ctx context.Context) error {
			o := opts
			o.Rand = streams[i]
			o.RunID = uuid.Nil
			r, err := Solve(ctx, values, target, o)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Summary{}, fmt.Errorf("Repeat: %w", err)
	}

	return summarize(opts.Algo, results), nil
}

// summarize folds results (len ≥ 1) into a Summary.
func summarize(algo Algorithm, results []Result) Summary {
	var (
		fitness = make([]float64, len(results))
		elapsed = make([]float64, len(results))
		s       = Summary{Algorithm: algo, Runs: len(results), Best: results[0]}
	)
	s.MinFitness, s.MaxFitness = results[0].Fitness, results[0].Fitness
	for i, r := range results {
		fitness[i] = float64(r.Fitness)
		elapsed[i] = float64(r.Elapsed)
		if r.Fitness < s.Best.Fitness {
			s.Best = r
		}
		if r.Fitness < s.MinFitness {
			s.MinFitness = r.Fitness
		}
		if r.Fitness > s.MaxFitness {
			s.MaxFitness = r.Fitness
		}
		if r.Exact() {
			s.Hits++
		}
	}

	if len(results) > 1 {
		s.MeanFitness, s.StdDevFitness = stat.MeanStdDev(fitness, nil)
	} else {
		s.MeanFitness = fitness[0]
	}
	s.HitRate = float64(s.Hits) / float64(s.Runs)
	s.MeanElapsed = time.Duration(stat.Mean(elapsed, nil))

	return s
}
