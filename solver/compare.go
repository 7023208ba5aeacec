package solver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/sumsearch/subset"
)

// Compare runs each algorithm in algos once on the same instance and returns
// the results in algos order. An empty algos runs every algorithm.
//
// Every run gets its own generator derived from opts.Rand (or opts.Seed) by
// stream index, so the outcome is reproducible and independent of goroutine
// scheduling. The first failing run cancels the others.
func Compare(ctx context.Context, values []int, target int, opts Options, algos ...Algorithm) ([]Result, error) {
	if len(algos) == 0 {
		algos = Algorithms()
	}
	for _, a := range algos {
		o := opts
		o.Algo = a
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("Compare: %w", err)
		}
	}

	base := subset.ResolveRand(opts.Rand, opts.Seed)
	streams := make([]*rand.Rand, len(algos))
	for i := range streams {
		streams[i] = subset.DeriveRand(base, uint64(i))
	}

	results := make([]Result, len(algos))
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, a := range algos {
		p.Go(func(ctx context.Context) error {
			o := opts
			o.Algo = a
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
		return nil, fmt.Errorf("Compare: %w", err)
	}

	return results, nil
}
