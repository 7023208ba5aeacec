// Package solver is the single entry point over the subset-sum engines.
//
// It dispatches one call to hillclimb, annealing or genetic by Algorithm,
// times the run, and packages the outcome as a Result. Two drivers build on
// Solve:
//
//	Compare — runs several algorithms on the same instance concurrently, each
//	          on its own random stream derived from Options.Seed.
//	Repeat  — restarts one algorithm many times and summarizes the fitness
//	          distribution (mean, std-dev, extremes, exact-hit rate).
//
// Example:
//
//	opts := solver.DefaultOptions()
//	opts.Algo = solver.Annealing
//	opts.Seed = 7
//	res, err := solver.Solve(ctx, []int{5, 1, 2, 3, 4}, 5, opts)
//	if err != nil {
//	  // errors.Is(err, subset.ErrPrecondition), context.Canceled, ...
//	}
//	fmt.Println(res.Subset, res.Fitness, res.Elapsed)
//
// Cancellation: when ctx can be cancelled, Solve aborts the running engine at
// its next traced round and returns ctx.Err() wrapped.
//
// Concurrency: Solve and Repeat are safe for concurrent use. A Trace sink
// shared through Compare or Repeat receives steps from several goroutines and
// must be goroutine-safe (trace.Recorder and trace.Logrus are).
package solver
