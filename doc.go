// Package sumsearch is a toolbox of metaheuristics for the subset-sum
// problem: given integers and a target, find a subset whose sum is as close
// to the target as possible.
//
// 🚀 What is inside?
//
//	subset/    — input dedup, the binary Mask, decode/fitness codec,
//	             single-flip neighborhoods and seeded random streams
//	hillclimb/ — deterministic (full neighborhood) and first-choice hill climbing
//	annealing/ — simulated annealing with a T0/t schedule and a global best
//	genetic/   — generational GA: roulette, single-point crossover, bit mutation
//	trace/     — per-round step records and sinks (recorder, channel, logrus)
//	solver/    — one-call dispatch, side-by-side Compare, statistical Repeat
//	cmd/sumsearch — command-line driver with YAML config
//
// ✨ Guarantees
//
//   - Deterministic – every engine draws from a caller-owned *rand.Rand;
//     the same seed replays the same search.
//   - Fail-fast – invalid input returns a sentinel error, never a partial result.
//   - Silent – engines do no I/O; observe them through a trace.Sink.
//
// Fitness is |target − Σ selected|; 0 is an exact solution.
//
// Quick example:
//
//	res, err := solver.Solve(ctx, []int{5, 1, 2, 3, 4}, 5, solver.DefaultOptions())
//	// res.Subset e.g. [1 4], res.Fitness 0
//
//	go get github.com/katalvlaran/sumsearch
package sumsearch
