// Package hillclimb provides two local-search engines for subset sum.
//
// 🚀 Engines:
//
//	Deterministic — every round scans the full single-flip neighborhood of
//	                the current best and moves to the last neighbor whose
//	                fitness is ≤ the best seen in the scan.
//	FirstChoice   — probes random single-flip neighbors and moves to the
//	                first one that is strictly better.
//
// ⚙️ Usage:
//
//	opts := hillclimb.DefaultDeterministicOptions()
//	opts.EndOnFixedPoint = true
//	opts.Seed = 42
//
//	hc, err := hillclimb.NewDeterministic(5, 100, []int{5, 1, 2, 3, 4}, opts)
//	if err != nil {
//	  // subset.ErrEmptyInputSet, subset.ErrNonPositiveBudget, ...
//	}
//	best, err := hc.Search() // e.g. [1 4]
//
// Termination:
//   - Deterministic: after `iterations` rounds, or earlier on a fixed point
//     when EndOnFixedPoint is set.
//   - FirstChoice: on an exact solution, after MaxNeighborAttempts
//     consecutive rejections, or after `iterations` accepted moves.
//
// Complexity:
//   - Deterministic: O(iterations · n²) time (n+1 neighbors, O(n) fitness each).
//   - FirstChoice:   O(rounds · n) time; rounds ≤ iterations·MaxNeighborAttempts.
//
// Engines are single-threaded and synchronous. Do not call Search on the same
// engine from multiple goroutines.
package hillclimb
