// Package trace defines the per-round step records that search engines emit
// and the sinks that consume them.
//
// Engines never print. When a caller installs a Sink, the engine calls
// Sink.Record once per round (per generation for the genetic engine) and
// otherwise stays free of I/O. A Sink that returns an error aborts the
// search: the engine stops immediately and returns that error wrapped with
// its method name. This is the hook for deadlines and cancellation
// (see WithContext).
//
// Contracts:
//   - Masks carried in a Step are shared with the engine and must be treated
//     as read-only. Recorder clones them before storing.
//   - Sinks installed on engines that run concurrently (solver.Compare) must
//     be goroutine-safe. Every sink in this package is.
package trace

import (
	"context"
	"sync"

	"github.com/katalvlaran/sumsearch/subset"
)

// Step is one round of a search.
type Step struct {
	// Algorithm names the engine that produced the step.
	Algorithm string
	// Round is the 1-based round (generation) index.
	Round int
	// Candidate is the mask evaluated in this round; for the genetic engine,
	// the fittest individual of the generation.
	Candidate        subset.Mask
	CandidateFitness int
	// Best is the engine's working best after this round.
	Best        subset.Mask
	BestFitness int
	// GlobalBestFitness is the best fitness seen so far. It differs from
	// BestFitness only for simulated annealing, whose working state may regress.
	GlobalBestFitness int
	// Temperature is the annealing temperature used for this round; 0 for
	// the other engines.
	Temperature float64
}

// Sink consumes steps. A non-nil error aborts the running search.
type Sink interface {
	Record(Step) error
}

// Func adapts a plain function to Sink.
type Func func(Step) error

// Record calls f(s).
func (f Func) Record(s Step) error { return f(s) }

// Discard accepts every step and does nothing.
var Discard Sink = Func(func(Step) error { return nil })

// Recorder keeps every step in memory. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
}

// Record stores a deep copy of s.
func (r *Recorder) Record(s Step) error {
	s.Candidate = s.Candidate.Clone()
	s.Best = s.Best.Clone()

	r.mu.Lock()
	r.steps = append(r.steps, s)
	r.mu.Unlock()
	return nil
}

// Steps returns a copy of the recorded steps in arrival order.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.steps)
}

// Reset drops all recorded steps.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.steps = nil
	r.mu.Unlock()
}

// Chan returns a Sink that sends each step on ch. A send blocks until the
// consumer receives it or ctx is done, in which case ctx.Err() aborts the
// search.
func Chan(ctx context.Context, ch chan<- Step) Sink {
	return Func(func(s Step) error {
		select {
		case ch <- s:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// WithContext wraps next so that the search aborts with ctx.Err() once ctx is
// done. A nil next behaves like Discard.
func WithContext(ctx context.Context, next Sink) Sink {
	if next == nil {
		next = Discard
	}
	return Func(func(s Step) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return next.Record(s)
	})
}

// Tee forwards every step to each non-nil sink in order and stops at the
// first error.
func Tee(sinks ...Sink) Sink {
	live := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return Func(func(s Step) error {
		for _, sink := range live {
			if err := sink.Record(s); err != nil {
				return err
			}
		}
		return nil
	})
}
