package hillclimb

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

// Algorithm names reported in trace steps.
const (
	NameDeterministic = "hill-climbing-deterministic"
	NameFirstChoice   = "hill-climbing-first-choice"
)

// DefaultMaxNeighborAttempts bounds consecutive rejected probes in FirstChoice.
const DefaultMaxNeighborAttempts = 100

// ErrBadAttempts indicates MaxNeighborAttempts < 1.
var ErrBadAttempts = subset.NewPrecondition("hillclimb: MaxNeighborAttempts must be ≥ 1")

// DeterministicOptions configures Deterministic.
type DeterministicOptions struct {
	// EndOnFixedPoint stops the search as soon as a full round leaves the
	// best mask unchanged.
	EndOnFixedPoint bool
	// Rand is the random source for the starting mask. Nil ⇒ NewRand(Seed).
	Rand *rand.Rand
	// Seed is used only when Rand is nil; 0 ⇒ subset.DefaultSeed.
	Seed int64
	// Trace receives one step per scanned neighbor. Nil disables tracing.
	Trace trace.Sink
}

// DefaultDeterministicOptions returns options that run the full budget.
func DefaultDeterministicOptions() DeterministicOptions {
	return DeterministicOptions{}
}

// FirstChoiceOptions configures FirstChoice.
type FirstChoiceOptions struct {
	// MaxNeighborAttempts is the number of consecutive probes from the same
	// best after which the search gives up. Must be ≥ 1.
	MaxNeighborAttempts int
	// Rand is the random source for the start and every probe. Nil ⇒ NewRand(Seed).
	Rand *rand.Rand
	// Seed is used only when Rand is nil; 0 ⇒ subset.DefaultSeed.
	Seed int64
	// Trace receives one step per probe. Nil disables tracing.
	Trace trace.Sink
}

// DefaultFirstChoiceOptions returns MaxNeighborAttempts=100.
func DefaultFirstChoiceOptions() FirstChoiceOptions {
	return FirstChoiceOptions{MaxNeighborAttempts: DefaultMaxNeighborAttempts}
}

// newProblem validates the shared constructor arguments.
func newProblem(method string, target, iterations int, values []int) (subset.Problem, error) {
	if iterations <= 0 {
		return subset.Problem{}, fmt.Errorf("%s: iterations=%d: %w", method, iterations, subset.ErrNonPositiveBudget)
	}
	p, err := subset.NewProblem(target, values)
	if err != nil {
		return subset.Problem{}, fmt.Errorf("%s: %w", method, err)
	}
	return p, nil
}
