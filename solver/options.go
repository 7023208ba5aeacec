package solver

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/sumsearch/annealing"
	"github.com/katalvlaran/sumsearch/genetic"
	"github.com/katalvlaran/sumsearch/hillclimb"
	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

// DefaultIterations is the iteration (or generation) budget of DefaultOptions.
const DefaultIterations = 1000

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates an unrecognized Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
	// ErrBadRuns indicates Repeat was asked for fewer than one run.
	ErrBadRuns = subset.NewPrecondition("solver: runs must be ≥ 1")
)

// Options carries every engine knob. Fields that do not apply to the chosen
// algorithm are ignored.
type Options struct {
	// Algo selects the engine.
	Algo Algorithm
	// Iterations is the round budget for hill climbing and annealing and the
	// generation count for the genetic algorithm. Must be > 0.
	Iterations int

	// EndOnFixedPoint applies to Deterministic.
	EndOnFixedPoint bool
	// MaxNeighborAttempts applies to FirstChoice.
	MaxNeighborAttempts int
	// InitialTemperature and AnnealingMaxNeighborAttempts apply to Annealing.
	InitialTemperature           float64
	AnnealingMaxNeighborAttempts int
	// PopulationSize and MutationDenominator apply to Genetic.
	PopulationSize      int
	MutationDenominator int

	// Rand, when non-nil, is used as is. Otherwise a generator is seeded
	// from Seed (0 ⇒ subset.DefaultSeed).
	Rand *rand.Rand
	Seed int64

	// Trace receives engine steps. Nil disables tracing.
	Trace trace.Sink
	// RunID labels the Result. uuid.Nil ⇒ a fresh random ID per run.
	RunID uuid.UUID
}

// DefaultOptions returns the engine defaults with Deterministic selected.
func DefaultOptions() Options {
	return Options{
		Algo:                         Deterministic,
		Iterations:                   DefaultIterations,
		MaxNeighborAttempts:          hillclimb.DefaultMaxNeighborAttempts,
		InitialTemperature:           annealing.DefaultInitialTemperature,
		AnnealingMaxNeighborAttempts: annealing.DefaultMaxNeighborAttempts,
		PopulationSize:               genetic.DefaultPopulationSize,
		MutationDenominator:          genetic.DefaultMutationDenominator,
	}
}

// Validate checks the algorithm and budget. Engine-specific knobs are
// validated by the engine constructors so each rule lives in one place.
func (o Options) Validate() error {
	if !o.Algo.Valid() {
		return fmt.Errorf("Validate: %v: %w", o.Algo, ErrUnknownAlgorithm)
	}
	if o.Iterations <= 0 {
		return fmt.Errorf("Validate: iterations=%d: %w", o.Iterations, subset.ErrNonPositiveBudget)
	}
	return nil
}
