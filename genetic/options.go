package genetic

import (
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

// Name is the algorithm label reported in trace steps.
const Name = "genetic-algorithm"

// Defaults.
const (
	DefaultPopulationSize      = 8
	DefaultMutationDenominator = 100
)

// Sentinel errors. All match subset.ErrPrecondition.
var (
	// ErrOddPopulation indicates a population that cannot be split into pairs.
	ErrOddPopulation = subset.NewPrecondition("genetic: population size must be even and ≥ 2")
	// ErrMaskTooShort indicates masks shorter than 2, which leave no split point.
	ErrMaskTooShort = subset.NewPrecondition("genetic: mask length must be ≥ 2")
	// ErrBadMutation indicates a negative mutation denominator.
	ErrBadMutation = subset.NewPrecondition("genetic: MutationDenominator must be ≥ 0")
	// ErrWeightsLength indicates len(weights) != len(population).
	ErrWeightsLength = subset.NewPrecondition("genetic: weights and population lengths differ")
)

// Options configures an Engine.
type Options struct {
	// PopulationSize is the fixed number of individuals. Even, ≥ 2.
	PopulationSize int
	// MutationDenominator d gives a per-bit flip probability of 1/(d+1).
	// 0 flips every bit every generation.
	MutationDenominator int
	// Rand drives initialization and every operator. Nil ⇒ subset.NewRand(Seed).
	Rand *rand.Rand
	// Seed is used only when Rand is nil; 0 ⇒ subset.DefaultSeed.
	Seed int64
	// Trace receives one step per generation. Nil disables tracing.
	Trace trace.Sink
}

// DefaultOptions returns PopulationSize=8 and MutationDenominator=100.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      DefaultPopulationSize,
		MutationDenominator: DefaultMutationDenominator,
	}
}
