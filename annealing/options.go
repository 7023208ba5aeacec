package annealing

import (
	"math/rand"

	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

// Name is the algorithm label reported in trace steps.
const Name = "simulated-annealing"

// Defaults.
const (
	DefaultInitialTemperature  = 1000.0
	DefaultMaxNeighborAttempts = 100
)

// Sentinel errors.
var (
	// ErrBadTemperature indicates InitialTemperature ≤ 0, NaN or ±Inf.
	ErrBadTemperature = subset.NewPrecondition("annealing: InitialTemperature must be finite and > 0")
	// ErrBadAttempts indicates MaxNeighborAttempts < 1.
	ErrBadAttempts = subset.NewPrecondition("annealing: MaxNeighborAttempts must be ≥ 1")
)

// Options configures an Annealer.
type Options struct {
	// InitialTemperature T0 of the schedule T(t) = T0/t.
	InitialTemperature float64
	// MaxNeighborAttempts bounds consecutive rejections from one working best.
	MaxNeighborAttempts int
	// Rand drives the start mask, the probes and the acceptance draws.
	// Nil ⇒ subset.NewRand(Seed).
	Rand *rand.Rand
	// Seed is used only when Rand is nil; 0 ⇒ subset.DefaultSeed.
	Seed int64
	// Trace receives one step per round. Nil disables tracing.
	Trace trace.Sink
}

// DefaultOptions returns T0=1000 and MaxNeighborAttempts=100.
func DefaultOptions() Options {
	return Options{
		InitialTemperature:  DefaultInitialTemperature,
		MaxNeighborAttempts: DefaultMaxNeighborAttempts,
	}
}
