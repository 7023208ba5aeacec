package solver

import (
	"fmt"
	"strings"
)

// Algorithm selects the engine Solve runs.
type Algorithm int

const (
	// Deterministic is exhaustive-neighborhood hill climbing.
	Deterministic Algorithm = iota
	// FirstChoice is random first-improvement hill climbing.
	FirstChoice
	// Annealing is simulated annealing.
	Annealing
	// Genetic is the generational genetic algorithm.
	Genetic
)

var algorithmNames = [...]string{
	Deterministic: "deterministic",
	FirstChoice:   "first-choice",
	Annealing:     "annealing",
	Genetic:       "genetic",
}

var algorithmAliases = map[string]Algorithm{
	"deterministic": Deterministic,
	"hc":            Deterministic,
	"hill-climbing": Deterministic,
	"first-choice":  FirstChoice,
	"firstchoice":   FirstChoice,
	"fc":            FirstChoice,
	"annealing":     Annealing,
	"sa":            Annealing,
	"genetic":       Genetic,
	"ga":            Genetic,
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Deterministic, FirstChoice, Annealing, Genetic}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Valid reports whether a names a known engine.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// ParseAlgorithm maps a name or short alias (hc, fc, sa, ga) to an Algorithm.
// Matching ignores case and surrounding space; '_' is treated as '-'.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
}

// ParseAlgorithms parses a comma-separated list. An empty string yields
// every algorithm.
func ParseAlgorithms(s string) ([]Algorithm, error) {
	if strings.TrimSpace(s) == "" {
		return Algorithms(), nil
	}
	parts := strings.Split(s, ",")
	out := make([]Algorithm, 0, len(parts))
	for _, p := range parts {
		a, err := ParseAlgorithm(p)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
