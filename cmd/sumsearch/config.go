package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sumsearch/solver"
	"github.com/katalvlaran/sumsearch/subset"
)

// ErrBadRandomValues indicates an unusable random_values section.
var ErrBadRandomValues = subset.NewPrecondition("sumsearch: random_values needs count ≥ 1 and min ≤ max")

// Config is the YAML configuration file. Every field can also be set by a
// flag; flags win.
type Config struct {
	Algorithm  string `yaml:"algorithm"`
	Target     int    `yaml:"target"`
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`
	// Values is kept loose so that non-integer entries reach subset.Dedupe
	// and are reported as invalid input instead of a YAML type error.
	Values       []any        `yaml:"values"`
	RandomValues RandomValues `yaml:"random_values"`

	Deterministic struct {
		EndOnFixedPoint bool `yaml:"end_on_fixed_point"`
	} `yaml:"deterministic"`
	FirstChoice struct {
		MaxNeighborAttempts int `yaml:"max_neighbor_attempts"`
	} `yaml:"first_choice"`
	Annealing struct {
		InitialTemperature  float64 `yaml:"initial_temperature"`
		MaxNeighborAttempts int     `yaml:"max_neighbor_attempts"`
	} `yaml:"annealing"`
	Genetic struct {
		PopulationSize      int `yaml:"population_size"`
		MutationDenominator int `yaml:"mutation_denominator"`
	} `yaml:"genetic"`

	Log LogConfig `yaml:"log"`
}

// RandomValues generates the input when no explicit values are given.
type RandomValues struct {
	Count int `yaml:"count"`
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
}

// LogConfig selects the logrus level and formatter ("text" or "json").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig mirrors the classic benchmark setup: 1000 random values in
// [-1000, 1000] with target 5000 and 100 iterations.
func DefaultConfig() Config {
	d := solver.DefaultOptions()
	c := Config{
		Algorithm:    d.Algo.String(),
		Target:       5000,
		Iterations:   100,
		RandomValues: RandomValues{Count: 1000, Min: -1000, Max: 1000},
		Log:          LogConfig{Level: "info", Format: "text"},
	}
	c.FirstChoice.MaxNeighborAttempts = d.MaxNeighborAttempts
	c.Annealing.InitialTemperature = d.InitialTemperature
	c.Annealing.MaxNeighborAttempts = d.AnnealingMaxNeighborAttempts
	c.Genetic.PopulationSize = d.PopulationSize
	c.Genetic.MutationDenominator = d.MutationDenominator
	return c
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("LoadConfig: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}
	return c, nil
}

// ParseValueList splits a comma-separated list. Entries that are not
// integers are kept as strings so InputSet rejects them.
func ParseValueList(s string) []any {
	fields := strings.Split(s, ",")
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if n, err := strconv.Atoi(f); err == nil {
			out = append(out, n)
		} else {
			out = append(out, f)
		}
	}
	return out
}

// InputSet returns the deduplicated explicit values, or random values drawn
// from rng when no value list was given at all. An explicit empty list stays
// empty and is rejected by the engines.
func (c Config) InputSet(rng *rand.Rand) (subset.InputSet, error) {
	if c.Values != nil {
		return subset.Dedupe(c.Values)
	}
	rv := c.RandomValues
	if rv.Count < 1 || rv.Min > rv.Max {
		return subset.InputSet{}, fmt.Errorf("InputSet: count=%d min=%d max=%d: %w", rv.Count, rv.Min, rv.Max, ErrBadRandomValues)
	}
	vals := make([]int, rv.Count)
	span := rv.Max - rv.Min + 1
	for i := range vals {
		vals[i] = rv.Min + rng.Intn(span)
	}
	return subset.NewInputSet(vals), nil
}

// SolverOptions translates the engine sections into solver.Options.
func (c Config) SolverOptions() (solver.Options, error) {
	algo, err := solver.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return solver.Options{}, err
	}
	o := solver.DefaultOptions()
	o.Algo = algo
	o.Iterations = c.Iterations
	o.Seed = c.Seed
	o.EndOnFixedPoint = c.Deterministic.EndOnFixedPoint
	o.MaxNeighborAttempts = c.FirstChoice.MaxNeighborAttempts
	o.InitialTemperature = c.Annealing.InitialTemperature
	o.AnnealingMaxNeighborAttempts = c.Annealing.MaxNeighborAttempts
	o.PopulationSize = c.Genetic.PopulationSize
	o.MutationDenominator = c.Genetic.MutationDenominator

	return o, o.Validate()
}

// NewLogger builds a logrus logger from the log section.
func (l LogConfig) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger: %w", err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(l.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("NewLogger: unknown format %q", l.Format)
	}
	return logger, nil
}
