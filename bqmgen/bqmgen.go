// Package bqmgen builds deterministic Binary Quadratic Model fixtures.
//
// One orchestrator, Build, creates an empty bqm.Model, resolves the
// functional options into an immutable config, and applies constructors in
// order. Same options, seed, and constructor order ⇒ identical model.
//
// Constructors validate early, return sentinel errors, and never panic.
package bqmgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlbqm/bqm"
)

// Sentinel errors for bqmgen constructors.
var (
	// ErrTooFewVariables indicates a variable count below the constructor's minimum.
	ErrTooFewVariables = errors.New("bqmgen: too few variables")
	// ErrInvalidProbability indicates an interaction probability outside [0,1].
	ErrInvalidProbability = errors.New("bqmgen: probability not in [0,1]")
	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed.
	ErrNeedRandSource = errors.New("bqmgen: rand source required, use WithSeed")
	// ErrNilConstructor indicates a nil constructor was passed to Build.
	ErrNilConstructor = errors.New("bqmgen: nil constructor")
)

// Constructor applies one deterministic mutation to the model under the
// resolved config. Constructors must validate parameters early and return
// only sentinel errors.
type Constructor[V bqm.ID, B bqm.Bias] func(m *bqm.Model[V, B], cfg Config) error

// Config is the resolved, immutable generator configuration.
type Config struct {
	rng    *rand.Rand
	biasFn func(*rand.Rand) float64
}

// Option configures the generator before Build runs.
type Option func(*Config)

// WithSeed installs a deterministic rand source. Stochastic constructors
// (RandomSparse with 0 < p < 1) require it.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithBiasFn overrides how random biases are drawn. The default draws
// uniformly from [-1, 1).
func WithBiasFn(fn func(*rand.Rand) float64) Option {
	return func(c *Config) {
		if fn != nil {
			c.biasFn = fn
		}
	}
}

// defaultBiasFn draws uniformly from [-1, 1).
func defaultBiasFn(r *rand.Rand) float64 { return r.Float64()*2 - 1 }

// Build creates a new Model, resolves opts, and applies the constructors in
// order. The first constructor error is wrapped once with "Build: %w" and
// returned; no partial cleanup is attempted.
func Build[V bqm.ID, B bqm.Bias](opts []Option, cons ...Constructor[V, B]) (*bqm.Model[V, B], error) {
	cfg := Config{biasFn: defaultBiasFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := bqm.New[V, B]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}
