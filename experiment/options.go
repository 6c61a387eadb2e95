// SPDX-License-Identifier: MIT
// Package: jcsim/experiment
//
// options.go — functional options for Sweep.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Option constructors validate and PANIC on meaningless values
//     (nil RNG, nil logger, workers < 1). Sweep itself never panics.
//   • Without WithSeed/WithRand the master RNG is seeded from the clock.

package experiment

import (
	"io"
	"log/slog"
	"math/rand"
)

// Option customizes a Sweep.
type Option func(*sweepConfig)

// sweepConfig holds every Sweep knob. It is passed by value.
type sweepConfig struct {
	rng     *rand.Rand   // master source; nil → clock-seeded
	workers int          // concurrent substitution counts, ≥ 1
	logger  *slog.Logger // progress records at debug level
	spread  bool         // also compute per-count sample std
}

const defaultWorkers = 1

func newSweepConfig(opts ...Option) sweepConfig {
	cfg := sweepConfig{
		workers: defaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds the master RNG deterministically.
func WithSeed(seed int64) Option {
	return func(c *sweepConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the master RNG. Sweep draws from r on the calling
// goroutine only. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("experiment: WithRand(nil)")
	}

	return func(c *sweepConfig) {
		c.rng = r
	}
}

// WithWorkers bounds how many substitution counts run concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("experiment: WithWorkers(n < 1)")
	}

	return func(c *sweepConfig) {
		c.workers = n
	}
}

// WithLogger routes per-count progress records (debug level) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}

	return func(c *sweepConfig) {
		c.logger = l
	}
}

// WithSpread also fills Result.HammingStds. It requires trialCount ≥ 2.
func WithSpread() Option {
	return func(c *sweepConfig) {
		c.spread = true
	}
}
