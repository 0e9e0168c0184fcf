// SPDX-License-Identifier: MIT
// Package: searchbench/builder
//
// options.go - functional options for the builder package.

package builder

import "math/rand"

// Option customizes a constructor by mutating its config.
type Option func(*config)

// config is resolved once per constructor call.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// newConfig applies opts over the defaults: no RNG, DefaultWeightFn.
func newConfig(opts ...Option) config {
	c := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) {
		c.weightFn = fn
	}
}
