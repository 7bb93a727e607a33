// SPDX-License-Identifier: MIT
// Package matrix: functional options for the Random generator.
//
// Contract:
//   - Options are functional (type GenOption func(*genConfig)).
//   - Option constructors validate and PANIC on meaningless inputs; the
//     generators themselves never panic.
//   - Determinism is explicit: seed via WithSeed or supply WithRand.

package matrix

import "math/rand"

// Size bounds accepted by the generators.
const (
	MinSize = 2
	MaxSize = 10
)

// Generator defaults.
const (
	// DefaultEdgeProbability is the chance that a pair i<j receives an edge.
	DefaultEdgeProbability = 0.7

	// DefaultMinWeight and DefaultMaxWeight bound the uniform integer weight draw.
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 9
)

// genConfig holds the resolved Random parameters.
type genConfig struct {
	rng       *rand.Rand
	p         float64
	minWeight int64
	maxWeight int64
}

// GenOption customizes Random.
type GenOption func(*genConfig)

// newGenConfig applies opts over the documented defaults.
func newGenConfig(opts ...GenOption) genConfig {
	cfg := genConfig{
		p:         DefaultEdgeProbability,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return cfg
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithEdgeProbability sets the per-pair edge probability. Panics unless 0 ≤ p ≤ 1.
func WithEdgeProbability(p float64) GenOption {
	if p < 0 || p > 1 {
		panic("matrix: WithEdgeProbability(p not in [0,1])")
	}

	return func(c *genConfig) {
		c.p = p
	}
}

// WithWeightRange sets the inclusive weight interval. Panics unless 1 ≤ lo ≤ hi.
func WithWeightRange(lo, hi int64) GenOption {
	if lo < 1 || hi < lo {
		panic("matrix: WithWeightRange(require 1 <= lo <= hi)")
	}

	return func(c *genConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}
