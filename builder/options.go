// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on programmer errors (nil RNG).
//     Values that typically come from user input (density, keep-free cells)
//     are checked by the constructor and surface as errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the grid is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the per-cell obstacle probability.
// The value usually comes from user configuration, so it is range-checked by
// the constructor (ErrInvalidDensity) instead of panicking here.
func WithDensity(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithKeepFree lists cells that must stay free regardless of the draw.
// Repeated calls accumulate. Bounds are checked by the constructor.
func WithKeepFree(cells ...gridgraph.Cell) BuilderOption {
	return func(c *builderConfig) {
		c.keepFree = append(c.keepFree, cells...)
	}
}
