// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil   (pure/deterministic unless seeded)
//   • density  = DefaultDensity
//   • keepFree = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Probability that a single cell becomes an obstacle.
	density float64
	// Cells that are never blocked, typically the search endpoints.
	keepFree []gridgraph.Cell
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins, except WithKeepFree which accumulates).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		density: DefaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
