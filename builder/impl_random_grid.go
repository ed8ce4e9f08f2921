// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_random_grid.go: square grid with independently drawn obstacles.
//
// Contract:
//   • size ≥ MinGridSize else ErrTooSmall.
//   • density ∈ [0,1] else ErrInvalidDensity.
//   • 0 < density < 1 requires an RNG (WithSeed/WithRand) else ErrNeedRandSource.
//   • Keep-free cells must lie inside the grid else gridgraph.ErrOutOfBounds.
//
// Determinism:
//   • Cells are visited in row-major order; each cell consumes one rng.Float64()
//     draw and is blocked iff draw < density and it is not kept free.
//
// Complexity:
//   • Time O(size²), Space O(size²).

package builder

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	// MethodRandomGrid is the error context token of RandomGrid.
	MethodRandomGrid = "RandomGrid"

	// MinGridSize is the smallest accepted side length.
	MinGridSize = 1

	// DefaultDensity is the obstacle probability used without WithDensity.
	DefaultDensity = 0.3

	// MinDensity and MaxDensity bound WithDensity.
	MinDensity = 0.0
	MaxDensity = 1.0
)

// RandomGrid returns a size×size grid in which each cell is blocked
// independently with the configured density.
func RandomGrid(size int, opts ...BuilderOption) (*gridgraph.Grid, error) {
	// 1) Resolve configuration.
	cfg := newBuilderConfig(opts...)

	// 2) Validate in priority order: size, density, rng, keep-free cells.
	if size < MinGridSize {
		return nil, builderErrorf(MethodRandomGrid, "size=%d < %d: %w", size, MinGridSize, ErrTooSmall)
	}
	if math.IsNaN(cfg.density) || cfg.density < MinDensity || cfg.density > MaxDensity {
		return nil, builderErrorf(MethodRandomGrid, "density=%g: %w", cfg.density, ErrInvalidDensity)
	}
	stochastic := cfg.density > MinDensity && cfg.density < MaxDensity
	if stochastic && cfg.rng == nil {
		return nil, builderErrorf(MethodRandomGrid, "density=%g: %w", cfg.density, ErrNeedRandSource)
	}
	keep := make(map[gridgraph.Cell]struct{}, len(cfg.keepFree))
	for _, c := range cfg.keepFree {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
			return nil, builderErrorf(MethodRandomGrid, "keep-free %v in %d×%d grid: %w", c, size, size, gridgraph.ErrOutOfBounds)
		}
		keep[c] = struct{}{}
	}

	// 3) Draw every cell in row-major order.
	rows := make([][]gridgraph.State, size)
	for r := 0; r < size; r++ {
		rows[r] = make([]gridgraph.State, size)
		for c := 0; c < size; c++ {
			blocked := cfg.density >= MaxDensity
			if stochastic {
				blocked = cfg.rng.Float64() < cfg.density
			}
			if _, ok := keep[gridgraph.Cell{Row: r, Col: c}]; ok {
				blocked = false
			}
			if blocked {
				rows[r][c] = gridgraph.Blocked
			}
		}
	}

	// 4) Hand the rows to the grid constructor.
	return gridgraph.FromStates(rows)
}
