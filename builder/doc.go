// Package builder generates obstacle grids for gridpath searches.
//
// The package follows a “functional-options” style: constructors take their
// mandatory parameters positionally and everything else through BuilderOption
// values that mutate an internal builderConfig before generation starts.
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the random source; required for 0 < density < 1.
//     – WithDensity:    per-cell obstacle probability (DefaultDensity = 0.3).
//     – WithKeepFree:   cells that are never blocked.
//   - Constructors:
//     – RandomGrid:     square grid with independently drawn obstacles.
//
// Guarantees:
//
//   - Determinism: the same seed, size and density give the same grid. Cells
//     are drawn in row-major order and every cell consumes exactly one draw,
//     keep-free cells included, so adding keep-free cells never shifts the
//     pattern elsewhere.
//   - Structured errors: ErrTooSmall, ErrInvalidDensity and ErrNeedRandSource,
//     wrapped with the constructor name. Keep-free cells outside the grid
//     wrap gridgraph.ErrOutOfBounds.
package builder
