// Package heuristic provides distance estimates for best-first search on a
// 4-connected, unit-cost gridgraph.Grid.
//
// Overview:
//
//   - Manhattan: |Δrow| + |Δcol|. Admissible and consistent on 4-connected
//     unit-cost grids; exact on an empty grid.
//   - Euclidean: sqrt(Δrow² + Δcol²). Never larger than Manhattan, so also
//     admissible, but weaker.
//   - Adaptive: picks one of the two per node from local obstacle density.
//     A node with fewer than DensityThreshold blocked orthogonal neighbors
//     uses Manhattan; denser nodes use Euclidean.
//
// Because Adaptive can mix two estimates inside one search, it is not
// consistent in general and a search guided by it may return a path longer
// than the shortest one. It exists to study how many nodes a search expands,
// not to guarantee optimality.
//
// Selection:
//
//	The family is chosen once per search through Kind and Resolve; only the
//	adaptive family branches per node.
//
// Errors:
//
//   - ErrUnknownKind: Resolve or ParseKind got a value outside the known kinds.
//   - ErrNilGrid:     KindAdaptive needs a grid to measure density.
package heuristic
