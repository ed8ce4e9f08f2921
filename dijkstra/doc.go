// Package dijkstra provides a best-first shortest-path search between two
// cells of a gridgraph.Grid, in two flavors that share one algorithm.
//
// Overview:
//
//   - ModeBasic orders the frontier by accumulated cost alone. This is
//     uniform-cost search (Dijkstra) and always returns a minimum-cost path.
//   - ModeAdaptive orders the frontier by accumulated cost plus a heuristic
//     estimate. By default the estimate is heuristic.Adaptive, which switches
//     between Manhattan and Euclidean per node on local obstacle density.
//     Mixing estimates voids the optimality guarantee; the mode exists to
//     compare how many nodes each strategy expands.
//   - Both modes report the path, its cost and the number of closed nodes.
//
// Algorithm:
//
//   - A min-heap holds (priority, sequence, cell) entries. Equal priorities
//     pop in insertion order, so results are reproducible.
//   - Improving a cell's cost pushes a new entry; the outdated one stays in
//     the heap and is discarded when popped (“lazy decrease-key”).
//   - A popped cell is closed. Reaching the goal stops the search and the
//     path is rebuilt from predecessor links.
//   - Closed cells are never relabelled, so the returned path length always
//     equals the reported cost even when the heuristic is inconsistent.
//
// Performance and complexity (N×N grid, V = N²):
//
//   - Time:  O(V log V), each cell has at most 4 neighbors.
//   - Space: O(V) for cost, predecessor and closed maps plus heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrOutOfBounds:     start or goal lies outside the grid.
//   - ErrBlockedEndpoint: start or goal is an obstacle (unless
//     WithPermissiveEndpoints is given).
//   - ErrBadMode, ErrBadHeuristic: raised (via panic) by option constructors.
//
// An unreachable goal is not an error: Result.Found is false, Result.Cost is
// Unreachable and Result.Path is empty.
//
// Thread safety:
//
//   - Each Search call owns its state. Many searches may read one Grid at the
//     same time because grids are immutable.
package dijkstra
