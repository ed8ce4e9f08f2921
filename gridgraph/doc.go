// Package gridgraph models a square 2D occupancy grid as an implicit,
// 4-connected, unit-cost graph for pathfinding.
//
// What:
//
//   - Grid wraps an N×N matrix of Free/Blocked cells and is immutable once built.
//   - Cells are addressed by (Row, Col) with 0 ≤ Row, Col < N.
//   - Neighbors4 yields the up/down/left/right cells inside the bounds.
//   - BlockedNeighbors counts obstacles around a cell (local density).
//   - ReachableFrom counts free cells connected to a cell through free cells.
//   - ParseText / String round-trip a compact ASCII form ('.' free, '#' blocked).
//
// Why:
//
//   - Search engines only read the grid, so one Grid can serve several
//     concurrent searches without locking.
//   - Obstacle placement belongs to the caller: constructors deep-copy their
//     input and WithBlocked returns a new Grid instead of mutating.
//
// Complexity:
//
//   - InBounds, IsFree, Neighbors4, BlockedNeighbors: O(1).
//   - ReachableFrom: O(N²) time and memory.
//   - FromRows, FromStates, WithBlocked, ParseText: O(N²).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonSquare: row count differs from column count.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrBadGlyph: ParseText met a character other than '.' or '#'.
package gridgraph
