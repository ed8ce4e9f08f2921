// Package gridgraph provides an immutable square occupancy grid.
// Cells with State Blocked are obstacles; every other cell is free.
// Movement is 4-connected and every step costs 1.
package gridgraph

import "fmt"

// New constructs an all-free size×size grid.
// Returns ErrEmptyGrid if size < 1.
// Complexity: O(size²).
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrEmptyGrid
	}
	return &Grid{size: size, states: make([]State, size*size)}, nil
}

// FromRows constructs a Grid from a non-empty square 2D slice where 0 is free
// and any other value is blocked. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNonSquare.
// Complexity: O(N²) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	n, err := checkShape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{size: n, states: make([]State, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rows[r][c] != 0 {
				g.states[g.index(r, c)] = Blocked
			}
		}
	}

	return g, nil
}

// FromStates constructs a Grid from a square matrix of States. The input is copied.
// Complexity: O(N²) time and memory.
func FromStates(rows [][]State) (*Grid, error) {
	n, err := checkShape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{size: n, states: make([]State, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rows[r][c] != Free {
				g.states[g.index(r, c)] = Blocked
			}
		}
	}

	return g, nil
}

// checkShape validates a rows×cols layout and returns the side length.
func checkShape(rows int, cols func(int) int) (int, error) {
	if rows == 0 || cols(0) == 0 {
		return 0, ErrEmptyGrid
	}
	w := cols(0)
	for i := 1; i < rows; i++ {
		if cols(i) != w {
			return 0, ErrNonRectangular
		}
	}
	if w != rows {
		return 0, fmt.Errorf("%w: %d rows × %d columns", ErrNonSquare, rows, w)
	}

	return rows, nil
}

// WithBlocked returns a copy of g with the given cells blocked.
// The receiver is never modified. Returns ErrOutOfBounds for any cell
// outside the grid.
// Complexity: O(N² + len(cells)).
func (g *Grid) WithBlocked(cells ...Cell) (*Grid, error) {
	return g.withState(Blocked, cells)
}

// WithFree returns a copy of g with the given cells cleared.
// Complexity: O(N² + len(cells)).
func (g *Grid) WithFree(cells ...Cell) (*Grid, error) {
	return g.withState(Free, cells)
}

func (g *Grid) withState(s State, cells []Cell) (*Grid, error) {
	out := &Grid{size: g.size, states: make([]State, len(g.states))}
	copy(out.states, g.states)
	for _, c := range cells {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.size, g.size)
		}
		out.states[g.index(c.Row, c.Col)] = s
	}

	return out, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// State returns the occupancy of c. Out-of-bounds cells report Blocked.
// Complexity: O(1).
func (g *Grid) State(c Cell) State {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.states[g.index(c.Row, c.Col)]
}

// IsFree reports whether c is inside the grid and not an obstacle.
// Complexity: O(1).
func (g *Grid) IsFree(c Cell) bool {
	return g.State(c) == Free
}

// Neighbors4 returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Occupancy is not filtered.
// Complexity: O(1).
func (g *Grid) Neighbors4(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets4))
	for _, d := range offsets4 {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// BlockedNeighbors counts the in-bounds orthogonal neighbors of c that are
// obstacles. Cells beyond the border do not count.
// Complexity: O(1).
func (g *Grid) BlockedNeighbors(c Cell) int {
	k := 0
	for _, d := range offsets4 {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && g.states[g.index(n.Row, n.Col)] == Blocked {
			k++
		}
	}

	return k
}

// FreeCount returns the number of free cells.
// Complexity: O(N²).
func (g *Grid) FreeCount() int {
	n := 0
	for _, s := range g.states {
		if s == Free {
			n++
		}
	}

	return n
}

// index maps (r,c) to a row-major index: r*size + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.size + c
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.size, Col: idx % g.size}
}
