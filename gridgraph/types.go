// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonSquare indicates the row count differs from the column count.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBadGlyph indicates an unknown character in the text form.
	ErrBadGlyph = errors.New("gridgraph: unknown glyph in grid text")
)

// State is the occupancy of one cell.
type State uint8

const (
	// Free cells may be entered.
	Free State = iota
	// Blocked cells are obstacles.
	Blocked
)

// String returns "free" or "blocked".
func (s State) String() string {
	if s == Blocked {
		return "blocked"
	}
	return "free"
}

// Cell is a grid coordinate. It is a comparable value type and is used
// directly as a map key by the search engine.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offsets4 lists orthogonal moves in the order up, down, left, right.
// Search tie-breaking depends on this order staying fixed.
var offsets4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable N×N occupancy matrix.
// states is row-major: states[r*size+c].
type Grid struct {
	size   int
	states []State
}
