package gridgraph

import (
	"fmt"
	"strings"
)

// Glyphs used by the text form.
const (
	GlyphFree    = '.'
	GlyphBlocked = '#'
)

// ParseText builds a Grid from lines of '.' (free) and '#' (blocked).
// Surrounding whitespace on each line and blank lines are ignored.
// Returns ErrBadGlyph for any other character, plus the shape errors of FromStates.
// Complexity: O(N²).
func ParseText(text string) (*Grid, error) {
	var rows [][]State
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]State, 0, len(line))
		for col, ch := range line {
			switch ch {
			case GlyphFree:
				row = append(row, Free)
			case GlyphBlocked:
				row = append(row, Blocked)
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadGlyph, ch, lineNo+1, col+1)
			}
		}
		rows = append(rows, row)
	}

	return FromStates(rows)
}

// String renders the grid in the text form accepted by ParseText,
// one row per line with a trailing newline.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render is String with an overlay: cells present in marks are drawn with
// their mapped rune instead of the occupancy glyph.
func (g *Grid) Render(marks map[Cell]rune) string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			cell := Cell{Row: r, Col: c}
			if m, ok := marks[cell]; ok {
				sb.WriteRune(m)
				continue
			}
			if g.states[g.index(r, c)] == Blocked {
				sb.WriteByte(GlyphBlocked)
			} else {
				sb.WriteByte(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
