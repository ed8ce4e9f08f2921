// Package dijkstra defines core types and configuration options
// for best-first search on a gridgraph.Grid.
//
// Options:
//
//	– Mode:                ModeBasic (uniform cost) or ModeAdaptive (cost + heuristic).
//	– Heuristic:           estimate family used by ModeAdaptive (default KindAdaptive).
//	– PermissiveEndpoints: search from/to blocked cells instead of rejecting them.
//	– OnVisit:             hook called each time a cell is closed.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrOutOfBounds     if start or goal is outside the grid.
//	– ErrBlockedEndpoint if start or goal is blocked and endpoints are strict.
//	– ErrBadMode         if WithMode gets an unknown mode.
//	– ErrBadHeuristic    if WithHeuristic gets an unknown kind.
//
// Example usage:
//
//	res, err := Search(g, start, goal, WithMode(ModeAdaptive))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost=%d visited=%d\n", res.Cost, res.NodesVisited)
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: endpoint out of bounds")

	// ErrBlockedEndpoint indicates that start or goal is an obstacle.
	ErrBlockedEndpoint = errors.New("dijkstra: endpoint is blocked")

	// ErrBadMode indicates an unknown Mode value.
	ErrBadMode = errors.New("dijkstra: unknown mode")

	// ErrBadHeuristic indicates an unknown heuristic.Kind value.
	ErrBadHeuristic = errors.New("dijkstra: unknown heuristic kind")
)

// Unreachable is Result.Cost when no path exists.
const Unreachable = math.MaxInt

// Mode selects how frontier priorities are computed.
type Mode int

const (
	// ModeBasic uses the accumulated step cost as priority.
	ModeBasic Mode = iota

	// ModeAdaptive adds a heuristic estimate of the remaining cost.
	ModeAdaptive
)

var modeNames = [...]string{
	ModeBasic:    "basic",
	ModeAdaptive: "adaptive",
}

// Modes lists every valid Mode in declaration order.
func Modes() []Mode { return []Mode{ModeBasic, ModeAdaptive} }

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m >= 0 && int(m) < len(modeNames) }

// String returns "basic" or "adaptive".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a case-insensitive name back to its Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Result is the outcome of one Search call.
//
// Path lists the cells from the first step after start up to and including
// goal; it is empty when start == goal or when no path exists.
// Cost is the number of steps (len(Path)) or Unreachable.
// NodesVisited is the number of closed cells, start included.
type Result struct {
	Path         []gridgraph.Cell
	Cost         int
	Found        bool
	NodesVisited int
}

// Options configures Search.
//
// Mode                – ModeBasic (default) or ModeAdaptive.
// Heuristic           – estimate used by ModeAdaptive; ignored by ModeBasic.
// PermissiveEndpoints – if true, blocked endpoints are searched as-is.
// OnVisit             – called with each closed cell and its accumulated cost.
type Options struct {
	Mode                Mode
	Heuristic           heuristic.Kind
	PermissiveEndpoints bool
	OnVisit             func(c gridgraph.Cell, cost int)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMode selects basic or adaptive ordering.
// Panics with ErrBadMode on an unknown mode.
func WithMode(mode Mode) Option {
	if !mode.Valid() {
		panic(ErrBadMode.Error())
	}
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithHeuristic sets the estimate family used by ModeAdaptive.
// KindManhattan turns the adaptive mode into classic A*.
// Panics with ErrBadHeuristic on an unknown kind.
func WithHeuristic(kind heuristic.Kind) Option {
	if _, err := kind.MarshalText(); err != nil {
		panic(ErrBadHeuristic.Error())
	}
	return func(o *Options) {
		o.Heuristic = kind
	}
}

// WithPermissiveEndpoints keeps the legacy behavior for blocked endpoints:
// a blocked start is still expanded and a blocked goal simply ends up
// unreachable. Out-of-bounds endpoints are rejected regardless.
func WithPermissiveEndpoints() Option {
	return func(o *Options) {
		o.PermissiveEndpoints = true
	}
}

// WithOnVisit installs a hook called each time a cell is closed, in closing
// order. Panics on nil.
func WithOnVisit(fn func(c gridgraph.Cell, cost int)) Option {
	if fn == nil {
		panic("dijkstra: WithOnVisit(nil)")
	}
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Options initialized with defaults:
//   - Mode:                ModeBasic.
//   - Heuristic:           heuristic.KindAdaptive.
//   - PermissiveEndpoints: false.
//   - OnVisit:             no-op.
func DefaultOptions() Options {
	return Options{
		Mode:                ModeBasic,
		Heuristic:           heuristic.KindAdaptive,
		PermissiveEndpoints: false,
		OnVisit:             func(gridgraph.Cell, int) {},
	}
}
