package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the heuristic package.
var (
	// ErrUnknownKind indicates a Kind outside KindManhattan..KindAdaptive.
	ErrUnknownKind = errors.New("heuristic: unknown kind")

	// ErrNilGrid indicates that the adaptive heuristic was resolved without a grid.
	ErrNilGrid = errors.New("heuristic: adaptive heuristic requires a grid")
)

// DensityThreshold is the number of blocked orthogonal neighbors at which
// Adaptive switches from Manhattan to Euclidean.
const DensityThreshold = 2

// Func estimates the remaining cost from node to goal.
type Func func(node, goal gridgraph.Cell) float64

// Kind selects a heuristic family.
type Kind int

const (
	// KindManhattan always uses Manhattan distance.
	KindManhattan Kind = iota
	// KindEuclidean always uses Euclidean distance.
	KindEuclidean
	// KindAdaptive switches per node on local obstacle density.
	KindAdaptive
)

var kindNames = [...]string{
	KindManhattan: "manhattan",
	KindEuclidean: "euclidean",
	KindAdaptive:  "adaptive",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a case-insensitive name back to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b gridgraph.Cell) float64 {
	return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b gridgraph.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Adaptive counts the blocked in-bounds orthogonal neighbors of node and
// returns Manhattan below DensityThreshold, Euclidean otherwise.
// The count is taken on every call; nothing is cached.
func Adaptive(g *gridgraph.Grid, node, goal gridgraph.Cell) float64 {
	if g.BlockedNeighbors(node) < DensityThreshold {
		return Manhattan(node, goal)
	}
	return Euclidean(node, goal)
}

// Resolve returns the Func for kind. The grid is only read by KindAdaptive
// and must not change while the returned Func is in use.
func Resolve(kind Kind, g *gridgraph.Grid) (Func, error) {
	switch kind {
	case KindManhattan:
		return Manhattan, nil
	case KindEuclidean:
		return Euclidean, nil
	case KindAdaptive:
		if g == nil {
			return nil, ErrNilGrid
		}
		return func(node, goal gridgraph.Cell) float64 {
			return Adaptive(g, node, goal)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
