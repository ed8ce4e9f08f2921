package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/heuristic"
)

// ErrNotRun is returned by Compare while a mode has no retained run.
var ErrNotRun = errors.New("runner: mode has not run")

// Run is one timed search.
type Run struct {
	ID        uuid.UUID
	Mode      dijkstra.Mode
	Result    dijkstra.Result
	StartedAt time.Time
	Elapsed   time.Duration
}

// Summary renders the one-line result of r, for example
// "Basic Dijkstra: Path Cost: 8 | Nodes Explored: 25 | Time: 0.0001s".
func (r Run) Summary() string {
	cost := "unreachable"
	if r.Result.Found {
		cost = fmt.Sprint(r.Result.Cost)
	}
	return fmt.Sprintf("%s: Path Cost: %s | Nodes Explored: %d | Time: %.4fs",
		DisplayName(r.Mode), cost, r.Result.NodesVisited, r.Elapsed.Seconds())
}

// Comparison pairs the latest run of each mode.
//
// NodeDelta is basic minus adaptive nodes visited; TimeDelta is basic minus
// adaptive elapsed time. MoreEfficient is ModeAdaptive iff the adaptive run
// visited strictly fewer cells, otherwise ModeBasic.
type Comparison struct {
	Basic         Run
	Adaptive      Run
	NodeDelta     int
	TimeDelta     time.Duration
	MoreEfficient dijkstra.Mode
}

// compare builds a Comparison from a basic and an adaptive run.
func compare(basic, adaptive Run) Comparison {
	winner := dijkstra.ModeBasic
	if adaptive.Result.NodesVisited < basic.Result.NodesVisited {
		winner = dijkstra.ModeAdaptive
	}
	return Comparison{
		Basic:         basic,
		Adaptive:      adaptive,
		NodeDelta:     basic.Result.NodesVisited - adaptive.Result.NodesVisited,
		TimeDelta:     basic.Elapsed - adaptive.Elapsed,
		MoreEfficient: winner,
	}
}

// Report renders the comparison block printed by the CLI.
func (c Comparison) Report() string {
	var sb strings.Builder
	sb.WriteString("Comparison:\n")
	fmt.Fprintf(&sb, "%s - Nodes Explored: %d, Time: %.4fs\n",
		DisplayName(dijkstra.ModeBasic), c.Basic.Result.NodesVisited, c.Basic.Elapsed.Seconds())
	fmt.Fprintf(&sb, "%s - Nodes Explored: %d, Time: %.4fs\n",
		DisplayName(dijkstra.ModeAdaptive), c.Adaptive.Result.NodesVisited, c.Adaptive.Elapsed.Seconds())
	fmt.Fprintf(&sb, "Efficiency: %s is more efficient\n", DisplayName(c.MoreEfficient))

	return sb.String()
}

// DisplayName returns the human-readable label of a mode.
func DisplayName(m dijkstra.Mode) string {
	switch m {
	case dijkstra.ModeBasic:
		return "Basic Dijkstra"
	case dijkstra.ModeAdaptive:
		return "Adaptive Heuristic"
	default:
		return m.String()
	}
}

// Options configures a Coordinator.
//
// Logger    – structured logger; discards output by default.
// Clock     – time source used for StartedAt and Elapsed.
// Heuristic – estimate family passed to adaptive searches.
// Parallel  – run both modes concurrently in RunAll.
// Search    – extra dijkstra options applied to every search; mode and
// heuristic are always set by the coordinator and override these.
type Options struct {
	Logger    *slog.Logger
	Clock     func() time.Time
	Heuristic heuristic.Kind
	Parallel  bool
	Search    []dijkstra.Option
}

// Option represents a functional option for configuring a Coordinator.
type Option func(*Options)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock replaces time.Now, mainly for tests. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("runner: WithClock(nil)")
	}
	return func(o *Options) {
		o.Clock = now
	}
}

// WithHeuristic selects the estimate used by adaptive runs.
// Panics with dijkstra.ErrBadHeuristic on an unknown kind.
func WithHeuristic(kind heuristic.Kind) Option {
	if _, err := kind.MarshalText(); err != nil {
		panic(dijkstra.ErrBadHeuristic.Error())
	}
	return func(o *Options) {
		o.Heuristic = kind
	}
}

// WithParallel toggles concurrent execution of both modes in RunAll.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = on
	}
}

// WithSearchOptions appends dijkstra options applied to every search,
// for example dijkstra.WithPermissiveEndpoints().
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// DefaultOptions returns Options initialized with defaults:
//   - Logger:    slog logger writing to io.Discard.
//   - Clock:     time.Now.
//   - Heuristic: heuristic.KindAdaptive.
//   - Parallel:  true.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:     time.Now,
		Heuristic: heuristic.KindAdaptive,
		Parallel:  true,
	}
}
