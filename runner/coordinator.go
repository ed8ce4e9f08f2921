package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Coordinator runs searches and retains the latest Run per mode.
// It is safe for concurrent use.
type Coordinator struct {
	opts Options

	mu   sync.Mutex
	last map[dijkstra.Mode]Run
}

// New returns a Coordinator configured by opts.
func New(opts ...Option) *Coordinator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Coordinator{
		opts: cfg,
		last: make(map[dijkstra.Mode]Run, 2),
	}
}

// Run executes one search in the given mode and retains it as the latest
// run of that mode. Invalid input is returned as an error and nothing is
// retained. ctx only carries the tracing span; the search itself is not
// interruptible.
func (c *Coordinator) Run(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Cell, mode dijkstra.Mode) (Run, error) {
	run, err := c.execute(ctx, g, start, goal, mode)
	if err != nil {
		return Run{}, err
	}

	c.mu.Lock()
	c.last[mode] = run
	c.mu.Unlock()

	return run, nil
}

// RunAll runs both modes on the same inputs and returns their comparison.
// With Parallel enabled the two searches execute concurrently.
func (c *Coordinator) RunAll(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Cell) (Comparison, error) {
	ctx, span := tracer.Start(ctx, "runner.RunAll",
		trace.WithAttributes(
			attribute.Bool("runner.parallel", c.opts.Parallel),
			attribute.String("runner.start", start.String()),
			attribute.String("runner.goal", goal.String()),
		),
	)
	defer span.End()

	runs := make([]Run, 2)
	modes := dijkstra.Modes()
	if c.opts.Parallel {
		eg, egCtx := errgroup.WithContext(ctx)
		for i, mode := range modes {
			eg.Go(func() error {
				r, err := c.execute(egCtx, g, start, goal, mode)
				runs[i] = r
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "run failed")
			return Comparison{}, err
		}
	} else {
		for i, mode := range modes {
			r, err := c.execute(ctx, g, start, goal, mode)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "run failed")
				return Comparison{}, err
			}
			runs[i] = r
		}
	}

	c.mu.Lock()
	for _, r := range runs {
		c.last[r.Mode] = r
	}
	c.mu.Unlock()

	cmp := compare(runs[0], runs[1])
	span.SetAttributes(
		attribute.Int("runner.node_delta", cmp.NodeDelta),
		attribute.String("runner.more_efficient", cmp.MoreEfficient.String()),
	)
	span.SetStatus(codes.Ok, "")
	c.opts.Logger.InfoContext(ctx, "comparison",
		slog.Int("basic_nodes", cmp.Basic.Result.NodesVisited),
		slog.Int("adaptive_nodes", cmp.Adaptive.Result.NodesVisited),
		slog.Int("node_delta", cmp.NodeDelta),
		slog.Duration("time_delta", cmp.TimeDelta),
		slog.String("more_efficient", cmp.MoreEfficient.String()),
	)

	return cmp, nil
}

// Last returns the retained run of mode, if any.
func (c *Coordinator) Last(mode dijkstra.Mode) (Run, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.last[mode]
	return r, ok
}

// Compare builds a Comparison from the retained runs. It returns ErrNotRun
// until both modes have run. The runs may come from different grids or
// endpoints if Run was called separately in between.
func (c *Coordinator) Compare() (Comparison, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	basic, ok := c.last[dijkstra.ModeBasic]
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s", ErrNotRun, dijkstra.ModeBasic)
	}
	adaptive, ok := c.last[dijkstra.ModeAdaptive]
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s", ErrNotRun, dijkstra.ModeAdaptive)
	}

	return compare(basic, adaptive), nil
}

// Reset drops every retained run.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.last = make(map[dijkstra.Mode]Run, 2)
	c.mu.Unlock()
}

// execute times one search and records logs, metrics and a span for it.
func (c *Coordinator) execute(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Cell, mode dijkstra.Mode) (Run, error) {
	id := uuid.New()
	label := modeLabel(mode)
	ctx, span := tracer.Start(ctx, "runner.Search",
		trace.WithAttributes(
			attribute.String("runner.run_id", id.String()),
			attribute.String("runner.mode", label),
		),
	)
	defer span.End()

	if !mode.Valid() {
		err := fmt.Errorf("%w: %d", dijkstra.ErrBadMode, int(mode))
		searchTotal.WithLabelValues(label, outcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "bad mode")
		return Run{}, err
	}

	opts := append(append([]dijkstra.Option{}, c.opts.Search...),
		dijkstra.WithMode(mode),
		dijkstra.WithHeuristic(c.opts.Heuristic),
	)

	startedAt := c.opts.Clock()
	res, err := dijkstra.Search(g, start, goal, opts...)
	elapsed := c.opts.Clock().Sub(startedAt)

	if err != nil {
		searchTotal.WithLabelValues(label, outcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "search rejected")
		c.opts.Logger.WarnContext(ctx, "search_rejected",
			slog.String("run_id", id.String()),
			slog.String("mode", label),
			slog.String("error", err.Error()),
		)
		return Run{}, fmt.Errorf("runner: %s search: %w", label, err)
	}

	outcome := outcomeFound
	if !res.Found {
		outcome = outcomeUnreachable
	}
	searchTotal.WithLabelValues(label, outcome).Inc()
	searchDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	searchNodesVisited.WithLabelValues(label).Observe(float64(res.NodesVisited))

	span.SetAttributes(
		attribute.Bool("runner.found", res.Found),
		attribute.Int("runner.nodes_visited", res.NodesVisited),
		attribute.Int("runner.path_length", len(res.Path)),
	)
	span.SetStatus(codes.Ok, "")

	c.opts.Logger.InfoContext(ctx, "search_complete",
		slog.String("run_id", id.String()),
		slog.String("mode", label),
		slog.Bool("found", res.Found),
		slog.Int("path_length", len(res.Path)),
		slog.Int("nodes_visited", res.NodesVisited),
		slog.Duration("elapsed", elapsed),
	)

	return Run{
		ID:        id,
		Mode:      mode,
		Result:    res,
		StartedAt: startedAt,
		Elapsed:   elapsed,
	}, nil
}
