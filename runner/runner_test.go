package runner_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/runner"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := base
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func mustGrid(t *testing.T, n int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(n)
	require.NoError(t, err)
	return g
}

// TestRun_Records checks timing, identity and retention of a single run.
func TestRun_Records(t *testing.T) {
	t.Parallel()

	c := runner.New(runner.WithClock(stepClock(time.Millisecond)))
	run, err := c.Run(context.Background(), mustGrid(t, 5), cell(0, 0), cell(4, 4), dijkstra.ModeBasic)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, dijkstra.ModeBasic, run.Mode)
	assert.Equal(t, base, run.StartedAt)
	assert.Equal(t, time.Millisecond, run.Elapsed)
	assert.True(t, run.Result.Found)
	assert.Equal(t, 8, run.Result.Cost)
	assert.Equal(t, 25, run.Result.NodesVisited)
	assert.Equal(t, "Basic Dijkstra: Path Cost: 8 | Nodes Explored: 25 | Time: 0.0010s", run.Summary())

	last, ok := c.Last(dijkstra.ModeBasic)
	require.True(t, ok)
	assert.Equal(t, run, last)
	_, ok = c.Last(dijkstra.ModeAdaptive)
	assert.False(t, ok)
}

// TestRun_Errors checks that rejected inputs surface the engine sentinel
// and leave nothing retained.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, 3)
	blocked, err := g.WithBlocked(cell(2, 2))
	require.NoError(t, err)

	tests := []struct {
		name  string
		g     *gridgraph.Grid
		start gridgraph.Cell
		goal  gridgraph.Cell
		mode  dijkstra.Mode
		want  error
	}{
		{"NilGrid", nil, cell(0, 0), cell(1, 1), dijkstra.ModeBasic, dijkstra.ErrNilGrid},
		{"GoalOutside", g, cell(0, 0), cell(3, 0), dijkstra.ModeAdaptive, dijkstra.ErrOutOfBounds},
		{"BlockedGoal", blocked, cell(0, 0), cell(2, 2), dijkstra.ModeBasic, dijkstra.ErrBlockedEndpoint},
		{"UnknownMode", g, cell(0, 0), cell(1, 1), dijkstra.Mode(9), dijkstra.ErrBadMode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := runner.New()
			_, err := c.Run(context.Background(), tc.g, tc.start, tc.goal, tc.mode)
			require.ErrorIs(t, err, tc.want)
			_, ok := c.Last(tc.mode)
			assert.False(t, ok)
		})
	}
}

// TestRun_SearchOptions forwards engine options such as permissive endpoints.
func TestRun_SearchOptions(t *testing.T) {
	t.Parallel()

	g, err := mustGrid(t, 3).WithBlocked(cell(2, 2))
	require.NoError(t, err)

	c := runner.New(
		runner.WithClock(func() time.Time { return base }),
		runner.WithSearchOptions(dijkstra.WithPermissiveEndpoints()),
	)
	run, err := c.Run(context.Background(), g, cell(0, 0), cell(2, 2), dijkstra.ModeBasic)
	require.NoError(t, err)
	assert.False(t, run.Result.Found)
	assert.Equal(t, dijkstra.Unreachable, run.Result.Cost)
	assert.Equal(t, 8, run.Result.NodesVisited)
	assert.Equal(t, "Basic Dijkstra: Path Cost: unreachable | Nodes Explored: 8 | Time: 0.0000s", run.Summary())
}

// TestRunAll compares both modes in sequential and parallel execution.
func TestRunAll(t *testing.T) {
	t.Parallel()

	for _, parallel := range []bool{false, true} {
		name := "Sequential"
		if parallel {
			name = "Parallel"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := runner.New(runner.WithParallel(parallel), runner.WithClock(stepClock(time.Millisecond)))

			cmp, err := c.RunAll(context.Background(), mustGrid(t, 10), cell(0, 0), cell(0, 9))
			require.NoError(t, err)

			assert.Equal(t, dijkstra.ModeBasic, cmp.Basic.Mode)
			assert.Equal(t, dijkstra.ModeAdaptive, cmp.Adaptive.Mode)
			assert.Equal(t, 9, cmp.Basic.Result.Cost)
			assert.Equal(t, 9, cmp.Adaptive.Result.Cost)
			assert.Equal(t, 55, cmp.Basic.Result.NodesVisited)
			assert.Equal(t, 10, cmp.Adaptive.Result.NodesVisited)
			assert.Equal(t, 45, cmp.NodeDelta)
			assert.Equal(t, dijkstra.ModeAdaptive, cmp.MoreEfficient)
			assert.NotEqual(t, cmp.Basic.ID, cmp.Adaptive.ID)

			// Both runs are retained and Compare agrees with RunAll.
			again, err := c.Compare()
			require.NoError(t, err)
			assert.Equal(t, cmp, again)
		})
	}
}

// TestRunAll_Report checks the rendered comparison block.
func TestRunAll_Report(t *testing.T) {
	t.Parallel()

	c := runner.New(runner.WithParallel(false), runner.WithClock(stepClock(time.Millisecond)))
	cmp, err := c.RunAll(context.Background(), mustGrid(t, 10), cell(0, 0), cell(0, 9))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cmp.TimeDelta)

	want := "Comparison:\n" +
		"Basic Dijkstra - Nodes Explored: 55, Time: 0.0010s\n" +
		"Adaptive Heuristic - Nodes Explored: 10, Time: 0.0010s\n" +
		"Efficiency: Adaptive Heuristic is more efficient\n"
	assert.Equal(t, want, cmp.Report())
}

// TestRunAll_TieFavorsBasic checks that equal node counts name the basic mode.
func TestRunAll_TieFavorsBasic(t *testing.T) {
	t.Parallel()

	cmp, err := runner.New().RunAll(context.Background(), mustGrid(t, 4), cell(2, 2), cell(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, cmp.Basic.Result.NodesVisited)
	assert.Equal(t, 1, cmp.Adaptive.Result.NodesVisited)
	assert.Zero(t, cmp.NodeDelta)
	assert.Equal(t, dijkstra.ModeBasic, cmp.MoreEfficient)
}

// TestRunAll_Error returns the engine error and retains nothing.
func TestRunAll_Error(t *testing.T) {
	t.Parallel()

	for _, parallel := range []bool{false, true} {
		c := runner.New(runner.WithParallel(parallel))
		_, err := c.RunAll(context.Background(), mustGrid(t, 4), cell(0, 0), cell(-1, 0))
		require.ErrorIs(t, err, dijkstra.ErrOutOfBounds)
		_, err = c.Compare()
		require.ErrorIs(t, err, runner.ErrNotRun)
	}
}

// TestCompare_NeedsBothModes walks through ErrNotRun, a valid comparison
// built from separate runs, and Reset.
func TestCompare_NeedsBothModes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := mustGrid(t, 5)
	c := runner.New(runner.WithHeuristic(heuristic.KindManhattan))

	_, err := c.Compare()
	require.ErrorIs(t, err, runner.ErrNotRun)

	_, err = c.Run(ctx, g, cell(0, 0), cell(4, 4), dijkstra.ModeBasic)
	require.NoError(t, err)
	_, err = c.Compare()
	require.ErrorIs(t, err, runner.ErrNotRun)

	_, err = c.Run(ctx, g, cell(0, 0), cell(4, 4), dijkstra.ModeAdaptive)
	require.NoError(t, err)
	cmp, err := c.Compare()
	require.NoError(t, err)
	assert.Equal(t, 8, cmp.Basic.Result.Cost)
	assert.Equal(t, 8, cmp.Adaptive.Result.Cost)
	assert.LessOrEqual(t, cmp.Adaptive.Result.NodesVisited, cmp.Basic.Result.NodesVisited)

	c.Reset()
	_, ok := c.Last(dijkstra.ModeBasic)
	assert.False(t, ok)
	_, err = c.Compare()
	require.ErrorIs(t, err, runner.ErrNotRun)
}

// TestCoordinator_ConcurrentRuns hammers one coordinator from many goroutines.
func TestCoordinator_ConcurrentRuns(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, 12)
	c := runner.New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		mode := dijkstra.Modes()[i%2]
		wg.Add(1)
		go func() {
			defer wg.Done()
			run, err := c.Run(context.Background(), g, cell(0, 0), cell(11, 11), mode)
			assert.NoError(t, err)
			assert.Equal(t, 22, run.Result.Cost)
		}()
	}
	wg.Wait()

	_, err := c.Compare()
	require.NoError(t, err)
}

// TestCoordinator_Logging checks the structured log records.
func TestCoordinator_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	c := runner.New(runner.WithLogger(logger), runner.WithParallel(false))

	_, err := c.RunAll(context.Background(), mustGrid(t, 3), cell(0, 0), cell(2, 2))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"search_complete"`)
	assert.Contains(t, out, `"mode":"basic"`)
	assert.Contains(t, out, `"mode":"adaptive"`)
	assert.Contains(t, out, `"msg":"comparison"`)
	assert.Contains(t, out, `"run_id":"`)
}

// TestOptions_Panics checks the fail-fast option constructors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { runner.WithLogger(nil) })
	assert.Panics(t, func() { runner.WithClock(nil) })
	assert.Panics(t, func() { runner.WithHeuristic(heuristic.Kind(42)) })
}
