package runner

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "basic", modeLabel(dijkstra.ModeBasic))
	assert.Equal(t, "adaptive", modeLabel(dijkstra.ModeAdaptive))
	assert.Equal(t, "unknown", modeLabel(dijkstra.Mode(-1)))
}

// TestMetrics_Outcomes runs serially so that no other test touches the
// package-level counters while deltas are measured.
func TestMetrics_Outcomes(t *testing.T) {
	g, err := gridgraph.ParseText(`
		...
		..#
		.#.`)
	require.NoError(t, err)
	ctx := context.Background()
	c := New()

	found := searchTotal.WithLabelValues("basic", outcomeFound)
	unreachable := searchTotal.WithLabelValues("adaptive", outcomeUnreachable)
	failed := searchTotal.WithLabelValues("basic", outcomeError)
	f0, u0, e0 := testutil.ToFloat64(found), testutil.ToFloat64(unreachable), testutil.ToFloat64(failed)

	_, err = c.Run(ctx, g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 1}, dijkstra.ModeBasic)
	require.NoError(t, err)
	c2 := New(WithSearchOptions(dijkstra.WithPermissiveEndpoints()))
	_, err = c2.Run(ctx, g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2}, dijkstra.ModeAdaptive)
	require.NoError(t, err)
	_, err = c.Run(ctx, g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 2}, dijkstra.ModeBasic)
	require.Error(t, err)

	assert.Equal(t, f0+1, testutil.ToFloat64(found))
	assert.Equal(t, u0+1, testutil.ToFloat64(unreachable))
	assert.Equal(t, e0+1, testutil.ToFloat64(failed))
}
