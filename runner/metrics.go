package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/gridpath/dijkstra"
)

var tracer = otel.Tracer("gridpath.runner")

const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeError       = "error"
)

var (
	// searchTotal counts coordinated searches by mode and outcome.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridpath",
		Subsystem: "runner",
		Name:      "search_total",
		Help:      "Total searches by mode and outcome",
	}, []string{"mode", "outcome"})

	// searchDuration tracks wall-clock search time.
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gridpath",
		Subsystem: "runner",
		Name:      "search_duration_seconds",
		Help:      "Search duration in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"mode"})

	// searchNodesVisited tracks closed cells per search.
	searchNodesVisited = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gridpath",
		Subsystem: "runner",
		Name:      "search_nodes_visited",
		Help:      "Cells closed per search",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"mode"})
)

// modeLabel keeps the label set bounded to known modes.
func modeLabel(m dijkstra.Mode) string {
	if !m.Valid() {
		return "unknown"
	}
	return m.String()
}
