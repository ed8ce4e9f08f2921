// Package runner coordinates timed searches and compares the two modes.
//
// A Coordinator wraps dijkstra.Search with wall-clock timing, keeps the latest
// Run per mode and derives a Comparison from the pair. Each run is logged with
// log/slog, counted in Prometheus metrics and wrapped in an OpenTelemetry span.
//
// Searches never share mutable state and grids are immutable, so RunAll may
// execute both modes concurrently on the same grid.
//
// Example:
//
//	c := runner.New(runner.WithLogger(logger))
//	cmp, err := c.RunAll(ctx, g, start, goal)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(cmp.Report())
package runner
