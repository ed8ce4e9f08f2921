// Package gridpath compares uniform-cost search with heuristic-guided search
// on square obstacle grids.
//
// What is inside:
//
//	gridgraph/    immutable N×N occupancy grid, 4-neighborhood, text format, BFS reachability
//	heuristic/    Manhattan, Euclidean and the density-switching adaptive estimate
//	dijkstra/     one best-first engine with basic and adaptive priority modes
//	builder/      seeded random obstacle grids (functional options)
//	runner/       timed runs, mode comparison, slog logs, Prometheus metrics, OTel spans
//	config/       YAML configuration with validation and environment overrides
//	cmd/gridpath  cobra CLI: generate, run, compare
//
// Quick start:
//
//	g, _ := gridgraph.New(10)
//	res, err := dijkstra.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 9, Col: 9},
//	    dijkstra.WithMode(dijkstra.ModeAdaptive))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.NodesVisited)
//
// Every step costs 1. With a consistent estimate such as Manhattan both modes
// return paths of equal length and differ only in how many cells they close.
package gridpath
