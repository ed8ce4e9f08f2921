// Package dijkstra implements best-first search between two grid cells.
//
// One loop serves both modes; only the priority assigned to a newly
// improved cell differs:
//
//   - ModeBasic:    priority = accumulated cost.
//   - ModeAdaptive: priority = accumulated cost + h(cell, goal).
//
// Notes on implementation choices:
//
//   - Every step costs 1, so costs are integers; priorities are float64
//     because Euclidean estimates are fractional.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Heap entries carry an insertion sequence so that equal priorities pop
//     first-in, first-out.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// priorityFunc computes the frontier priority of a cell reached with cost.
type priorityFunc func(c gridgraph.Cell, cost int) float64

// Search finds a path from start to goal on g.
//
// Returns:
//
//   - Result with Found=true, the path (start excluded, goal included), its
//     cost and the number of closed cells; or
//   - Result with Found=false, empty path, Cost=Unreachable and the number of
//     closed cells when the frontier runs dry; or
//   - an error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must be inside g (ErrOutOfBounds).
//  3. start and goal must be free unless WithPermissiveEndpoints (ErrBlockedEndpoint).
//
// Complexity:
//
//   - Time:  O(V log V), V = number of cells.
//   - Space: O(V).
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, start, g.Size(), g.Size())
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %v in %d×%d grid", ErrOutOfBounds, goal, g.Size(), g.Size())
	}
	if !cfg.PermissiveEndpoints {
		if !g.IsFree(start) {
			return Result{}, fmt.Errorf("%w: start %v", ErrBlockedEndpoint, start)
		}
		if !g.IsFree(goal) {
			return Result{}, fmt.Errorf("%w: goal %v", ErrBlockedEndpoint, goal)
		}
	}

	// 3) Resolve the priority function once for the whole search.
	priority, err := newPriorityFunc(cfg, g, goal)
	if err != nil {
		return Result{}, err
	}

	// 4) Run.
	r := &runner{
		g:        g,
		goal:     goal,
		priority: priority,
		onVisit:  cfg.OnVisit,
		cost:     make(map[gridgraph.Cell]int),
		prev:     make(map[gridgraph.Cell]gridgraph.Cell),
		closed:   make(map[gridgraph.Cell]struct{}),
		pq:       make(cellPQ, 0, g.Size()),
	}
	r.init(start)

	return r.process(), nil
}

// newPriorityFunc maps the configured mode to its priority function.
func newPriorityFunc(cfg Options, g *gridgraph.Grid, goal gridgraph.Cell) (priorityFunc, error) {
	switch cfg.Mode {
	case ModeBasic:
		return func(_ gridgraph.Cell, cost int) float64 {
			return float64(cost)
		}, nil
	case ModeAdaptive:
		h, err := heuristic.Resolve(cfg.Heuristic, g)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadHeuristic, err)
		}
		return func(c gridgraph.Cell, cost int) float64 {
			return float64(cost) + h(c, goal)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(cfg.Mode))
	}
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.Grid                   // The input grid; read-only.
	goal     gridgraph.Cell                    // Target cell.
	priority priorityFunc                      // Frontier ordering.
	onVisit  func(gridgraph.Cell, int)         // Closing hook.
	cost     map[gridgraph.Cell]int            // Best accumulated cost per labelled cell.
	prev     map[gridgraph.Cell]gridgraph.Cell // Predecessor on the best known route.
	closed   map[gridgraph.Cell]struct{}       // Finalized cells.
	pq       cellPQ                            // Min-heap with lazy deletion.
	seq      uint64                            // Next insertion sequence number.
}

// init labels start with cost 0 and pushes it with priority 0.
func (r *runner) init(start gridgraph.Cell) {
	r.cost[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(c gridgraph.Cell, priority float64) {
	heap.Push(&r.pq, &cellItem{cell: c, priority: priority, seq: r.seq})
	r.seq++
}

// process is the main loop. It pops the best entry, skips stale ones,
// closes the cell, stops on the goal and otherwise relaxes its neighbors.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		u := heap.Pop(&r.pq).(*cellItem).cell

		// 2) Skip stale entries of cells that are already final.
		if _, done := r.closed[u]; done {
			continue
		}

		// 3) Close u.
		r.closed[u] = struct{}{}
		r.onVisit(u, r.cost[u])

		// 4) Goal reached: rebuild the path.
		if u == r.goal {
			return Result{
				Path:         r.path(),
				Cost:         r.cost[u],
				Found:        true,
				NodesVisited: len(r.closed),
			}
		}

		// 5) Relax free neighbors.
		r.relax(u)
	}

	return Result{
		Path:         []gridgraph.Cell{},
		Cost:         Unreachable,
		Found:        false,
		NodesVisited: len(r.closed),
	}
}

// relax offers cost(u)+1 to every free, not yet closed neighbor of u.
// A strictly better offer updates cost and predecessor and pushes a new
// heap entry; the old entry becomes stale.
func (r *runner) relax(u gridgraph.Cell) {
	newCost := r.cost[u] + 1
	for _, v := range r.g.Neighbors4(u) {
		if !r.g.IsFree(v) {
			continue
		}
		if _, done := r.closed[v]; done {
			continue
		}
		if old, seen := r.cost[v]; seen && newCost >= old {
			continue
		}
		r.cost[v] = newCost
		r.prev[v] = u
		r.push(v, r.priority(v, newCost))
	}
}

// path follows predecessor links back from the goal and reverses them.
// The start cell has no predecessor and is therefore not included.
func (r *runner) path() []gridgraph.Cell {
	path := make([]gridgraph.Cell, 0, r.cost[r.goal])
	for at := r.goal; ; {
		p, ok := r.prev[at]
		if !ok {
			break
		}
		path = append(path, at)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cellItem is one frontier entry.
type cellItem struct {
	cell     gridgraph.Cell
	priority float64
	seq      uint64
}

// cellPQ is a min-heap of *cellItem ordered by priority, then by insertion
// sequence. The outdated entries left behind by lazy decrease-key are
// filtered by the caller via the closed set.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by priority and breaks ties first-in, first-out.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
