package gridgraph

// ReachableFrom counts the free cells connected to start through free cells
// under 4-connectivity, start included. Returns 0 if start is blocked or out
// of bounds.
//
// An exhaustive search from start closes exactly this many cells when the
// goal is unreachable.
//
// Time:   O(N²).
// Memory: O(N²) for visited flags and the queue.
func (g *Grid) ReachableFrom(start Cell) int {
	if !g.IsFree(start) {
		return 0
	}
	seen := make([]bool, len(g.states))
	i0 := g.index(start.Row, start.Col)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range offsets4 {
			v := Cell{Row: u.Row + d[0], Col: u.Col + d[1]}
			if !g.IsFree(v) {
				continue
			}
			vi := g.index(v.Row, v.Col)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return len(queue)
}

// Distance returns the length of a shortest 4-connected path of free cells
// from a to b, or -1 when b cannot be reached. It is a plain breadth-first
// search and serves as a reference for the priority-queue engines.
//
// Time:   O(N²).
// Memory: O(N²).
func (g *Grid) Distance(a, b Cell) int {
	if !g.IsFree(a) || !g.IsFree(b) {
		return -1
	}
	dist := make([]int, len(g.states))
	for i := range dist {
		dist[i] = -1
	}
	i0 := g.index(a.Row, a.Col)
	dist[i0] = 0
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		ui := queue[qi]
		u := g.Coordinate(ui)
		if u == b {
			return dist[ui]
		}
		for _, d := range offsets4 {
			v := Cell{Row: u.Row + d[0], Col: u.Col + d[1]}
			if !g.IsFree(v) {
				continue
			}
			vi := g.index(v.Row, v.Col)
			if dist[vi] < 0 {
				dist[vi] = dist[ui] + 1
				queue = append(queue, vi)
			}
		}
	}

	return -1
}
