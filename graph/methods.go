package graph

// AddEdge adds an undirected edge {u,v} with weight w, symmetrically setting
// adjacency and weight. It is idempotent: calling it again with the same
// endpoints returns ErrDuplicateEdge without mutating the graph, matching
// the reference server's "ignore duplicates" edge-ingestion policy.
func (g *Graph) AddEdge(u, v int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= g.v || v < 0 || v >= g.v {
		return ErrVertexOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if w <= 0 {
		return ErrNonPositiveWeight
	}
	if g.adjacency[u][v] {
		return ErrDuplicateEdge
	}

	g.adjacency[u][v] = true
	g.adjacency[v][u] = true
	g.weight[u][v] = w
	g.weight[v][u] = w
	g.e++

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range endpoints report
// false rather than panicking, since callers in the algorithm layer iterate
// full [0,V) ranges.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.v || v < 0 || v >= g.v {
		return false
	}
	return g.adjacency[u][v]
}

// Weight returns the weight of {u,v}, or 0 if no such edge exists.
func (g *Graph) Weight(u, v int) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.v || v < 0 || v >= g.v {
		return 0
	}
	return g.weight[u][v]
}

// Degree returns the number of edges incident to u.
func (g *Graph) Degree(u int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.degreeLocked(u)
}

func (g *Graph) degreeLocked(u int) int {
	d := 0
	row := g.adjacency[u]
	for _, set := range row {
		if set {
			d++
		}
	}
	return d
}

// AdjacencyRow returns a defensive copy of row u of the adjacency matrix, as
// 0/1 ints, for use by the response prefix formatter.
func (g *Graph) AdjacencyRow(u int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := make([]int, g.v)
	for j, set := range g.adjacency[u] {
		if set {
			row[j] = 1
		}
	}
	return row
}

// Neighbors returns the ascending-index list of vertices adjacent to u.
func (g *Graph) Neighbors(u int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.v)
	for j, set := range g.adjacency[u] {
		if set {
			out = append(out, j)
		}
	}
	return out
}

// ConnectedAmongNonIsolated reports whether every vertex of positive degree
// is reachable from any other vertex of positive degree. A graph with no
// edges at all trivially satisfies this.
func (g *Graph) ConnectedAmongNonIsolated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	start := -1
	for i := 0; i < g.v; i++ {
		if g.degreeLocked(i) > 0 {
			start = i
			break
		}
	}
	if start == -1 {
		return true
	}

	visited := make([]bool, g.v)
	stack := []int{start}
	visited[start] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < g.v; v++ {
			if g.adjacency[u][v] && !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	for i := 0; i < g.v; i++ {
		if g.degreeLocked(i) > 0 && !visited[i] {
			return false
		}
	}
	return true
}

// AllEvenDegrees reports whether every vertex has even degree.
func (g *Graph) AllEvenDegrees() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := 0; i < g.v; i++ {
		if g.degreeLocked(i)%2 != 0 {
			return false
		}
	}
	return true
}

// CountOddDegree returns the number of vertices with odd degree.
func (g *Graph) CountOddDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	odd := 0
	for i := 0; i < g.v; i++ {
		if g.degreeLocked(i)%2 != 0 {
			odd++
		}
	}
	return odd
}

// DenseSnapshot returns defensive copies of the adjacency and weight
// matrices, for use by algorithms that need a mutable working copy
// (Hierholzer's destructive walk, in particular).
func (g *Graph) DenseSnapshot() (adjacency [][]bool, weight [][]int64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adjacency = make([][]bool, g.v)
	weight = make([][]int64, g.v)
	for i := 0; i < g.v; i++ {
		adjacency[i] = make([]bool, g.v)
		weight[i] = make([]int64, g.v)
		copy(adjacency[i], g.adjacency[i])
		copy(weight[i], g.weight[i])
	}
	return adjacency, weight
}
