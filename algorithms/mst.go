// MST computes a minimum spanning tree's total weight via dense Prim, in the
// style of a classic O(V^2) array-based implementation: no heap, predictable
// memory, suited to the dense adjacency matrices this service works with.
//
// Precondition: every vertex is reachable from vertex 0 via adjacency, i.e.
// the graph is fully connected with no isolated vertex. Unlike Euler, a
// single isolated vertex is enough to fail MST with ErrNotConnected, since a
// spanning tree must reach it.
//
// Time complexity: O(V^2). Memory: O(V).
package algorithms

import (
	"math"

	"github.com/kpavlov/graphsrv/graph"
)

// MSTResult holds the outcome of a successful MST computation.
type MSTResult struct {
	TotalWeight int64
}

// MST computes the minimum spanning tree's total weight over g.
func MST(g *graph.Graph) (MSTResult, error) {
	v := g.V()
	for i := 0; i < v; i++ {
		if g.Degree(i) == 0 {
			return MSTResult{}, ErrNotConnected
		}
	}
	const inf = math.MaxInt64

	key := make([]int64, v)
	inMST := make([]bool, v)
	for i := range key {
		key[i] = inf
	}
	key[0] = 0

	var total int64
	for iter := 0; iter < v; iter++ {
		u := -1
		var minKey int64 = inf
		for i := 0; i < v; i++ {
			if !inMST[i] && key[i] < minKey {
				minKey = key[i]
				u = i
			}
		}
		if u == -1 {
			return MSTResult{}, ErrNotConnected
		}

		inMST[u] = true
		total += key[u]

		for w := 0; w < v; w++ {
			if inMST[w] || !g.HasEdge(u, w) {
				continue
			}
			weight := g.Weight(u, w)
			if weight < key[w] {
				key[w] = weight
			}
		}
	}

	return MSTResult{TotalWeight: total}, nil
}
