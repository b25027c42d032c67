// Hamilton searches for a Hamiltonian cycle by ascending-index backtracking.
//
// Precondition: V >= 3, the graph is connected among its non-isolated
// vertices, and every vertex has degree >= 2; otherwise Hamilton fails
// immediately with ErrNoHamiltonCycle without searching.
//
// path[0] is fixed to 0 (a Hamiltonian cycle can start anywhere; fixing the
// start avoids re-exploring rotations of the same cycle). At each step the
// next candidate is tried in ascending index order, accepted if adjacent to
// the current last vertex and not yet used; after V vertices are placed, the
// cycle closes only if the last vertex is adjacent to vertex 0.
//
// Time complexity: O(V!) worst case, pruned by adjacency at every step.
package algorithms

import "github.com/kpavlov/graphsrv/graph"

// HamiltonResult holds a successful Hamiltonian cycle.
type HamiltonResult struct {
	// Cycle has V+1 vertices: a permutation of 0..V-1 starting and ending
	// at vertex 0.
	Cycle []int
}

// Hamilton searches g for a Hamiltonian cycle.
func Hamilton(g *graph.Graph) (HamiltonResult, error) {
	v := g.V()
	if v < 3 || !g.ConnectedAmongNonIsolated() {
		return HamiltonResult{}, ErrNoHamiltonCycle
	}
	for i := 0; i < v; i++ {
		if g.Degree(i) < 2 {
			return HamiltonResult{}, ErrNoHamiltonCycle
		}
	}

	path := make([]int, v)
	used := make([]bool, v)
	path[0] = 0
	used[0] = true

	if hamiltonBacktrack(g, path, used, 1) {
		cycle := append(append([]int(nil), path...), 0)
		return HamiltonResult{Cycle: cycle}, nil
	}
	return HamiltonResult{}, ErrNoHamiltonCycle
}

func hamiltonBacktrack(g *graph.Graph, path []int, used []bool, pos int) bool {
	v := len(path)
	if pos == v {
		return g.HasEdge(path[pos-1], path[0])
	}

	for candidate := 0; candidate < v; candidate++ {
		if used[candidate] || !g.HasEdge(path[pos-1], candidate) {
			continue
		}
		path[pos] = candidate
		used[candidate] = true

		if hamiltonBacktrack(g, path, used, pos+1) {
			return true
		}

		used[candidate] = false
	}

	return false
}
