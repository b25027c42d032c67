// Euler finds an Eulerian circuit by Hierholzer's algorithm.
//
// Precondition: the graph is connected among its non-isolated vertices and
// every vertex has even degree. Otherwise Euler fails with ErrDisconnected
// or ErrOddDegree{Count}.
//
// The walk operates on a destructive copy of the adjacency matrix and a
// parallel degree array: from the stack top u, while deg[u] > 0 it picks the
// smallest index v with an edge remaining to u, consumes that edge on both
// sides, and pushes v; when deg[u] == 0 it pops u onto the output. The
// output, built by appending on pop, is already in circuit order.
//
// Time complexity: O(V^2 + V*E), since each edge step scans a row for the
// smallest remaining neighbor. Memory: O(V^2) for the destructive adjacency
// copy.
package algorithms

import "github.com/kpavlov/graphsrv/graph"

// EulerResult holds a successful Eulerian circuit.
type EulerResult struct {
	// Sequence is the circuit start..start, length E+1 for E>0, or the
	// single start vertex when the graph has no edges.
	Sequence []int
}

// Euler computes an Eulerian circuit of g, or reports why none exists.
func Euler(g *graph.Graph) (EulerResult, error) {
	if !g.ConnectedAmongNonIsolated() {
		return EulerResult{}, ErrDisconnected
	}
	if odd := g.CountOddDegree(); odd > 0 {
		return EulerResult{}, ErrOddDegree{Count: odd}
	}

	v := g.V()
	adjacency, _ := g.DenseSnapshot()
	degree := make([]int, v)
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			if adjacency[i][j] {
				degree[i]++
			}
		}
	}

	start := 0
	for i := 0; i < v; i++ {
		if degree[i] > 0 {
			start = i
			break
		}
	}

	stack := []int{start}
	var output []int
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if degree[u] > 0 {
			next := -1
			for w := 0; w < v; w++ {
				if adjacency[u][w] {
					next = w
					break
				}
			}
			adjacency[u][next] = false
			adjacency[next][u] = false
			degree[u]--
			degree[next]--
			stack = append(stack, next)
		} else {
			stack = stack[:len(stack)-1]
			output = append(output, u)
		}
	}

	return EulerResult{Sequence: output}, nil
}
