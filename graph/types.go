// Package graph defines the Graph type used by the networked graph-computation
// service: a fixed-size, undirected, simple graph with positive integer edge
// weights, backed by a dense adjacency matrix and a parallel weight matrix.
//
// A Graph is created once per request (either by explicit edge ingestion or
// by GenerateRandom), mutated only during that construction, and treated as
// read-only afterward. The RWMutex below guards against a caller sharing a
// *Graph across goroutines contrary to that lifecycle; it is not required by
// the single-goroutine construction path itself.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for Graph construction and mutation.
var (
	// ErrInvalidVertexCount indicates V < 1 was requested.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be >= 1")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an edge was requested between a vertex and itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrNonPositiveWeight indicates a weight <= 0 was supplied.
	ErrNonPositiveWeight = errors.New("graph: weight must be positive")

	// ErrDuplicateEdge indicates the edge already exists; AddEdge is a no-op.
	ErrDuplicateEdge = errors.New("graph: edge already exists")

	// ErrTooManyEdges indicates targetE exceeds V*(V-1)/2 for GenerateRandom.
	ErrTooManyEdges = errors.New("graph: target edge count exceeds V*(V-1)/2")
)

// WMAX bounds the inclusive range [1, WMAX] that GenerateRandom draws edge
// weights from.
const WMAX = 100

// Graph is an undirected simple graph over V vertices (indices 0..V-1) with
// positive integer edge weights. adjacency and weight are both symmetric and
// zero on the diagonal.
type Graph struct {
	mu sync.RWMutex

	v int
	e int

	adjacency [][]bool
	weight    [][]int64
}

// New returns an empty Graph with v vertices and no edges.
func New(v int) (*Graph, error) {
	if v < 1 {
		return nil, ErrInvalidVertexCount
	}

	adjacency := make([][]bool, v)
	weight := make([][]int64, v)
	for i := 0; i < v; i++ {
		adjacency[i] = make([]bool, v)
		weight[i] = make([]int64, v)
	}

	return &Graph{v: v, adjacency: adjacency, weight: weight}, nil
}

// V returns the number of vertices.
func (g *Graph) V() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.v
}

// E returns the number of edges.
func (g *Graph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.e
}

// MaxEdges returns V*(V-1)/2, the maximum number of edges a simple undirected
// graph on V vertices can hold.
func (g *Graph) MaxEdges() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return maxEdges(g.v)
}

func maxEdges(v int) int64 {
	n := int64(v)
	return n * (n - 1) / 2
}
