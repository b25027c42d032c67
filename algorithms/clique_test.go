package algorithms_test

import (
	"testing"

	"github.com/kpavlov/graphsrv/algorithms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func k4Edges() [][3]int64 {
	var edges [][3]int64
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, [3]int64{int64(i), int64(j), 1})
		}
	}
	return edges
}

func TestMaxClique_K4(t *testing.T) {
	g := newGraph(t, 4, k4Edges())
	result := algorithms.MaxClique(g)
	assert.Equal(t, []int{0, 1, 2, 3}, result.Vertices)
}

func TestMaxClique_IsActuallyAClique(t *testing.T) {
	g := newGraph(t, 6, [][3]int64{
		{0, 1, 1}, {0, 2, 1}, {1, 2, 1}, // triangle 0,1,2
		{3, 4, 1}, // disjoint edge
		{2, 5, 1},
	})
	result := algorithms.MaxClique(g)
	require.Len(t, result.Vertices, 3)
	for i := 0; i < len(result.Vertices); i++ {
		for j := i + 1; j < len(result.Vertices); j++ {
			assert.True(t, g.HasEdge(result.Vertices[i], result.Vertices[j]))
		}
	}
}

func TestCountCliquesAtLeast3_K4(t *testing.T) {
	g := newGraph(t, 4, k4Edges())
	// C(4,3) + C(4,4) = 4 + 1 = 5
	assert.EqualValues(t, 5, algorithms.CountCliquesAtLeast3(g))
}

func TestCountCliquesAtLeast3_TriangleFree(t *testing.T) {
	// A 4-cycle has no triangle.
	g := newGraph(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}})
	assert.EqualValues(t, 0, algorithms.CountCliquesAtLeast3(g))
}

func TestCountCliquesAtLeast3_K5(t *testing.T) {
	var edges [][3]int64
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [3]int64{int64(i), int64(j), 1})
		}
	}
	g := newGraph(t, 5, edges)
	// C(5,3)+C(5,4)+C(5,5) = 10+5+1 = 16
	assert.EqualValues(t, 16, algorithms.CountCliquesAtLeast3(g))
}
