package algorithms_test

import (
	"testing"

	"github.com/kpavlov/graphsrv/algorithms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMST_Square(t *testing.T) {
	g := newGraph(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 0, 4}})
	result, err := algorithms.MST(g)
	require.NoError(t, err)
	assert.EqualValues(t, 6, result.TotalWeight)
}

func TestMST_IsolatedVertexFails(t *testing.T) {
	g := newGraph(t, 3, [][3]int64{{0, 1, 5}})
	_, err := algorithms.MST(g)
	assert.ErrorIs(t, err, algorithms.ErrNotConnected)
}

func TestMST_SingleVertexFails(t *testing.T) {
	g := newGraph(t, 1, nil)
	_, err := algorithms.MST(g)
	assert.ErrorIs(t, err, algorithms.ErrNotConnected)
}

func TestMST_PicksCheaperEdge(t *testing.T) {
	g := newGraph(t, 3, [][3]int64{{0, 1, 10}, {1, 2, 10}, {0, 2, 1}})
	result, err := algorithms.MST(g)
	require.NoError(t, err)
	assert.EqualValues(t, 11, result.TotalWeight)
}
