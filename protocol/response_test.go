package protocol_test

import (
	"testing"

	"github.com/kpavlov/graphsrv/graph"
	"github.com/kpavlov/graphsrv/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAdjacencyPrefix(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	got := protocol.FormatAdjacencyPrefix(g)
	want := "Graph: V=2, E=1\n" +
		"Adjacency matrix:\n" +
		"0 1 \n" +
		"1 0 \n"
	assert.Equal(t, want, got)
}

func TestFormatResponse_WithAndWithoutPrefix(t *testing.T) {
	assert.Equal(t, "body\n", protocol.FormatResponse("", "body\n"))
	assert.Equal(t, "prefix\nbody\n", protocol.FormatResponse("prefix\n", "body\n"))
}
