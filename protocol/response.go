package protocol

import (
	"fmt"
	"strings"

	"github.com/kpavlov/graphsrv/graph"
)

// FormatAdjacencyPrefix renders the "-p" adjacency dump: a header line
// followed by one row per vertex, each row's 0/1 values separated by single
// spaces with a trailing space before the row's newline.
func FormatAdjacencyPrefix(g *graph.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph: V=%d, E=%d\nAdjacency matrix:\n", g.V(), g.E())

	for i := 0; i < g.V(); i++ {
		row := g.AdjacencyRow(i)
		for _, bit := range row {
			fmt.Fprintf(&b, "%d ", bit)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatResponse joins a request's adjacency prefix (if any) with an
// algorithm's response body, in the order the client receives them.
func FormatResponse(prefix, body string) string {
	if prefix == "" {
		return body
	}
	return prefix + body
}
