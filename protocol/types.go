package protocol

import (
	"net"

	"github.com/kpavlov/graphsrv/algorithms"
	"github.com/kpavlov/graphsrv/graph"
)

// Request is one parsed client request: the algorithm to run, the Graph
// built from the header (and edge lines, in explicit mode), and the
// optional adjacency prefix to prepend to the response. Ownership is
// exclusive to whichever queue or worker currently holds it, from the
// acceptor that built it through to the sender that writes its response.
type Request struct {
	Conn   net.Conn
	Algo   algorithms.AlgoKind
	Graph  *graph.Graph
	Prefix string
}

// SendTask packages a fully formatted response body with the connection it
// must be written to. The sender Active Object is the sole writer and sole
// closer of Conn.
type SendTask struct {
	Conn net.Conn
	Body string
}

// HeaderError is a parse/validation failure with both a classification
// sentinel (for errors.Is) and the exact "ERR ..." line this protocol sends
// back to the client.
type HeaderError struct {
	Sentinel error
	Line     string
}

func (e *HeaderError) Error() string { return e.Line }
func (e *HeaderError) Unwrap() error { return e.Sentinel }

func headerErr(sentinel error, line string) *HeaderError {
	return &HeaderError{Sentinel: sentinel, Line: line}
}
