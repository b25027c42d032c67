// Package protocol implements the wire protocol: header and edge-list
// parsing, adjacency-prefix and algorithm response formatting, and the
// Request/SendTask types that flow between the acceptor, the algorithm
// Active Objects, and the sender.
package protocol

import "errors"

// Parse/validation errors, each mapped to a single ERR line and a socket
// close by the caller. They are sentinel values rather than a single
// generic error so callers can report the exact reason with errors.Is.
var (
	ErrMalformedHeader   = errors.New("protocol: malformed header")
	ErrUnknownAlgorithm  = errors.New("protocol: unknown algorithm")
	ErrBadInteger        = errors.New("protocol: bad integer parameter")
	ErrBadFlag           = errors.New("protocol: bad flag")
	ErrOutOfRange        = errors.New("protocol: parameter out of range")
	ErrTruncatedEdgeList = errors.New("protocol: truncated edge list")
	ErrInvalidEdge       = errors.New("protocol: invalid edge")
	ErrNonPositiveWeight = errors.New("protocol: weight must be positive")
)
