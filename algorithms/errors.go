package algorithms

import (
	"errors"
	"fmt"
)

// ErrDisconnected is returned by Euler when the graph's non-isolated
// vertices do not form a single connected component.
var ErrDisconnected = errors.New("algorithms: graph is disconnected among non-isolated vertices")

// ErrNotConnected is returned by MST when no spanning tree exists.
var ErrNotConnected = errors.New("algorithms: graph is not connected (no spanning tree)")

// ErrNoHamiltonCycle is returned by Hamilton when no Hamiltonian cycle
// exists, including when the cheap preconditions (V>=3, connected among
// non-isolated vertices, every vertex degree>=2) already rule one out.
var ErrNoHamiltonCycle = errors.New("algorithms: no Hamiltonian cycle")

// ErrOddDegree is returned by Euler when the graph is connected among
// non-isolated vertices but some vertices have odd degree, which rules out
// an Eulerian circuit. Count is always > 0.
type ErrOddDegree struct {
	Count int
}

func (e ErrOddDegree) Error() string {
	return fmt.Sprintf("algorithms: %d vertices have odd degree", e.Count)
}
