// Strategy and the factory below mirror the reference server's algorithm
// table: a name maps to one runnable strategy, and an unknown name yields no
// match rather than a panic. Each Strategy formats its own response body,
// refusals (no Euler circuit, no Hamiltonian cycle, disconnected MST) are
// ordinary successful results, not Go errors: only a malformed request or an
// actual computation failure should ever reach the caller as an error.
package algorithms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kpavlov/graphsrv/graph"
)

// AlgoKind identifies one of the five supported algorithms.
type AlgoKind string

const (
	AlgoEuler      AlgoKind = "EULER"
	AlgoMST        AlgoKind = "MST"
	AlgoMaxClique  AlgoKind = "MAXCLIQUE"
	AlgoCountClq3P AlgoKind = "COUNTCLQ3P"
	AlgoHamilton   AlgoKind = "HAMILTON"
)

// Strategy runs one algorithm over a Graph and formats its response body.
type Strategy interface {
	Name() AlgoKind
	Execute(g *graph.Graph) (string, error)
}

type eulerStrategy struct{}

func (eulerStrategy) Name() AlgoKind { return AlgoEuler }

func (eulerStrategy) Execute(g *graph.Graph) (string, error) {
	result, err := Euler(g)
	switch {
	case err == nil:
		var b strings.Builder
		b.WriteString("Euler circuit exists. Sequence of vertices:\n")
		writeJoined(&b, result.Sequence, " -> ")
		b.WriteByte('\n')
		return b.String(), nil
	case errors.Is(err, ErrDisconnected):
		return "No Euler circuit: graph is disconnected among non-isolated vertices.\n", nil
	default:
		var oddErr ErrOddDegree
		if errors.As(err, &oddErr) {
			return fmt.Sprintf("No Euler circuit: %d vertices have odd degree.\n", oddErr.Count), nil
		}
		return "", err
	}
}

type mstStrategy struct{}

func (mstStrategy) Name() AlgoKind { return AlgoMST }

func (mstStrategy) Execute(g *graph.Graph) (string, error) {
	result, err := MST(g)
	switch {
	case err == nil:
		return fmt.Sprintf("MST total weight: %d\n", result.TotalWeight), nil
	case errors.Is(err, ErrNotConnected):
		return "MST: graph is not connected (no spanning tree)\n", nil
	default:
		return "", err
	}
}

type maxCliqueStrategy struct{}

func (maxCliqueStrategy) Name() AlgoKind { return AlgoMaxClique }

func (maxCliqueStrategy) Execute(g *graph.Graph) (string, error) {
	result := MaxClique(g)
	var b strings.Builder
	fmt.Fprintf(&b, "Max clique size = %d\n", len(result.Vertices))
	if len(result.Vertices) > 0 {
		b.WriteString("Vertices: ")
		writeJoined(&b, result.Vertices, " ")
		b.WriteByte('\n')
	}
	return b.String(), nil
}

type countClq3PStrategy struct{}

func (countClq3PStrategy) Name() AlgoKind { return AlgoCountClq3P }

func (countClq3PStrategy) Execute(g *graph.Graph) (string, error) {
	count := CountCliquesAtLeast3(g)
	return fmt.Sprintf("Number of cliques (size >= 3): %d\n", count), nil
}

type hamiltonStrategy struct{}

func (hamiltonStrategy) Name() AlgoKind { return AlgoHamilton }

func (hamiltonStrategy) Execute(g *graph.Graph) (string, error) {
	result, err := Hamilton(g)
	switch {
	case err == nil:
		var b strings.Builder
		b.WriteString("Hamiltonian cycle found:\n")
		writeJoined(&b, result.Cycle, " -> ")
		b.WriteByte('\n')
		return b.String(), nil
	case errors.Is(err, ErrNoHamiltonCycle):
		return "No Hamiltonian cycle.\n", nil
	default:
		return "", err
	}
}

func writeJoined(b *strings.Builder, values []int, sep string) {
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(v))
	}
}

var table = map[AlgoKind]Strategy{
	AlgoEuler:      eulerStrategy{},
	AlgoMST:        mstStrategy{},
	AlgoMaxClique:  maxCliqueStrategy{},
	AlgoCountClq3P: countClq3PStrategy{},
	AlgoHamilton:   hamiltonStrategy{},
}

// MakeStrategy returns the Strategy for name, or nil if name is not one of
// the five supported algorithms.
func MakeStrategy(name AlgoKind) Strategy {
	return table[name]
}
