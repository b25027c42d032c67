// Package algorithms implements the classical graph algorithms exposed by the
// graph-computation service: Eulerian circuit (Hierholzer), minimum spanning
// tree (dense Prim), maximum clique and enumeration of all cliques of size
// >= 3 (Bron-Kerbosch, with and without pivoting), and Hamiltonian cycle
// (backtracking).
//
// Every algorithm accepts a *graph.Graph. Euler, MST and Hamilton return a
// typed result plus an error describing why no answer exists; "no Euler
// circuit", "no spanning tree" and "no Hamiltonian cycle" are expected,
// non-exceptional outcomes and are represented as ordinary returned errors
// so callers can format a refusal response instead of treating them as
// failures. MaxClique and CountCliquesAtLeast3 always have an answer and
// return no error.
package algorithms
