package protocol

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/kpavlov/graphsrv/algorithms"
	"github.com/kpavlov/graphsrv/graph"
)

var algoNames = map[string]algorithms.AlgoKind{
	"EULER":      algorithms.AlgoEuler,
	"MST":        algorithms.AlgoMST,
	"MAXCLIQUE":  algorithms.AlgoMaxClique,
	"COUNTCLQ3P": algorithms.AlgoCountClq3P,
	"HAMILTON":   algorithms.AlgoHamilton,
}

const usageLine = "ERR usage:\n" +
	"  <ALGO> <E> <V> <SEED> [-p]\n" +
	"  <ALGO> GRAPH <E> <V> [-p]  (then E lines: u v [w])\n"

const unknownAlgoLine = "ERR unknown ALGO. Supported: EULER MST MAXCLIQUE COUNTCLQ3P HAMILTON\n"

// ParseRequest reads one header line (and, in explicit mode, its edge
// lines) from r, builds the Graph it describes, and returns a Request ready
// to route to the matching algorithm's Active Object. On any parse or
// validation failure it returns a *HeaderError carrying the exact "ERR ..."
// line the caller should write back before closing the connection.
func ParseRequest(conn net.Conn, r *bufio.Reader) (*Request, error) {
	line, err := readLine(r)
	if err != nil || line == "" {
		return nil, headerErr(ErrMalformedHeader, usageLine)
	}

	tok := strings.Fields(line)
	if len(tok) < 4 {
		return nil, headerErr(ErrMalformedHeader, usageLine)
	}

	algo, ok := algoNames[tok[0]]
	if !ok {
		return nil, headerErr(ErrUnknownAlgorithm, unknownAlgoLine)
	}

	var (
		g         *graph.Graph
		wantPrint bool
	)

	if tok[1] == "GRAPH" {
		g, wantPrint, err = parseExplicitGraph(r, tok)
	} else {
		g, wantPrint, err = parseRandomGraph(tok)
	}
	if err != nil {
		return nil, err
	}

	prefix := ""
	if wantPrint {
		prefix = FormatAdjacencyPrefix(g)
	}

	return &Request{Conn: conn, Algo: algo, Graph: g, Prefix: prefix}, nil
}

func parseExplicitGraph(r *bufio.Reader, tok []string) (*graph.Graph, bool, error) {
	if len(tok) < 4 || len(tok) > 5 {
		return nil, false, headerErr(ErrMalformedHeader, "ERR usage: <ALGO> GRAPH <E> <V> [-p]\n")
	}

	e, eOK := parseInt(tok[2])
	v, vOK := parseInt(tok[3])
	if !eOK || !vOK {
		return nil, false, headerErr(ErrBadInteger, "ERR bad <E> or <V>\n")
	}

	wantPrint, err := parseFlag(tok, 4)
	if err != nil {
		return nil, false, err
	}

	if err := validateRange(e, v); err != nil {
		return nil, false, err
	}

	g, err := graph.New(v)
	if err != nil {
		return nil, false, headerErr(ErrOutOfRange, fmt.Sprintf("ERR invalid: %v\n", err))
	}

	for i := 0; i < e; i++ {
		edgeLine, err := readLine(r)
		if err != nil {
			return nil, false, headerErr(ErrTruncatedEdgeList, fmt.Sprintf("ERR expected %d edge lines; got %d\n", e, i))
		}

		// A successfully-read blank line is not truncation: the stream is
		// still alive, the client just sent an empty edge line. That falls
		// through to the field-count check below like any other malformed
		// edge line.
		fields := strings.Fields(edgeLine)
		if len(fields) < 2 {
			return nil, false, headerErr(ErrInvalidEdge, "ERR edge line format: u v [w]\n")
		}

		u, uOK := parseInt(fields[0])
		v2, vOK2 := parseInt(fields[1])
		if !uOK || !vOK2 {
			return nil, false, headerErr(ErrInvalidEdge, "ERR edge endpoints\n")
		}

		weight := int64(1)
		if len(fields) >= 3 {
			tw, ok := parseInt(fields[2])
			if !ok || tw <= 0 {
				return nil, false, headerErr(ErrNonPositiveWeight, "ERR weight must be positive\n")
			}
			weight = int64(tw)
		}

		if u < 0 || u >= v || v2 < 0 || v2 >= v || u == v2 {
			return nil, false, headerErr(ErrInvalidEdge, fmt.Sprintf("ERR invalid edge %d: (%d,%d)\n", i, u, v2))
		}

		// Ignore duplicates, matching the reference server's edge-ingestion
		// policy: a second AddEdge for the same pair is simply a no-op here.
		_ = g.AddEdge(u, v2, weight)
	}

	return g, wantPrint, nil
}

func parseRandomGraph(tok []string) (*graph.Graph, bool, error) {
	if len(tok) < 4 || len(tok) > 5 {
		return nil, false, headerErr(ErrMalformedHeader, "ERR usage: <ALGO> <E> <V> <SEED> [-p]\n")
	}

	e, eOK := parseInt(tok[1])
	v, vOK := parseInt(tok[2])
	seed, sOK := parseUint(tok[3])
	if !eOK || !vOK || !sOK {
		return nil, false, headerErr(ErrBadInteger, "ERR bad params.\n")
	}

	wantPrint, err := parseFlag(tok, 4)
	if err != nil {
		return nil, false, err
	}

	if err := validateRange(e, v); err != nil {
		return nil, false, err
	}

	g, err := graph.New(v)
	if err != nil {
		return nil, false, headerErr(ErrOutOfRange, fmt.Sprintf("ERR invalid: %v\n", err))
	}
	if err := g.GenerateRandom(e, seed); err != nil {
		return nil, false, headerErr(ErrOutOfRange, fmt.Sprintf("ERR invalid: %v\n", err))
	}

	return g, wantPrint, nil
}

func parseFlag(tok []string, idx int) (bool, error) {
	if len(tok) <= idx {
		return false, nil
	}
	if tok[idx] != "-p" {
		return false, headerErr(ErrBadFlag, "ERR bad flag. Use -p or omit.\n")
	}
	return true, nil
}

func validateRange(e, v int) error {
	if v < 1 || e < 0 {
		return headerErr(ErrOutOfRange, "ERR invalid: V >= 1, E >= 0\n")
	}
	maxE := int64(v) * int64(v-1) / 2
	if int64(e) > maxE {
		return headerErr(ErrOutOfRange, fmt.Sprintf("ERR invalid: E <= V*(V-1)/2 (max=%d)\n", maxE))
	}
	return nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseInt(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func parseUint(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
