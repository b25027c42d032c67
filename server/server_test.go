package server_test

import (
	"net"
	"testing"
	"time"

	"github.com/kpavlov/graphsrv/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer binds a throwaway listener to recover an OS-assigned
// loopback address, closes it, and immediately hands that address to
// server.New, since Server does not expose its listener's Addr().
func newTestServer(t *testing.T) (*server.Server, string) {
	t.Helper()

	probe, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := probe.Addr().String()
	require.NoError(t, probe.Close())

	srv, err := server.New(addr, 2)
	require.NoError(t, err)

	return srv, addr
}

func sendRequest(t *testing.T, addr, request string) string {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(request))
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}
	return string(out)
}

func TestServer_EulerTrivialCase(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	got := sendRequest(t, addr, "EULER 0 1 1\n")
	assert.Equal(t, "Euler circuit exists. Sequence of vertices:\n0\n", got)
}

func TestServer_MSTExplicitGraph(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	request := "MST GRAPH 4 4\n0 1 1\n1 2 2\n2 3 3\n3 0 4\n"
	got := sendRequest(t, addr, request)
	assert.Equal(t, "MST total weight: 6\n", got)
}

func TestServer_MaxCliqueExplicitGraph(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	request := "MAXCLIQUE GRAPH 6 4\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n"
	got := sendRequest(t, addr, request)
	assert.Equal(t, "Max clique size = 4\nVertices: 0 1 2 3\n", got)
}

func TestServer_CountCliquesExplicitGraph(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	request := "COUNTCLQ3P GRAPH 6 4\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n"
	got := sendRequest(t, addr, request)
	assert.Equal(t, "Number of cliques (size >= 3): 5\n", got)
}

func TestServer_HamiltonExplicitGraph(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	request := "HAMILTON GRAPH 4 4\n0 1\n1 2\n2 3\n3 0\n"
	got := sendRequest(t, addr, request)
	assert.Equal(t, "Hamiltonian cycle found:\n0 -> 1 -> 2 -> 3 -> 0\n", got)
}

func TestServer_MSTDisconnectedExplicitGraph(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	request := "MST GRAPH 1 3\n0 1 5\n"
	got := sendRequest(t, addr, request)
	assert.Equal(t, "MST: graph is not connected (no spanning tree)\n", got)
}

func TestServer_UnknownAlgorithmReturnsErrLine(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	got := sendRequest(t, addr, "NOPE 0 1 1\n")
	assert.Contains(t, got, "ERR unknown ALGO")
}

func TestServer_AdjacencyPrefixIsPrepended(t *testing.T) {
	srv, addr := newTestServer(t)
	defer srv.Close()

	request := "MST GRAPH 1 2 -p\n0 1 3\n"
	got := sendRequest(t, addr, request)
	assert.Contains(t, got, "Graph: V=2, E=1\n")
	assert.Contains(t, got, "MST total weight: 3\n")
}

func TestServer_CloseUnblocksPendingAccept(t *testing.T) {
	srv, addr := newTestServer(t)

	conn, err := net.DialTimeout("tcp", addr, time.Second)
	require.NoError(t, err)
	conn.Close()

	done := make(chan struct{})
	go func() {
		srv.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}

	srv.Wait()
}
