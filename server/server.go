// Package server wires the protocol and concurrent packages into a running
// graph-computation service: a Leader-Follower acceptor pool feeding five
// per-algorithm Active Objects and one sender Active Object, built once as
// an explicit Server value rather than package-level globals.
package server

import (
	"bufio"
	"log"
	"net"

	"github.com/hashicorp/go-multierror"

	"github.com/kpavlov/graphsrv/algorithms"
	"github.com/kpavlov/graphsrv/concurrent"
	"github.com/kpavlov/graphsrv/protocol"
)

// Server owns the listening socket, the Leader-Follower acceptor pool, and
// the six Active Objects (one per algorithm plus the sender) that process
// every request this process ever handles.
type Server struct {
	listener net.Listener
	acceptor *concurrent.LeaderFollower

	sender *concurrent.ActiveObject
	algos  map[algorithms.AlgoKind]*concurrent.ActiveObject
}

// New builds a Server listening on addr with nthreads acceptor goroutines.
// It starts the sender, the five algorithm Active Objects, and the acceptor
// pool before returning; the caller then only needs Wait.
func New(addr string, nthreads int) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		listener: listener,
		algos:    make(map[algorithms.AlgoKind]*concurrent.ActiveObject),
	}

	s.sender = concurrent.NewActiveObject("SENDER", s.handleSend)
	for _, kind := range []algorithms.AlgoKind{
		algorithms.AlgoEuler,
		algorithms.AlgoMST,
		algorithms.AlgoMaxClique,
		algorithms.AlgoCountClq3P,
		algorithms.AlgoHamilton,
	} {
		strategy := algorithms.MakeStrategy(kind)
		s.algos[kind] = concurrent.NewActiveObject(string(kind)+"_AO", s.makeAlgoHandler(strategy))
	}

	s.acceptor = concurrent.NewLeaderFollower(listener, s.acceptConnection)
	s.acceptor.Start(nthreads)

	return s, nil
}

// Wait blocks until every acceptor goroutine has exited, which happens once
// Close has been called and the listener has stopped accepting.
func (s *Server) Wait() {
	s.acceptor.Wait()
}

// Close shuts down the listener, unblocking every acceptor goroutine that
// was parked in Accept; the resulting Accept failures end those goroutines
// and are not reported. The returned error is the listener's close error,
// if any, collected into a multierror.
func (s *Server) Close() error {
	var result *multierror.Error
	if err := s.listener.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (s *Server) acceptConnection(conn net.Conn) {
	r := bufio.NewReader(conn)

	req, err := protocol.ParseRequest(conn, r)
	if err != nil {
		s.rejectConnection(conn, err)
		return
	}

	ao, ok := s.algos[req.Algo]
	if !ok {
		// ParseRequest already validates against the known algorithm set;
		// this branch exists only as a defensive backstop.
		conn.Close()
		return
	}
	ao.Jobs().Push(req)
}

func (s *Server) rejectConnection(conn net.Conn, err error) {
	defer conn.Close()

	var headerErr *protocol.HeaderError
	if ok := asHeaderError(err, &headerErr); ok {
		if _, writeErr := conn.Write([]byte(headerErr.Line)); writeErr != nil {
			log.Printf("server: write error response: %v", writeErr)
		}
		return
	}
	log.Printf("server: malformed request: %v", err)
}

func asHeaderError(err error, target **protocol.HeaderError) bool {
	he, ok := err.(*protocol.HeaderError)
	if ok {
		*target = he
	}
	return ok
}

func (s *Server) makeAlgoHandler(strategy algorithms.Strategy) concurrent.Handler {
	return func(job interface{}) {
		req := job.(*protocol.Request)
		body, err := strategy.Execute(req.Graph)
		if err != nil {
			log.Printf("server: %s: %v", strategy.Name(), err)
			req.Conn.Close()
			return
		}

		s.sender.Jobs().Push(&protocol.SendTask{
			Conn: req.Conn,
			Body: protocol.FormatResponse(req.Prefix, body),
		})
	}
}

func (s *Server) handleSend(job interface{}) {
	task := job.(*protocol.SendTask)
	defer task.Conn.Close()

	if _, err := writeAll(task.Conn, []byte(task.Body)); err != nil {
		log.Printf("server: write response: %v", err)
	}
}

func writeAll(conn net.Conn, data []byte) (int, error) {
	total := 0
	for total < len(data) {
		n, err := conn.Write(data[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
