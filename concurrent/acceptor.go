package concurrent

import (
	"net"
	"sync"
)

// ConnHandler processes one accepted connection. It is called on the
// follower goroutine that accepted it, outside the leader-holding critical
// section, so a slow handler never blocks other followers from accepting.
type ConnHandler func(conn net.Conn)

// LeaderFollower runs n acceptor goroutines over a single net.Listener,
// each competing to become "leader" (the one goroutine blocked in Accept)
// while the rest wait as followers; when the leader accepts a connection it
// immediately promotes one follower to leader before handling the
// connection itself. This is a direct translation of the reference server's
// worker_main loop (has_leader guarded by a mutex+condition-variable pair)
// onto net.Listener.Accept, rather than a reinterpretation as, say, a single
// shared accept loop dispatching to a worker pool: callers get exactly n
// long-lived acceptor goroutines, each blocking in Accept in turn.
type LeaderFollower struct {
	listener net.Listener
	handle   ConnHandler

	mu        sync.Mutex
	cond      *sync.Cond
	hasLeader bool
	wg        sync.WaitGroup
}

// NewLeaderFollower constructs a LeaderFollower over listener. Call Start to
// launch its n acceptor goroutines.
func NewLeaderFollower(listener net.Listener, handle ConnHandler) *LeaderFollower {
	lf := &LeaderFollower{
		listener: listener,
		handle:   handle,
	}
	lf.cond = sync.NewCond(&lf.mu)
	return lf
}

// Start launches n acceptor goroutines and returns immediately.
func (lf *LeaderFollower) Start(n int) {
	for i := 0; i < n; i++ {
		lf.wg.Add(1)
		go lf.acceptLoop()
	}
}

// Wait blocks until every acceptor goroutine has returned, which happens
// once the listener is closed and Accept starts failing permanently.
func (lf *LeaderFollower) Wait() {
	lf.wg.Wait()
}

func (lf *LeaderFollower) acceptLoop() {
	defer lf.wg.Done()

	for {
		lf.becomeLeader()

		conn, err := lf.listener.Accept()

		lf.resignLeader()

		if err != nil {
			if isTemporary(err) {
				continue
			}
			return
		}

		lf.handle(conn)
	}
}

func (lf *LeaderFollower) becomeLeader() {
	lf.mu.Lock()
	for lf.hasLeader {
		lf.cond.Wait()
	}
	lf.hasLeader = true
	lf.mu.Unlock()
}

func (lf *LeaderFollower) resignLeader() {
	lf.mu.Lock()
	lf.hasLeader = false
	lf.cond.Signal()
	lf.mu.Unlock()
}

func isTemporary(err error) bool {
	type temporary interface {
		Temporary() bool
	}
	te, ok := err.(temporary)
	return ok && te.Temporary()
}
