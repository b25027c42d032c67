package concurrent

import (
	"log"

	"golang.org/x/xerrors"
)

// Handler processes one job popped from an ActiveObject's queue. A panic
// inside Handler is recovered and logged by the Active Object's run loop, so
// one bad job cannot take down the worker goroutine feeding its queue.
type Handler func(job interface{})

// ActiveObject binds one goroutine to one Queue and one Handler: jobs pushed
// to Jobs() are handled strictly in FIFO order by a single, never-joined
// goroutine, giving every algorithm its own serialized execution pipeline.
type ActiveObject struct {
	name   string
	jobs   *Queue
	handle Handler
}

// NewActiveObject creates and starts an ActiveObject named name, running
// handle on every job pushed to its queue. The worker goroutine is started
// detached: it runs until the process exits, matching the reference
// server's pthread_detach(ao_thread_main) lifecycle.
func NewActiveObject(name string, handle Handler) *ActiveObject {
	ao := &ActiveObject{
		name:   name,
		jobs:   NewQueue(),
		handle: handle,
	}
	go ao.run()
	return ao
}

// Jobs returns the queue jobs are pushed onto for this Active Object.
func (ao *ActiveObject) Jobs() *Queue {
	return ao.jobs
}

func (ao *ActiveObject) run() {
	for {
		job := ao.jobs.Pop()
		ao.dispatch(job)
	}
}

func (ao *ActiveObject) dispatch(job interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%v", xerrors.Errorf("active object %s: recovered from panic: %v", ao.name, r))
		}
	}()
	ao.handle(job)
}
