package concurrent_test

import (
	"testing"
	"time"

	"github.com/kpavlov/graphsrv/concurrent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveObject_ProcessesJobsInOrder(t *testing.T) {
	results := make(chan int, 10)
	ao := concurrent.NewActiveObject("test", func(job interface{}) {
		results <- job.(int)
	})

	for i := 0; i < 10; i++ {
		ao.Jobs().Push(i)
	}

	for i := 0; i < 10; i++ {
		select {
		case got := <-results:
			assert.Equal(t, i, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for handler result")
		}
	}
}

func TestActiveObject_RecoversFromHandlerPanic(t *testing.T) {
	processed := make(chan int, 2)
	ao := concurrent.NewActiveObject("panicker", func(job interface{}) {
		n := job.(int)
		if n == 0 {
			panic("boom")
		}
		processed <- n
	})

	ao.Jobs().Push(0)
	ao.Jobs().Push(1)

	select {
	case got := <-processed:
		assert.Equal(t, 1, got, "queue must keep processing jobs after a handler panic")
	case <-time.After(time.Second):
		t.Fatal("active object did not recover from panic and continue")
	}
}

func TestActiveObject_JobsReturnsQueue(t *testing.T) {
	ao := concurrent.NewActiveObject("noop", func(job interface{}) {})
	require.NotNil(t, ao.Jobs())
}
