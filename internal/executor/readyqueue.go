// ============================================================================
// Ready Queue - Blocking FIFO of Dispatchable Tasks
// ============================================================================
//
// Package: internal/executor
// File: readyqueue.go
// Purpose: The thread-safe FIFO ready queue spec.md §4.3 describes: a
//          single dedicated goroutine pops from it and hands work to the
//          pool, while completion callbacks only ever push — they never
//          block on pool.Submit themselves. This is what decouples "a
//          successor became ready" (may happen on a worker goroutine,
//          inside that worker's own completion callback) from "submit it
//          to the pool" (which must block until a worker is free), so a
//          task's own callback can never wait on itself for the worker it
//          is still occupying.
//
// Grounded on internal/pool.readyQueue's mutex-guarded slice shape, with
// a sync.Cond added for the blocking pop this queue additionally needs.
//
// ============================================================================

package executor

import (
	"sync"

	"github.com/ChuLiYu/taskgraph/internal/graph"
)

// readyQueue is a FIFO of tasks that have become dispatchable. pop blocks
// until a task is available or the queue is closed.
type readyQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	q      []*graph.Task
	closed bool
}

func newReadyQueue() *readyQueue {
	rq := &readyQueue{}
	rq.cond = sync.NewCond(&rq.mu)
	return rq
}

// push appends t to the queue and wakes the consumer loop. Never blocks —
// safe to call from a pool worker's completion callback.
func (rq *readyQueue) push(t *graph.Task) {
	rq.mu.Lock()
	rq.q = append(rq.q, t)
	rq.mu.Unlock()
	rq.cond.Signal()
}

// pop blocks until a task is available, returning (task, true), or until
// the queue is closed with nothing left to drain, returning (nil, false).
func (rq *readyQueue) pop() (*graph.Task, bool) {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	for len(rq.q) == 0 && !rq.closed {
		rq.cond.Wait()
	}
	if len(rq.q) == 0 {
		return nil, false
	}
	t := rq.q[0]
	rq.q = rq.q[1:]
	return t, true
}

// close marks the queue closed and wakes any blocked pop so the consumer
// loop can observe it and exit once the queue drains.
func (rq *readyQueue) close() {
	rq.mu.Lock()
	rq.closed = true
	rq.mu.Unlock()
	rq.cond.Broadcast()
}
