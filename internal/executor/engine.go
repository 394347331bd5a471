// ============================================================================
// Engine - Dataflow Scheduler over a Task Graph
// ============================================================================
//
// Package: internal/executor
// File: engine.go
// Purpose: Walk a graph.TaskGraph to completion by dispatching tasks to a
//          pool.Pool as their predecessors finish, per the
//          completion-callback-driven scheduling model (spec.md §4.3) —
//          never the join-per-predecessor variant the original source's
//          executeTaskGraph used.
//
// Grounded on the teacher's internal/controller.Controller: the Config
// struct, slog-based logging, and New/NewDefault/Close lifecycle shape are
// carried over directly. The four concurrent dispatch/result/timeout/
// snapshot loops are not — this system has exactly one driving loop: a
// dedicated goroutine that pops the ready queue (readyqueue.go) and
// submits to the pool. Completion callbacks, which run on pool worker
// goroutines, only ever push newly-ready successors onto that queue —
// they never call pool.Submit themselves, since a worker blocked inside
// its own completion callback waiting on pool.Submit can never be the
// worker that frees up to unblock it.
//
// ============================================================================

package executor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ChuLiYu/taskgraph/internal/graph"
	"github.com/ChuLiYu/taskgraph/internal/pool"
)

// Observer receives scheduling events for metrics collection. A nil
// Observer (the default) disables all instrumentation; internal/metrics
// provides the Prometheus-backed implementation, wired in by internal/cli's
// run command.
type Observer interface {
	GraphStarted()
	GraphFinished(d time.Duration)
	TaskCompleted(d time.Duration)
}

// Config describes an Engine's worker count. No constructor accepts it:
// New and NewDefault take the worker count directly, and the zero value is
// not meaningful for WorkerCount.
type Config struct {
	WorkerCount int
}

// Engine runs one graph.TaskGraph to completion at a time, fanning its
// tasks out across a fixed-size pool.Pool as they become ready.
type Engine struct {
	pool     *pool.Pool
	observer Observer

	mu      sync.Mutex
	running bool
}

// New creates an Engine backed by a pool of n workers.
func New(n int) *Engine {
	return &Engine{pool: pool.New(n)}
}

// NewDefault creates an Engine sized to the host's CPU count, the same
// default pool.NewDefault uses.
func NewDefault() *Engine {
	return &Engine{pool: pool.NewDefault()}
}

// SetObserver installs o to receive scheduling events for every
// subsequent Execute call. Passing nil disables instrumentation.
func (e *Engine) SetObserver(o Observer) {
	e.mu.Lock()
	e.observer = o
	e.mu.Unlock()
}

// Close stops the Engine's pool, waiting for any task currently running to
// finish. No Execute call may be in progress when Close is called.
func (e *Engine) Close() {
	e.pool.Close()
}

// Execute runs root to completion: every task reachable from root.Start()
// runs exactly once, in an order consistent with its declared
// dependencies, and Execute returns once root.End() has run. Running the
// same graph twice (sequentially) is supported — each call resets
// predecessor counts before dispatching.
//
// Execute returns ErrAlreadyRunning if this Engine is already executing a
// graph; run independent graphs on independent Engines instead.
func (e *Engine) Execute(root *graph.TaskGraph) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return ErrAlreadyRunning
	}
	e.running = true
	observer := e.observer
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	started := time.Now()
	if observer != nil {
		observer.GraphStarted()
	}

	root.ResetPredecessorCounts()

	ctx := context.Background()
	done := make(chan struct{})
	endID := root.End().ID()
	rq := newReadyQueue()

	// onComplete runs on whichever goroutine finished t: the consumer loop
	// below for a dummy task, or a pool worker for a real one. It only
	// ever pushes — never submits — so it can never block on a worker
	// slot it is itself occupying.
	onComplete := func(t *graph.Task, taskStarted time.Time) {
		if observer != nil {
			observer.TaskCompleted(time.Since(taskStarted))
		}

		if t.ID() == endID {
			close(done)
			return
		}

		for _, succ := range t.Successors() {
			if succ.Satisfy() {
				rq.push(succ)
			}
		}
	}

	submit := func(t *graph.Task) {
		ts := time.Now()
		err := e.pool.Submit(
			func(arg interface{}) {
				arg.(*graph.Task).Run(ctx)
			},
			t,
			func(arg interface{}) {
				onComplete(arg.(*graph.Task), ts)
			},
			t,
		)
		if err != nil {
			slog.Default().Error("dispatch failed, pool already closed", "task_id", t.ID(), "error", err)
		}
	}

	// The consumer loop is the executor thread spec.md §4.3 describes:
	// it blocks on the ready queue, runs dummy tasks inline (they never
	// consume a pool slot), and submits everything else to the pool.
	var consumer sync.WaitGroup
	consumer.Add(1)
	go func() {
		defer consumer.Done()
		for {
			t, ok := rq.pop()
			if !ok {
				return
			}
			if t.IsDummy() {
				ts := time.Now()
				t.Run(ctx)
				onComplete(t, ts)
				continue
			}
			submit(t)
		}
	}()

	rq.push(root.Start())
	<-done
	rq.close()
	consumer.Wait()

	if observer != nil {
		observer.GraphFinished(time.Since(started))
	}
	return nil
}
