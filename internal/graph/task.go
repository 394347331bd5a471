// ============================================================================
// Task - Unit of Work in a Task Graph
// ============================================================================
//
// Package: internal/graph
// File: task.go
// Purpose: The Task entity — identity, dependency edges, and the
//          dependency-declaration dance shared with TaskGraph
//
// Invariants (spec.md §3):
//   - A task belongs to at most one TaskGraph at a time.
//   - satisfiedPredecessors <= len(inEdges) always, equal exactly when the
//     task becomes ready.
//   - Identity for comparison is the task id, never the pointer address.
//
// ============================================================================

package graph

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ChuLiYu/taskgraph/pkg/taskid"
)

// ExecuteFunc is user code run by a non-dummy Task. The context carries no
// cancellation signal of the engine's own making (spec.md Non-goals: no
// task cancellation) — it is threaded through purely because blocking work
// idiomatically accepts one.
type ExecuteFunc func(ctx context.Context)

// Task is a unit of work with identity, optional user code, and dependency
// edges to and from other tasks. Tasks are caller-allocated; the engine
// never takes ownership, only references.
type Task struct {
	id      taskid.ID
	dummy   bool
	execute ExecuteFunc

	inEdges  []*edge // dependencies terminating at this task
	outEdges []*edge // dependencies originating here

	satisfiedPredecessors int32 // execution-only, reset before every run

	parent *TaskGraph
}

// NewTask creates a plain task with no user code. Call SetExecute before
// executing it, or leave it as a no-op join point.
func NewTask() *Task {
	return &Task{id: taskid.Next()}
}

// NewDummyTask creates a sentinel task that never runs user code. Used
// internally for each TaskGraph's start/end, exposed for callers that want
// their own join points.
func NewDummyTask() *Task {
	return &Task{id: taskid.Next(), dummy: true}
}

// NewTaskWithFunc creates a task that runs fn when dispatched.
func NewTaskWithFunc(fn ExecuteFunc) *Task {
	return &Task{id: taskid.Next(), execute: fn}
}

// ID returns the task's process-wide unique identifier.
func (t *Task) ID() taskid.ID { return t.id }

// IsDummy reports whether this task is a start/end sentinel that carries
// no user code.
func (t *Task) IsDummy() bool { return t.dummy }

// SetExecute assigns (or replaces) the function run when this task is
// dispatched. Safe to call before the task is attached to a graph.
func (t *Task) SetExecute(fn ExecuteFunc) {
	t.execute = fn
}

// ParentGraph returns the TaskGraph this task is attached to, or nil.
func (t *Task) ParentGraph() *TaskGraph {
	return t.parent
}

// Entry implements TaskElement: a bare task is its own entry point.
func (t *Task) Entry() *Task { return t }

// Exit implements TaskElement: a bare task is its own exit point.
func (t *Task) Exit() *Task { return t }

// InDegree returns the number of direct predecessors this task currently
// has.
func (t *Task) InDegree() int { return len(t.inEdges) }

// Successors returns the tasks this task has a direct out-edge to. The
// returned slice is a snapshot; mutating it does not affect the graph.
func (t *Task) Successors() []*Task {
	out := make([]*Task, len(t.outEdges))
	for i, e := range t.outEdges {
		out[i] = e.to
	}
	return out
}

// Run invokes the task's user function, if any. Dummy tasks and tasks
// constructed without SetExecute are no-ops.
func (t *Task) Run(ctx context.Context) {
	if t.dummy || t.execute == nil {
		return
	}
	t.execute(ctx)
}

// resetSatisfied zeroes the predecessor counter ahead of a fresh Execute.
// Graphs are re-executable because of this reset (spec.md §9).
func (t *Task) resetSatisfied() {
	atomic.StoreInt32(&t.satisfiedPredecessors, 0)
}

// Satisfy atomically records one more satisfied predecessor and reports
// whether this task is now ready (every predecessor accounted for). Safe
// to call concurrently from multiple completion callbacks targeting this
// same task — this is the executor's increment-and-compare step
// (spec.md §4.3), and the only place satisfiedPredecessors is touched
// outside of a reset.
func (t *Task) Satisfy() (ready bool) {
	n := atomic.AddInt32(&t.satisfiedPredecessors, 1)
	return int(n) == len(t.inEdges)
}

// AddDependencyTo declares that elem may not begin until this task has
// returned. elem may be a *Task or a *TaskGraph (whose start sentinel then
// plays the role of the dependency's target).
//
// this and elem must share the same immediate parent graph, including the
// case where this task has no parent at all — both are reported as
// ErrParenting.
//
// If the new edge would create a cycle, the graph is restored to exactly
// its pre-call edge set and ErrCycle is returned.
func (t *Task) AddDependencyTo(elem TaskElement) error {
	parent := t.parent
	if parent == nil {
		return fmt.Errorf("%w: task has no parent graph", ErrParenting)
	}
	if elemParent(elem) != parent {
		return fmt.Errorf("%w: dependency endpoints do not share a parent graph", ErrParenting)
	}

	return addDependencyFrom(t, parent, elem)
}

// addDependencyFrom implements the "remove spine edges, add the new edge,
// roll back on cycle" dance described in spec.md §4.2. source is either a
// bare task (Task.AddDependencyTo) or a graph's end sentinel
// (TaskGraph.AddDependencyTo) — the dance is identical either way.
func addDependencyFrom(source *Task, parent *TaskGraph, elem TaskElement) error {
	target := elem.Entry()

	removeEdgesBetween(source, target)
	foundTe := removeEdgesBetween(source, parent.end)
	foundSt := removeEdgesBetween(parent.start, target)

	addEdge(source, target)

	if wouldCycle(source, target) {
		removeEdgesBetween(source, target)
		if foundTe {
			addEdge(source, parent.end)
		}
		if foundSt {
			addEdge(parent.start, target)
		}
		return fmt.Errorf("%w: task %d -> task %d", ErrCycle, source.id, target.id)
	}

	return nil
}

// elemParent returns the immediate parent graph of a TaskElement, or nil
// if it has none.
func elemParent(elem TaskElement) *TaskGraph {
	switch v := elem.(type) {
	case *Task:
		return v.parent
	case *TaskGraph:
		return v.parent
	default:
		return nil
	}
}
