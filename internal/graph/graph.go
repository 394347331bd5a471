// ============================================================================
// TaskGraph - Container for Tasks and Nested Sub-Graphs
// ============================================================================
//
// Package: internal/graph
// File: graph.go
// Purpose: The TaskGraph entity — start/end sentinels, membership, and the
//          spine-edge bookkeeping that keeps every member reachable from a
//          single source and sink
//
// Spine invariant (spec.md §3, §4.2, §8):
//   Every member task with no declared predecessor other than start has
//   start as a predecessor; every member task with no declared successor
//   other than end has end as a successor. AddTask/AddSubgraph establish
//   this automatically; AddDependencyTo on a member may retire a spine
//   edge it has made redundant, and restores it exactly if the new
//   dependency is rejected as cyclic.
//
// ============================================================================

package graph

import "fmt"

// TaskGraph is a DAG of tasks and nested sub-graphs bracketed by a start
// and end dummy task. TaskGraphs are caller-allocated; the engine only
// ever references them.
type TaskGraph struct {
	start *Task
	end   *Task

	tasks     []*Task      // member tasks, excluding start/end
	subgraphs []*TaskGraph // nested sub-graphs

	parent *TaskGraph // nil if this graph is the root
}

// NewTaskGraph creates an empty graph: just its start and end sentinels,
// joined by a single start -> end edge.
func NewTaskGraph() *TaskGraph {
	g := &TaskGraph{
		start: NewDummyTask(),
		end:   NewDummyTask(),
	}
	addEdge(g.start, g.end)
	return g
}

// Start returns the graph's start sentinel.
func (g *TaskGraph) Start() *Task { return g.start }

// End returns the graph's end sentinel.
func (g *TaskGraph) End() *Task { return g.end }

// Entry implements TaskElement.
func (g *TaskGraph) Entry() *Task { return g.start }

// Exit implements TaskElement.
func (g *TaskGraph) Exit() *Task { return g.end }

// ParentGraph returns the graph this graph is nested under, or nil if it
// is itself the root.
func (g *TaskGraph) ParentGraph() *TaskGraph { return g.parent }

// Tasks returns the graph's direct member tasks, excluding start/end, in
// attachment order.
func (g *TaskGraph) Tasks() []*Task {
	out := make([]*Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

// Subgraphs returns the graph's direct sub-graphs in attachment order.
func (g *TaskGraph) Subgraphs() []*TaskGraph {
	out := make([]*TaskGraph, len(g.subgraphs))
	copy(out, g.subgraphs)
	return out
}

// AddTask attaches t as a member of this graph. t must not already belong
// to any graph.
//
// On success t gains start and end as predecessor/successor respectively;
// on the very first non-sentinel member, the construction-time start ->
// end edge is dropped.
func (g *TaskGraph) AddTask(t *Task) error {
	if t.parent != nil {
		return fmt.Errorf("%w: task already belongs to a graph", ErrParenting)
	}

	if len(g.tasks) == 0 {
		removeEdgesBetween(g.start, g.end)
	}

	addEdge(g.start, t)
	addEdge(t, g.end)

	t.parent = g
	g.tasks = append(g.tasks, t)
	return nil
}

// AddSubgraph attaches sub as a nested child of this graph. sub must not
// already have a parent, and must not be this graph itself.
//
// Only sub's start/end sentinels participate in this graph's edge set —
// AddSubgraph never creates a task-level duplicate parent relationship.
func (g *TaskGraph) AddSubgraph(sub *TaskGraph) error {
	if sub == g {
		return fmt.Errorf("%w: graph cannot be its own sub-graph", ErrParenting)
	}
	if sub.parent != nil {
		return fmt.Errorf("%w: sub-graph already has a parent", ErrParenting)
	}

	if len(g.subgraphs) == 0 {
		removeEdgesBetween(g.start, g.end)
	}

	sub.parent = g
	addEdge(g.start, sub.start)
	addEdge(sub.end, g.end)

	g.subgraphs = append(g.subgraphs, sub)
	return nil
}

// AddDependencyTo declares that elem may not begin until every member of
// this graph has completed — in practice, until this graph's end sentinel,
// which every member reaches, fires. elem may be a *Task or a *TaskGraph.
//
// g and elem must share the same immediate parent graph, including the
// case where g itself has no parent — both are reported as ErrParenting.
// A cyclic dependency leaves the graph exactly as it was and returns
// ErrCycle.
func (g *TaskGraph) AddDependencyTo(elem TaskElement) error {
	parent := g.parent
	if parent == nil {
		return fmt.Errorf("%w: graph has no parent graph", ErrParenting)
	}
	if elemParent(elem) != parent {
		return fmt.Errorf("%w: dependency endpoints do not share a parent graph", ErrParenting)
	}
	if other, ok := elem.(*TaskGraph); ok && other == g {
		return fmt.Errorf("%w: graph cannot depend on itself", ErrParenting)
	}

	return addDependencyFrom(g.end, parent, elem)
}

// allMemberTasks returns every non-sentinel, start, and end task owned by
// this graph and, transitively, by every nested sub-graph. Used by the
// executor to reset satisfiedPredecessors before a run.
func (g *TaskGraph) allMemberTasks() []*Task {
	out := make([]*Task, 0, len(g.tasks)+2)
	out = append(out, g.start)
	out = append(out, g.tasks...)
	out = append(out, g.end)

	for _, sub := range g.subgraphs {
		out = append(out, sub.allMemberTasks()...)
	}

	return out
}

// ResetPredecessorCounts zeroes satisfiedPredecessors for this graph and
// every task it transitively contains. Exported for the executor package;
// graphs are re-executable because every Execute call starts here.
func (g *TaskGraph) ResetPredecessorCounts() {
	for _, t := range g.allMemberTasks() {
		t.resetSatisfied()
	}
}
