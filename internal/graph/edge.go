package graph

import "github.com/ChuLiYu/taskgraph/pkg/taskid"

// ============================================================================
// Dependency Edge
// ============================================================================
//
// An edge is a directed pair (from, to): to may not begin until from has
// returned. Edges are first-class and engine-owned — created on
// declaration, discarded on removal. Parallel edges between the same pair
// are never useful; removeEdgesBetween drops every direct edge from one
// node to the other.
// ============================================================================

type edge struct {
	from *Task
	to   *Task
}

// addEdge creates a single directed edge from -> to and links it into both
// endpoints' edge lists.
func addEdge(from, to *Task) *edge {
	e := &edge{from: from, to: to}
	from.outEdges = append(from.outEdges, e)
	to.inEdges = append(to.inEdges, e)
	return e
}

// removeEdgesBetween removes every direct edge from -> to, reporting
// whether at least one edge was removed.
func removeEdgesBetween(from, to *Task) bool {
	removed := false

	kept := from.outEdges[:0]
	for _, e := range from.outEdges {
		if e.to.id == to.id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	from.outEdges = kept

	kept = to.inEdges[:0]
	for _, e := range to.inEdges {
		if e.from.id == from.id {
			continue
		}
		kept = append(kept, e)
	}
	to.inEdges = kept

	return removed
}

// wouldCycle reports whether adding the edge u -> v would create a cycle,
// i.e. whether u is reachable from v by following out-edges. It performs a
// depth-first traversal starting at v, returning true as soon as u is
// revisited. Complexity is linear in the reachable sub-DAG.
func wouldCycle(u, v *Task) bool {
	if u.id == v.id {
		return true
	}

	visited := make(map[taskid.ID]bool)
	var visit func(t *Task) bool
	visit = func(t *Task) bool {
		if t.id == u.id {
			return true
		}
		if visited[t.id] {
			return false
		}
		visited[t.id] = true

		for _, e := range t.outEdges {
			if visit(e.to) {
				return true
			}
		}
		return false
	}

	return visit(v)
}
