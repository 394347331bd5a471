package graph

import "errors"

// ============================================================================
// Error Definitions
// ============================================================================

var (
	// ErrCycle indicates that a dependency would have introduced a cycle.
	// The caller's graph is left exactly as it was before the call.
	ErrCycle = errors.New("dependency would introduce a cycle")

	// ErrParenting indicates a violated ownership invariant: a task or
	// sub-graph already attached elsewhere, a dependency whose endpoints
	// do not share an immediate parent, or a parentless element attempting
	// to declare a dependency.
	ErrParenting = errors.New("invalid task/graph parenting")
)
