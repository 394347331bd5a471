package graph

// TaskElement is the abstraction shared by Task and TaskGraph: both can
// appear as either endpoint of a dependency, and both can be asked for the
// sentinel task that represents "my entry point" and "my exit point".
//
// A bare Task answers both questions with itself. A TaskGraph answers with
// its own start/end dummy tasks, so a dependency declared against a
// sub-graph is really declared against that sub-graph's sentinels — the
// only way cycles across graph boundaries stay visible to the acyclicity
// check (spec.md §9, "Polymorphism over Task | TaskGraph").
type TaskElement interface {
	// Entry returns the task that stands in for this element's source.
	Entry() *Task
	// Exit returns the task that stands in for this element's sink.
	Exit() *Task
}
