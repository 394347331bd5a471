// ============================================================================
// Range Splitter - Work Partitioning Helper
// ============================================================================
//
// Package: pkg/rangesplit
// File: rangesplit.go
// Purpose: Partitions an integer range into near-equal contiguous chunks
//
// Status: peripheral collaborator, not consumed by graph/pool/executor.
// Callers that want to parallelize a loop over the task-graph engine use
// this to turn a single work item count into one leaf Task per worker.
//
// ============================================================================

// Package rangesplit partitions [0, total) into near-equal contiguous chunks.
package rangesplit

import "fmt"

// Range is a half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split partitions [0, total) into exactly workers contiguous ranges whose
// lengths differ by at most one element. The first (total mod workers)
// ranges are one element longer than the remainder, so the ranges cover
// [0, total) with no gaps or overlaps.
//
// Panics if workers <= 0.
func Split(total, workers int) []Range {
	if workers <= 0 {
		panic(fmt.Sprintf("rangesplit: workers must be positive, got %d", workers))
	}

	ranges := make([]Range, workers)
	base := total / workers
	remainder := total % workers

	cursor := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < remainder {
			size++
		}
		ranges[i] = Range{Start: cursor, End: cursor + size}
		cursor += size
	}

	return ranges
}
