package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ChuLiYu/taskgraph/internal/graph"
	"github.com/ChuLiYu/taskgraph/pkg/rangesplit"
)

// buildSampleGraph constructs the demo workload: total items split into
// workerCount contiguous ranges (pkg/rangesplit), one task per range
// fanning into a single join task. This is the peripheral collaborator
// from spec.md §7 exercised end to end — rangesplit carves the input, the
// graph model expresses the fan-in, the executor runs it.
func buildSampleGraph(total, workerCount int) *graph.TaskGraph {
	g := graph.NewTaskGraph()

	ranges := rangesplit.Split(total, workerCount)
	join := graph.NewTaskWithFunc(func(ctx context.Context) {
		slog.Default().Info("sample workload joined", "ranges", len(ranges))
	})
	if err := g.AddTask(join); err != nil {
		panic(fmt.Sprintf("cli: join task attach failed: %v", err))
	}

	for i, r := range ranges {
		i, r := i, r
		t := graph.NewTaskWithFunc(func(ctx context.Context) {
			slog.Default().Info("sample range processed", "worker", i, "start", r.Start, "end", r.End, "len", r.Len())
		})
		if err := g.AddTask(t); err != nil {
			panic(fmt.Sprintf("cli: range task attach failed: %v", err))
		}
		if err := t.AddDependencyTo(join); err != nil {
			panic(fmt.Sprintf("cli: range -> join dependency failed: %v", err))
		}
	}

	return g
}
