package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSampleGraphFansIntoSingleJoin(t *testing.T) {
	g := buildSampleGraph(37, 4)

	tasks := g.Tasks()
	require.Len(t, tasks, 5, "4 range tasks plus 1 join task")

	var join *int
	for i, task := range tasks {
		if task.InDegree() >= 4 {
			idx := i
			join = &idx
		}
	}
	require.NotNil(t, join, "one task should have every range task as a predecessor")
	assert.Equal(t, 4, tasks[*join].InDegree())
}

func TestBuildSampleGraphHandlesZeroItems(t *testing.T) {
	assert.NotPanics(t, func() {
		buildSampleGraph(0, 4)
	})
}
