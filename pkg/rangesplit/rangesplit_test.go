package rangesplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCoversWholeRangeWithNoGapsOrOverlaps(t *testing.T) {
	ranges := Split(100, 7)
	require := assert.New(t)

	require.Len(ranges, 7)
	require.Equal(0, ranges[0].Start)
	for i := 1; i < len(ranges); i++ {
		require.Equal(ranges[i-1].End, ranges[i].Start, "range %d should start where range %d ended", i, i-1)
	}
	require.Equal(100, ranges[len(ranges)-1].End)
}

func TestSplitBalancesRemainderAcrossLeadingRanges(t *testing.T) {
	ranges := Split(10, 3)
	assert.Equal(t, 4, ranges[0].Len())
	assert.Equal(t, 3, ranges[1].Len())
	assert.Equal(t, 3, ranges[2].Len())
}

func TestSplitHandlesZeroTotal(t *testing.T) {
	ranges := Split(0, 4)
	assert.Len(t, ranges, 4)
	for _, r := range ranges {
		assert.Equal(t, 0, r.Len())
	}
}

func TestSplitPanicsOnNonPositiveWorkers(t *testing.T) {
	assert.Panics(t, func() { Split(10, 0) })
	assert.Panics(t, func() { Split(10, -1) })
}
