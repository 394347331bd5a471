package pool

// ============================================================================
// Worker Pool Test File
// Purpose: Verify admission blocking, callback ordering, and graceful close
// ============================================================================

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreatsNonPositiveSizeAsOne(t *testing.T) {
	p := New(0)
	require.NotNil(t, p)
	defer p.Close()

	var ran int32
	err := p.Submit(func(arg interface{}) { atomic.StoreInt32(&ran, 1) }, nil, nil, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return atomic.LoadInt32(&ran) == 1 }, time.Second, time.Millisecond)
}

func TestSubmitRunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 50
	var count int32
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		err := p.Submit(func(arg interface{}) {
			atomic.AddInt32(&count, 1)
		}, nil, func(arg interface{}) {
			wg.Done()
		}, nil)
		require.NoError(t, err)
	}

	wg.Wait()
	assert.EqualValues(t, n, atomic.LoadInt32(&count))
}

// TestSubmitBlocksUntilWorkerFree pins every worker on a task that won't
// return until released, then verifies one further Submit blocks until a
// worker is freed back up.
func TestSubmitBlocksUntilWorkerFree(t *testing.T) {
	p := New(2)
	defer p.Close()

	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)

	block := func(arg interface{}) {
		started.Done()
		<-release
	}

	require.NoError(t, p.Submit(block, nil, nil, nil))
	require.NoError(t, p.Submit(block, nil, nil, nil))
	started.Wait()

	submitted := make(chan struct{})
	go func() {
		_ = p.Submit(func(arg interface{}) {}, nil, nil, nil)
		close(submitted)
	}()

	select {
	case <-submitted:
		t.Fatal("Submit returned before any worker was freed")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("Submit never unblocked after a worker freed up")
	}
}

// TestCallbackRunsBeforeWorkerReuse verifies the callback for job N
// completes before the pool hands that same worker job N+1, for a
// single-worker pool where reuse is forced.
func TestCallbackRunsBeforeWorkerReuse(t *testing.T) {
	p := New(1)
	defer p.Close()

	var order []string
	var mu sync.Mutex
	record := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(2)

	require.NoError(t, p.Submit(func(arg interface{}) {
		record("fn1")
		time.Sleep(10 * time.Millisecond)
	}, nil, func(arg interface{}) {
		record("cb1")
		wg.Done()
	}, nil))

	require.NoError(t, p.Submit(func(arg interface{}) {
		record("fn2")
	}, nil, func(arg interface{}) {
		record("cb2")
		wg.Done()
	}, nil))

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"fn1", "cb1", "fn2", "cb2"}, order)
}

func TestCloseDrainsInFlightWork(t *testing.T) {
	p := New(2)

	var done int32
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit(func(arg interface{}) {
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&done, 1)
		}, nil, nil, nil))
	}

	p.Close()
	assert.EqualValues(t, 5, atomic.LoadInt32(&done))
}

func TestSubmitAfterCloseIsRejected(t *testing.T) {
	p := New(1)
	p.Close()

	err := p.Submit(func(arg interface{}) {}, nil, nil, nil)
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	p := New(1)
	p.Close()
	assert.NotPanics(t, func() { p.Close() })
}
