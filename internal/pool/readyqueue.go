package pool

import "sync"

// readyQueue is the mutex-protected FIFO of idle workers. Its length is
// always kept equal to the number of tokens currently sitting in the
// pool's counting semaphore — every push is paired with a semaphore
// release, every pop with a semaphore acquire (spec.md §4.1: "two counting
// semaphores and a ready-queue mutex form the whole protocol").
type readyQueue struct {
	mu sync.Mutex
	q  []*worker
}

func (r *readyQueue) push(w *worker) {
	r.mu.Lock()
	r.q = append(r.q, w)
	r.mu.Unlock()
}

func (r *readyQueue) pop() *worker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.q) == 0 {
		return nil
	}
	w := r.q[0]
	r.q = r.q[1:]
	return w
}
