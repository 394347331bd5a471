package pool

// TaskFunc is the work a worker runs. The pool is intentionally
// language-neutral about what arg is — an opaque value the caller alone
// interprets, mirroring the original (fn, *void) pool contract (spec.md
// §9). A higher-level caller (internal/executor) boxes a *graph.Task
// behind arg rather than a raw closure, so the pool itself stays ignorant
// of the graph model entirely.
type TaskFunc func(arg interface{})

// CallbackFunc runs on the same worker goroutine immediately after
// TaskFunc returns, before the worker becomes eligible for reuse. The
// worker's own slot is not released until the callback returns, so a
// callback that itself calls Submit blocks until some other worker is free
// (on a single-worker pool it never returns); internal/executor's callback
// therefore only pushes onto its ready queue.
type CallbackFunc func(arg interface{})

type job struct {
	fn    TaskFunc
	arg   interface{}
	cb    CallbackFunc
	cbArg interface{}
}
