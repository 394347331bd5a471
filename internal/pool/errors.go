package pool

import "errors"

// ErrPoolClosed indicates Submit was called after Close, or raced with it.
var ErrPoolClosed = errors.New("worker pool is closed")
