package executor

import "errors"

// ErrAlreadyRunning indicates Execute was called on an Engine that is
// already executing a graph. One Engine runs one graph at a time; submit
// independent graphs to independent Engines to run them concurrently.
var ErrAlreadyRunning = errors.New("engine is already executing a graph")
