package workers

import "errors"

// ErrQueueClosed is returned by Enqueue after shutdown has started.
var ErrQueueClosed = errors.New("batch queue is closed")
