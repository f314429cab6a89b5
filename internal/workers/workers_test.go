package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (m *countingWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}

	NewWorkers(w1, w2).Run()

	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
}

func TestWorkers_Run_Empty(t *testing.T) {
	// must not panic without workers
	NewWorkers().Run()
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()

	assert.Equal(t, 2, w.runCount)
}
