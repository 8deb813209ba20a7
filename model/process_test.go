package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess(t *testing.T) {
	p := NewProcess("P1", 3, 12, 5)
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, 3, p.Priority)
	assert.Equal(t, 12, p.Burst)
	assert.Equal(t, 5, p.Arrival)
	assert.Equal(t, StatePending, p.State)
	assert.Equal(t, 12, p.Remaining)
	assert.Equal(t, 0, p.Turnaround)
	assert.Equal(t, 0, p.Wait)
	assert.Equal(t, 0, p.Quantum)
	assert.False(t, p.Completed())
}

func TestProcess_Clone(t *testing.T) {
	p := NewProcess("P1", 1, 4, 0)
	clone := p.Clone()
	clone.Remaining = 0
	clone.State = StateCompleted

	assert.Equal(t, 4, p.Remaining)
	assert.Equal(t, StatePending, p.State)
	assert.True(t, clone.Completed())

	var nilProcess *Process
	assert.Nil(t, nilProcess.Clone())
}
