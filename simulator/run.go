package simulator

import (
	"time"

	"github.com/viant/schedly/internal/clock"
	"github.com/viant/schedly/model"
)

// Run state constants
const (
	RunStateRunning   = "running"
	RunStateCompleted = "completed"
	RunStateFailed    = "failed"
)

// Run is the persistable record of one simulation: the workload it executed
// and, once finished, its result.
type Run struct {
	ID         string           `json:"id"`
	State      string           `json:"state"`
	CreatedAt  time.Time        `json:"createdAt"`
	FinishedAt *time.Time       `json:"finishedAt,omitempty"`
	Processes  []*model.Process `json:"processes"`
	Result     *Result          `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// NewRun creates a run record for the supplied workload.
func NewRun(id string, processes []*model.Process) *Run {
	return &Run{
		ID:        id,
		State:     RunStateRunning,
		CreatedAt: clock.Now(),
		Processes: processes,
	}
}

// Complete marks the run as finished with the supplied result.
func (r *Run) Complete(result *Result) {
	now := clock.Now()
	r.FinishedAt = &now
	r.State = RunStateCompleted
	r.Result = result
}

// Fail marks the run as failed.
func (r *Run) Fail(err error) {
	now := clock.Now()
	r.FinishedAt = &now
	r.State = RunStateFailed
	if err != nil {
		r.Error = err.Error()
	}
}
