package model

// Process state constants
const (
	StatePending   = "pending" // not yet arrived
	StateReady     = "ready"   // waiting in the ready queue
	StateRunning   = "running"
	StateCompleted = "completed"
)

// Process represents a single simulated process. Identity, priority, burst
// length and arrival tick are fixed at construction; the remaining fields are
// scheduler bookkeeping mutated tick by tick. Higher Priority means more
// urgent. The simulation runs on a single goroutine, so no locking is needed.
type Process struct {
	ID       string `json:"id"`
	Priority int    `json:"priority"`
	Burst    int    `json:"burst"`
	Arrival  int    `json:"arrival"`

	State      string `json:"state"`
	Remaining  int    `json:"remaining"`
	Turnaround int    `json:"turnaround"`
	Wait       int    `json:"wait"`
	Quantum    int    `json:"quantum"`
}

// NewProcess creates a new process with zeroed counters and its full burst
// still to execute.
func NewProcess(id string, priority, burst, arrival int) *Process {
	return &Process{
		ID:        id,
		Priority:  priority,
		Burst:     burst,
		Arrival:   arrival,
		State:     StatePending,
		Remaining: burst,
	}
}

// Completed reports whether the process has exhausted its burst. A completed
// process may still briefly occupy the running slot until the scheduler reaps
// it on the next arrival-free tick.
func (p *Process) Completed() bool {
	return p.Remaining <= 0
}

// Clone returns a copy of the process so that the caller can mutate it
// without affecting the original instance.
func (p *Process) Clone() *Process {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
