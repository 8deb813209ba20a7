package simulator

// TimeSlice is a contiguous stretch of ticks during which one process
// occupied the CPU; Stop is exclusive.
type TimeSlice struct {
	ProcessID string `json:"processId"`
	Start     int    `json:"start"`
	Stop      int    `json:"stop"`
}

// Outcome is the final accounting for one process, reported in workload
// order. Completed is false when the process was still running or queued at
// the horizon.
type Outcome struct {
	ID         string `json:"id"`
	Priority   int    `json:"priority"`
	Burst      int    `json:"burst"`
	Arrival    int    `json:"arrival"`
	Wait       int    `json:"wait"`
	Turnaround int    `json:"turnaround"`
	Completed  bool   `json:"completed"`
}

// Result aggregates the outcome of a simulation run.
type Result struct {
	Outcomes      []Outcome   `json:"outcomes"`
	Gantt         []TimeSlice `json:"gantt,omitempty"`
	Preemptions   int         `json:"preemptions"`
	AvgWait       float64     `json:"avgWait"`
	AvgTurnaround float64     `json:"avgTurnaround"`
}
