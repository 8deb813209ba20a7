package scheduler

// Scheduler event types published for observability. They carry no scheduling
// semantics of their own.
const (
	EventAdmitted       = "admitted"       // process took an empty running slot
	EventContextSwitch  = "contextSwitch"  // running process displaced by a higher-priority arrival
	EventQuantumExpired = "quantumExpired" // running process exhausted its slice
	EventCompleted      = "completed"      // process finished its burst
)

// Activity describes a single scheduler transition at a given tick.
type Activity struct {
	Type        string `json:"type"`
	Tick        int    `json:"tick"`
	ProcessID   string `json:"processId"`
	DisplacedID string `json:"displacedId,omitempty"`
}
