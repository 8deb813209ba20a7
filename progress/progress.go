package progress

import (
	"context"
	"sync"
	"time"
)

// Counts captures how many processes are in each lifecycle state at a given
// tick.
type Counts struct {
	Pending   int
	Ready     int
	Running   int
	Completed int
}

// Progress keeps the latest per-tick process counts for a simulation run.
// It is safe for concurrent use.
type Progress struct {
	// Identification – informative only, filled when the run starts.
	RunID     string
	StartedAt time.Time

	// Latest observation – modified via Observe().
	Tick   int
	Counts Counts

	sync.Mutex
	onChange func(Progress)
}

// Observe records the process counts for the given tick. If an onChange
// callback has been registered it is invoked with a copy of the updated
// tracker outside the critical section so that the callback can perform slow
// operations (e.g. JSON encoding, I/O) without blocking the simulation loop.
func (p *Progress) Observe(tick int, counts Counts) {
	if p == nil {
		return
	}

	p.Lock()
	p.Tick = tick
	p.Counts = counts
	snapshot := *p
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the current tracker state.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return *p
}

// OnChange registers a callback that is invoked after every Observe. Passing
// nil disables the callback. Only one callback can be active; subsequent
// calls overwrite the previous value.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both. The caller may optionally pass an onChange
// callback that will be invoked after every observation.
func WithNewTracker(ctx context.Context, runID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx. The second return
// value is false when the context carries no tracker.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// ObserveCtx is a helper that looks up the tracker in ctx (if any) and
// records the supplied observation.
func ObserveCtx(ctx context.Context, tick int, counts Counts) {
	if tr, ok := FromContext(ctx); ok {
		tr.Observe(tick, counts)
	}
}
