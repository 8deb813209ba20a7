package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/viant/schedly/model"
	"github.com/viant/schedly/policy"
	"github.com/viant/schedly/service/event"
	"github.com/viant/schedly/tracing"
)

// Engine owns the single running slot and the ready queue, and applies the
// per-tick scheduling decisions: arrival admission and preemption, quantum
// expiry, completion and counter updates. It is driven by the simulator and
// is not safe for concurrent use.
type Engine struct {
	quantum     int
	runID       string
	queue       *Queue
	running     *model.Process
	events      *event.Publisher[Activity]
	preemptions int
}

// Option customises engine construction.
type Option func(e *Engine)

// WithQuantum sets the round-robin time quantum.
func WithQuantum(quantum int) Option {
	return func(e *Engine) {
		e.quantum = quantum
	}
}

// WithRunID stamps published events with the owning simulation run.
func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
	}
}

// WithPublisher sets the activity event publisher; a nil publisher disables
// event publication.
func WithPublisher(publisher *event.Publisher[Activity]) Option {
	return func(e *Engine) {
		e.events = publisher
	}
}

// New creates a new step engine.
func New(options ...Option) *Engine {
	e := &Engine{quantum: policy.DefaultQuantum}
	for _, option := range options {
		option(e)
	}
	e.queue = NewQueue(e.quantum)
	return e
}

// HandleArrival admits a process whose arrival tick is the current tick.
// An empty running slot is taken directly, bypassing the queue. A higher
// priority arrival preempts the running process, which either rejoins the
// queue per its quantum or, when it already finished its burst and is merely
// awaiting reaping, is discarded. Equal or lower priority arrivals queue up.
func (e *Engine) HandleArrival(ctx context.Context, p *model.Process, tick int) {
	switch {
	case e.running == nil:
		e.running = p
		p.State = model.StateRunning
		e.publish(ctx, Activity{Type: EventAdmitted, Tick: tick, ProcessID: p.ID})
	case p.Priority > e.running.Priority:
		displaced := e.running
		e.running = p
		p.State = model.StateRunning
		if displaced.Completed() {
			displaced.State = model.StateCompleted
			e.publish(ctx, Activity{Type: EventCompleted, Tick: tick, ProcessID: displaced.ID})
			return
		}
		e.queue.Insert(displaced)
		e.preemptions++
		e.publish(ctx, Activity{Type: EventContextSwitch, Tick: tick, ProcessID: p.ID, DisplacedID: displaced.ID})
	default:
		e.queue.Insert(p)
	}
}

// CheckQuantumOrCompletion inspects the running process on ticks with no
// arrival. A finished process is reaped and replaced from the queue; one that
// exhausted its quantum rejoins the queue (its quantum resets on insertion)
// before the head is promoted. Otherwise the slot is left untouched.
func (e *Engine) CheckQuantumOrCompletion(ctx context.Context, tick int) {
	if e.running == nil {
		return
	}
	if e.running.Remaining == 0 {
		finished := e.running
		finished.State = model.StateCompleted
		e.running = nil
		e.promote()
		e.publish(ctx, Activity{Type: EventCompleted, Tick: tick, ProcessID: finished.ID})
		return
	}
	if e.running.Quantum == e.quantum {
		expired := e.running
		e.running = nil
		e.queue.Insert(expired)
		e.promote()
		e.publish(ctx, Activity{Type: EventQuantumExpired, Tick: tick, ProcessID: expired.ID})
	}
}

// Advance applies the per-tick counter updates: the running process consumes
// one tick of CPU, every queued process accrues wait and turnaround time.
// A finished process still occupying the slot accrues nothing - it is only
// awaiting reaping.
func (e *Engine) Advance() {
	if e.running != nil {
		switch {
		case e.running.Remaining < 0:
			panic(fmt.Sprintf("scheduler: negative remaining time for process %v", e.running.ID))
		case e.running.Remaining == 0:
			// finished but not yet reaped
		default:
			e.running.Quantum++
			e.running.Remaining--
			e.running.Turnaround++
		}
	}
	e.queue.Each(func(p *model.Process) {
		p.Wait++
		p.Turnaround++
	})
}

// Running returns the process occupying the running slot, or nil.
func (e *Engine) Running() *model.Process {
	return e.running
}

// Queue returns the ready queue.
func (e *Engine) Queue() *Queue {
	return e.queue
}

// Preemptions returns how many times a running process was displaced by a
// higher-priority arrival.
func (e *Engine) Preemptions() int {
	return e.preemptions
}

func (e *Engine) promote() {
	if next := e.queue.PopFront(); next != nil {
		next.State = model.StateRunning
		e.running = next
	}
}

func (e *Engine) publish(ctx context.Context, activity Activity) {
	if span, ok := tracing.SpanFromContext(ctx); ok {
		span.AddEvent(activity.Type, map[string]string{
			"processId": activity.ProcessID,
			"tick":      strconv.Itoa(activity.Tick),
		})
	}
	if e.events == nil {
		return
	}
	evt := event.NewEvent(&event.Context{
		RunID:     e.runID,
		ProcessID: activity.ProcessID,
		EventType: activity.Type,
		Tick:      activity.Tick,
	}, activity)
	if err := e.events.Publish(ctx, evt); err != nil {
		log.Printf("error publishing scheduler event: %v", err)
	}
}
