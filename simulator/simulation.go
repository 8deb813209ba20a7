// Package simulator drives the scheduling engine over a fixed discrete time
// horizon and assembles the per-process outcome of a run.
package simulator

import (
	"context"

	"github.com/viant/schedly/model"
	"github.com/viant/schedly/policy"
	"github.com/viant/schedly/progress"
	"github.com/viant/schedly/scheduler"
	"github.com/viant/schedly/service/event"
)

// Simulation executes a workload tick by tick. Each tick: every process whose
// arrival time equals the tick is handed to the engine in workload order; when
// no process arrived, the running process is checked for completion or quantum
// expiry; finally all active counters advance. Processes still unfinished at
// the horizon simply stop accumulating counters.
type Simulation struct {
	runID     string
	policy    *policy.Policy
	publisher *event.Publisher[scheduler.Activity]
	processes []*model.Process
	gantt     []TimeSlice
}

// Option customises a simulation.
type Option func(s *Simulation)

// WithPolicy sets the simulation parameters, overriding any policy carried by
// the run context.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Simulation) {
		s.policy = p
	}
}

// WithRunID associates the simulation with a persisted run.
func WithRunID(id string) Option {
	return func(s *Simulation) {
		s.runID = id
	}
}

// WithPublisher sets the scheduler activity publisher.
func WithPublisher(publisher *event.Publisher[scheduler.Activity]) Option {
	return func(s *Simulation) {
		s.publisher = publisher
	}
}

// New creates a simulation over the supplied processes. The slice order is
// significant: simultaneous arrivals are admitted in this order.
func New(processes []*model.Process, options ...Option) *Simulation {
	s := &Simulation{processes: processes}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run executes the simulation to the horizon and returns the result. The
// effective policy is resolved in order: WithPolicy option, policy attached
// to ctx, package defaults. The context is only consulted between ticks;
// cancelling it abandons the run.
func (s *Simulation) Run(ctx context.Context) (*Result, error) {
	pol := s.policy
	if pol == nil {
		pol = policy.FromContext(ctx)
	}
	if pol == nil {
		pol = policy.Default()
	}
	if err := pol.Validate(); err != nil {
		return nil, err
	}

	engine := scheduler.New(
		scheduler.WithQuantum(pol.Quantum),
		scheduler.WithRunID(s.runID),
		scheduler.WithPublisher(s.publisher),
	)

	for tick := 0; tick < pol.Horizon; tick++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		arrived := false
		for _, p := range s.processes {
			if p.Arrival == tick {
				engine.HandleArrival(ctx, p, tick)
				arrived = true
			}
		}
		if !arrived {
			engine.CheckQuantumOrCompletion(ctx, tick)
		}

		s.recordSlice(engine.Running(), tick)
		engine.Advance()
		s.observe(ctx, tick)
	}

	return s.result(engine), nil
}

// recordSlice extends or opens the gantt slice for the process that executes
// this tick. An empty slot, or a finished process awaiting reaping, leaves a
// gap in the timeline.
func (s *Simulation) recordSlice(p *model.Process, tick int) {
	if p == nil || p.Completed() {
		return
	}
	if n := len(s.gantt); n > 0 && s.gantt[n-1].ProcessID == p.ID && s.gantt[n-1].Stop == tick {
		s.gantt[n-1].Stop = tick + 1
		return
	}
	s.gantt = append(s.gantt, TimeSlice{ProcessID: p.ID, Start: tick, Stop: tick + 1})
}

func (s *Simulation) observe(ctx context.Context, tick int) {
	if _, ok := progress.FromContext(ctx); !ok {
		return
	}
	var counts progress.Counts
	for _, p := range s.processes {
		switch p.State {
		case model.StatePending:
			counts.Pending++
		case model.StateReady:
			counts.Ready++
		case model.StateRunning:
			counts.Running++
		case model.StateCompleted:
			counts.Completed++
		}
	}
	progress.ObserveCtx(ctx, tick, counts)
}

func (s *Simulation) result(engine *scheduler.Engine) *Result {
	ret := &Result{
		Outcomes:    make([]Outcome, len(s.processes)),
		Gantt:       s.gantt,
		Preemptions: engine.Preemptions(),
	}
	var totalWait, totalTurnaround float64
	for i, p := range s.processes {
		ret.Outcomes[i] = Outcome{
			ID:         p.ID,
			Priority:   p.Priority,
			Burst:      p.Burst,
			Arrival:    p.Arrival,
			Wait:       p.Wait,
			Turnaround: p.Turnaround,
			Completed:  p.Completed(),
		}
		totalWait += float64(p.Wait)
		totalTurnaround += float64(p.Turnaround)
	}
	if count := float64(len(s.processes)); count > 0 {
		ret.AvgWait = totalWait / count
		ret.AvgTurnaround = totalTurnaround / count
	}
	return ret
}
