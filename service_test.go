package schedly

import (
	"context"
	"embed"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"
	"github.com/viant/schedly/model"
	"github.com/viant/schedly/policy"
	"github.com/viant/schedly/scheduler"
	"github.com/viant/schedly/simulator"
)

//go:embed testdata/*
var embedFS embed.FS

func TestService_Run(t *testing.T) {
	srv := New(
		WithWorkloadBaseURL("embed:///testdata"),
		WithWorkloadFsOptions(&embedFS),
	)

	run, err := srv.Run(context.Background(), "workload.txt")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, simulator.RunStateCompleted, run.State)
	assert.NotNil(t, run.FinishedAt)

	expect := []simulator.Outcome{
		{ID: "P1", Priority: 2, Burst: 14, Arrival: 0, Wait: 5, Turnaround: 19, Completed: true},
		{ID: "P2", Priority: 1, Burst: 9, Arrival: 3, Wait: 28, Turnaround: 37, Completed: true},
		{ID: "P3", Priority: 5, Burst: 5, Arrival: 6, Wait: 0, Turnaround: 5, Completed: true},
		{ID: "P4", Priority: 2, Burst: 12, Arrival: 20, Wait: 0, Turnaround: 12, Completed: true},
	}
	assert.EqualValues(t, expect, run.Result.Outcomes)
	assert.Equal(t, 2, run.Result.Preemptions)
	assert.Equal(t, 8.25, run.Result.AvgWait)
	assert.Equal(t, 18.25, run.Result.AvgTurnaround)

	// the run is persisted
	stored, err := srv.RunDAO().Load(context.Background(), run.ID)
	assert.NoError(t, err)
	assert.Equal(t, run.Result, stored.Result)

	// every preemption produced a context switch event
	var switches int
	for srv.Events().Pending() > 0 {
		evt, err := srv.Events().Consume(context.Background())
		if !assert.NoError(t, err) {
			return
		}
		if evt.Context.EventType == scheduler.EventContextSwitch {
			switches++
		}
	}
	assert.Equal(t, 2, switches)
}

func TestService_Simulate_PolicyFromContext(t *testing.T) {
	srv := New(
		WithQuantum(5),
		WithHorizon(50),
		WithWorkloadBaseURL("embed:///testdata"),
		WithWorkloadFsOptions(&embedFS),
	)
	ctx := policy.WithPolicy(context.Background(), &policy.Policy{Quantum: 10, Horizon: 4})

	processes, err := srv.Load(context.Background(), "workload.txt")
	if !assert.NoError(t, err) {
		return
	}
	// context policy overrides service configuration
	run, err := srv.Simulate(ctx, processes)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 4, run.Result.Outcomes[0].Turnaround)
	assert.False(t, run.Result.Outcomes[0].Completed)
}

func TestService_Simulate_EventBurst(t *testing.T) {
	srv := New()

	// every arrival preempts the previous one, flooding the event queue in a
	// single tick with nobody consuming; the simulation must still finish
	processes := make([]*model.Process, 300)
	for i := range processes {
		processes[i] = model.NewProcess(fmt.Sprintf("P%d", i+1), i+1, 1, 0)
	}

	run, err := srv.Simulate(context.Background(), processes)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, simulator.RunStateCompleted, run.State)
	assert.Equal(t, 299, run.Result.Preemptions)
}

func TestService_Simulate_InvalidPolicy(t *testing.T) {
	srv := New()
	ctx := policy.WithPolicy(context.Background(), &policy.Policy{Quantum: -1, Horizon: 96})
	_, err := srv.Simulate(ctx, nil)
	assert.Error(t, err)
}
