package schedly

import (
	"context"

	"github.com/viant/afs/storage"
	"github.com/viant/schedly/internal/idgen"
	"github.com/viant/schedly/model"
	"github.com/viant/schedly/policy"
	"github.com/viant/schedly/scheduler"
	"github.com/viant/schedly/service/dao"
	rmemory "github.com/viant/schedly/service/dao/run/memory"
	"github.com/viant/schedly/service/event"
	"github.com/viant/schedly/service/loader"
	"github.com/viant/schedly/service/messaging"
	mmemory "github.com/viant/schedly/service/messaging/memory"
	"github.com/viant/schedly/simulator"
	"github.com/viant/schedly/tracing"
)

// Service is the simulator façade: it wires the workload loader, the
// simulation driver, run persistence and the scheduler event stream.
type Service struct {
	config    *Config
	runDAO    dao.Service[string, simulator.Run]
	queue     messaging.Queue[event.Event[scheduler.Activity]]
	publisher *event.Publisher[scheduler.Activity]
	loader    *loader.Service
	baseURL   string
	fsOptions []storage.Option
}

// New creates a service with the supplied options; omitted collaborators fall
// back to in-memory defaults.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
}

func (s *Service) ensureConfig() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
}

func (s *Service) ensureBaseSetup() {
	s.ensureConfig()
	if s.runDAO == nil {
		s.runDAO = rmemory.New()
	}
	if s.queue == nil {
		s.queue = mmemory.NewQueue[event.Event[scheduler.Activity]](mmemory.DefaultConfig())
	}
	s.publisher = event.NewPublisher(s.queue)
	if s.loader == nil {
		s.loader = loader.New(s.baseURL, s.fsOptions...)
	}
}

// Load reads the workload at the supplied location.
func (s *Service) Load(ctx context.Context, location string) ([]*model.Process, error) {
	return s.loader.Load(ctx, location)
}

// Simulate runs the supplied processes to the horizon, persists the run and
// returns it. The effective policy is resolved in order: policy attached to
// ctx, service configuration.
func (s *Service) Simulate(ctx context.Context, processes []*model.Process) (*simulator.Run, error) {
	pol := policy.FromContext(ctx)
	if pol == nil {
		pol = policy.FromConfig(&s.config.Scheduler)
	}
	if err := pol.Validate(); err != nil {
		return nil, err
	}

	id := idgen.New()
	ctx, span := tracing.StartSpan(ctx, "schedly.simulate", "INTERNAL")
	span.WithAttributes(map[string]string{"runId": id})

	run := simulator.NewRun(id, processes)
	if err := s.runDAO.Save(ctx, run); err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}

	sim := simulator.New(processes,
		simulator.WithRunID(id),
		simulator.WithPolicy(pol),
		simulator.WithPublisher(s.publisher),
	)
	result, err := sim.Run(ctx)
	if err != nil {
		run.Fail(err)
		_ = s.runDAO.Save(ctx, run)
		tracing.EndSpan(span, err)
		return nil, err
	}

	run.Complete(result)
	err = s.runDAO.Save(ctx, run)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Run loads the workload at location and simulates it.
func (s *Service) Run(ctx context.Context, location string) (*simulator.Run, error) {
	processes, err := s.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	return s.Simulate(ctx, processes)
}

// Subscribe starts a background listener dispatching scheduler events to the
// handler; the caller owns the returned listener and should Stop it when
// done.
func (s *Service) Subscribe(handler func(*event.Event[scheduler.Activity])) *event.Listener[scheduler.Activity] {
	listener := event.NewListener(s.publisher, handler)
	listener.Start()
	return listener
}

// Events returns the scheduler activity publisher.
func (s *Service) Events() *event.Publisher[scheduler.Activity] {
	return s.publisher
}

// RunDAO returns the run persistence service.
func (s *Service) RunDAO() dao.Service[string, simulator.Run] {
	return s.runDAO
}
