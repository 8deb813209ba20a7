package schedly

import (
	"github.com/viant/afs/storage"
	"github.com/viant/schedly/scheduler"
	"github.com/viant/schedly/service/dao"
	"github.com/viant/schedly/service/event"
	"github.com/viant/schedly/service/loader"
	"github.com/viant/schedly/service/messaging"
	"github.com/viant/schedly/simulator"
)

// Option customises the service façade.
type Option func(s *Service)

// WithConfig sets the simulator configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithQuantum overrides the round-robin time quantum.
func WithQuantum(quantum int) Option {
	return func(s *Service) {
		s.ensureConfig()
		s.config.Scheduler.Quantum = quantum
	}
}

// WithHorizon overrides the simulation horizon.
func WithHorizon(horizon int) Option {
	return func(s *Service) {
		s.ensureConfig()
		s.config.Scheduler.Horizon = horizon
	}
}

// WithRunDAO sets the run persistence service.
func WithRunDAO(runDAO dao.Service[string, simulator.Run]) Option {
	return func(s *Service) { s.runDAO = runDAO }
}

// WithEventQueue sets the queue scheduler activity events are published to.
func WithEventQueue(queue messaging.Queue[event.Event[scheduler.Activity]]) Option {
	return func(s *Service) { s.queue = queue }
}

// WithLoader sets the workload loader.
func WithLoader(svc *loader.Service) Option {
	return func(s *Service) { s.loader = svc }
}

// WithWorkloadBaseURL sets the base URL workload locations are resolved
// against.
func WithWorkloadBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = baseURL }
}

// WithWorkloadFsOptions sets storage options used when reading workloads
// (e.g. an embedded file system).
func WithWorkloadFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.fsOptions = options }
}
