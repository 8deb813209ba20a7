package memory

import (
	"context"
	"sync"

	"github.com/viant/schedly/service/dao"
	"github.com/viant/schedly/simulator"
)

// Service implements an in-memory, thread-safe store for simulation runs.
type Service struct {
	runs map[string]*simulator.Run
	mux  sync.RWMutex
}

var _ dao.Service[string, simulator.Run] = (*Service)(nil)

// New creates an empty run store.
func New() *Service {
	return &Service{runs: make(map[string]*simulator.Run)}
}

func (s *Service) Save(_ context.Context, r *simulator.Run) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.ID == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	s.runs[r.ID] = r
	return nil
}

func (s *Service) Load(_ context.Context, id string) (*simulator.Run, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	r, ok := s.runs[id]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return r, nil
}

func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.runs[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}

// List returns stored runs; a {Name: "state"} parameter narrows the result to
// runs in the given state.
func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*simulator.Run, error) {
	var state string
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		if parameter.Name == "state" {
			if value, ok := parameter.Value.(string); ok {
				state = value
			}
		}
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	ret := make([]*simulator.Run, 0, len(s.runs))
	for _, r := range s.runs {
		if state != "" && r.State != state {
			continue
		}
		ret = append(ret, r)
	}
	return ret, nil
}
