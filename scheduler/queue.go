package scheduler

import (
	"github.com/viant/schedly/model"
)

// Queue maintains pending processes as a sequence sorted by descending
// priority. Placement inside a priority class encodes the round-robin rule:
// a process that arrived fresh or exhausted its quantum joins the back of its
// class, while a process preempted mid-slice (non-zero quantum) rejoins at
// the front of its class so preemption never costs it queue position.
type Queue struct {
	quantum int
	items   []*model.Process
}

// NewQueue creates an empty ready queue for the given time quantum.
func NewQueue(quantum int) *Queue {
	return &Queue{quantum: quantum}
}

// Insert places the process according to the priority/round-robin policy.
// A quantum at or beyond the limit is reset first - the process starts a
// fresh slice and therefore queues behind its peers.
func (q *Queue) Insert(p *model.Process) {
	if p == nil {
		return
	}
	if p.Quantum >= q.quantum {
		p.Quantum = 0
	}

	pos := len(q.items)
	for i, item := range q.items {
		if p.Priority > item.Priority {
			pos = i
			break
		}
		if p.Priority == item.Priority && p.Quantum != 0 {
			pos = i
			break
		}
	}

	p.State = model.StateReady
	q.items = append(q.items, nil)
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = p
}

// PopFront removes and returns the highest-priority entry, or nil when the
// queue is empty.
func (q *Queue) PopFront() *model.Process {
	if len(q.items) == 0 {
		return nil
	}
	ret := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = nil
	q.items = q.items[:len(q.items)-1]
	return ret
}

// Len returns the number of queued processes.
func (q *Queue) Len() int {
	return len(q.items)
}

// Each invokes fn for every queued process in queue order.
func (q *Queue) Each(fn func(p *model.Process)) {
	for _, item := range q.items {
		fn(item)
	}
}

// Processes returns a snapshot of the queue content in queue order.
func (q *Queue) Processes() []*model.Process {
	return append([]*model.Process(nil), q.items...)
}
