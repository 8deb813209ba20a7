package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/schedly/model"
)

type queueEntry struct {
	id       string
	priority int
	quantum  int
}

func ids(q *Queue) []string {
	var ret []string
	q.Each(func(p *model.Process) {
		ret = append(ret, p.ID)
	})
	return ret
}

func TestQueue_Insert(t *testing.T) {
	testCases := []struct {
		name     string
		quantum  int
		existing []queueEntry
		insert   queueEntry
		expected []string
	}{
		{
			name:     "empty queue",
			quantum:  10,
			insert:   queueEntry{id: "A", priority: 3},
			expected: []string{"A"},
		},
		{
			name:     "higher priority becomes head",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 3}, {id: "B", priority: 1}},
			insert:   queueEntry{id: "C", priority: 5},
			expected: []string{"C", "A", "B"},
		},
		{
			name:     "fresh joins back of its priority class",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 2}, {id: "B", priority: 2}},
			insert:   queueEntry{id: "C", priority: 2},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "fresh placed before first strictly lower priority",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 5}, {id: "B", priority: 3}, {id: "C", priority: 1}},
			insert:   queueEntry{id: "D", priority: 3},
			expected: []string{"A", "B", "D", "C"},
		},
		{
			name:     "preempted joins front of its priority class",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 2}, {id: "B", priority: 2}},
			insert:   queueEntry{id: "C", priority: 2, quantum: 3},
			expected: []string{"C", "A", "B"},
		},
		{
			name:     "preempted becomes head of highest class",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 3}, {id: "B", priority: 2}},
			insert:   queueEntry{id: "C", priority: 3, quantum: 2},
			expected: []string{"C", "A", "B"},
		},
		{
			name:     "preempted still behind higher classes",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 5}, {id: "B", priority: 3}, {id: "C", priority: 3}, {id: "D", priority: 1}},
			insert:   queueEntry{id: "E", priority: 3, quantum: 4},
			expected: []string{"A", "E", "B", "C", "D"},
		},
		{
			name:     "exhausted quantum resets and queues at back",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 2}, {id: "B", priority: 2}},
			insert:   queueEntry{id: "C", priority: 2, quantum: 10},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "lowest priority goes last",
			quantum:  10,
			existing: []queueEntry{{id: "A", priority: 5}, {id: "B", priority: 3}},
			insert:   queueEntry{id: "C", priority: 1},
			expected: []string{"A", "B", "C"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			queue := NewQueue(tc.quantum)
			for _, entry := range tc.existing {
				p := model.NewProcess(entry.id, entry.priority, 10, 0)
				p.Quantum = entry.quantum
				queue.Insert(p)
			}
			p := model.NewProcess(tc.insert.id, tc.insert.priority, 10, 0)
			p.Quantum = tc.insert.quantum
			queue.Insert(p)

			assert.Equal(t, tc.expected, ids(queue))
			assertSorted(t, queue)
		})
	}
}

func assertSorted(t *testing.T, queue *Queue) {
	processes := queue.Processes()
	for i := 1; i < len(processes); i++ {
		assert.GreaterOrEqual(t, processes[i-1].Priority, processes[i].Priority,
			"queue not sorted by descending priority")
	}
}

func TestQueue_InsertNormalizesQuantum(t *testing.T) {
	queue := NewQueue(10)
	p := model.NewProcess("A", 1, 20, 0)
	p.Quantum = 10
	queue.Insert(p)
	assert.Equal(t, 0, p.Quantum)
	assert.Equal(t, model.StateReady, p.State)

	// a mid-slice quantum is preserved
	q := model.NewProcess("B", 1, 20, 0)
	q.Quantum = 4
	queue.Insert(q)
	assert.Equal(t, 4, q.Quantum)
}

func TestQueue_PopFront(t *testing.T) {
	queue := NewQueue(10)
	assert.Nil(t, queue.PopFront())

	queue.Insert(model.NewProcess("A", 1, 5, 0))
	queue.Insert(model.NewProcess("B", 5, 5, 0))
	queue.Insert(model.NewProcess("C", 3, 5, 0))

	assert.Equal(t, 3, queue.Len())
	assert.Equal(t, "B", queue.PopFront().ID)
	assert.Equal(t, "C", queue.PopFront().ID)
	assert.Equal(t, "A", queue.PopFront().ID)
	assert.Nil(t, queue.PopFront())
	assert.Equal(t, 0, queue.Len())
}
