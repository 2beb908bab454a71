// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"container/heap"
	"sync"
	"sync/atomic"
)

// Task is a callback scheduled on the audio clock.
type Task struct {
	due      float64
	seq      uint64
	fn       func()
	next     func() float64
	canceled atomic.Bool
}

// Cancel stops the task from running again. It is safe to call more than once
// and from inside the task itself.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.canceled.Store(true)
}

// Canceled reports whether Cancel was called.
func (t *Task) Canceled() bool {
	return t != nil && t.canceled.Load()
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(*Task)) }
func (q *taskQueue) Pop() any {
	old := *q
	t := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return t
}

type scheduler struct {
	mu    sync.Mutex
	queue taskQueue
	seq   uint64
}

func (s *scheduler) push(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

func (s *scheduler) at(due float64, fn func()) *Task {
	t := &Task{due: due, fn: fn}
	s.push(t)
	return t
}

func (s *scheduler) every(now float64, next func() float64, fn func()) *Task {
	t := &Task{due: now + next(), fn: fn, next: next}
	s.push(t)
	return t
}

// pending returns the number of queued tasks, canceled ones included.
func (s *scheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// runDue pops every task due at or before now and runs it outside the lock.
func (s *scheduler) runDue(now float64) {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 || s.queue[0].due > now {
			s.mu.Unlock()
			return
		}
		t := heap.Pop(&s.queue).(*Task)
		s.mu.Unlock()

		if t.canceled.Load() {
			continue
		}
		t.fn()

		if t.next != nil && !t.canceled.Load() {
			t.due += max(t.next(), 1e-3)
			s.push(t)
		}
	}
}
