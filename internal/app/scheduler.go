package app

import (
	"sort"
	"time"
)

type task struct {
	at  time.Time
	seq uint64
	fn  func()
}

// Scheduler queues callbacks that run on the game loop, never on their own
// goroutine, so they can touch game state without locking.
type Scheduler struct {
	tasks []task
	seq   uint64
}

func (s *Scheduler) At(at time.Time, fn func()) {
	s.seq++
	t := task{at: at, seq: s.seq, fn: fn}
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].at.After(at)
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

// RunDue runs every task due at now. Tasks added while running wait for
// the next call even if already due.
func (s *Scheduler) RunDue(now time.Time) int {
	n := 0
	for n < len(s.tasks) && !s.tasks[n].at.After(now) {
		n++
	}
	if n == 0 {
		return 0
	}
	due := make([]task, n)
	copy(due, s.tasks[:n])
	s.tasks = s.tasks[n:]
	for _, t := range due {
		t.fn()
	}
	return n
}

func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

func (s *Scheduler) Clear() {
	s.tasks = nil
}
