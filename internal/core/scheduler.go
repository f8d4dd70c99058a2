package core

import (
	"container/heap"
	"time"
)

// Scheduler runs continuations on a simulated clock.
// It is single-threaded: continuations run inside Advance, one at a time,
// earliest due first and in scheduling order when due times tie.
// Games use it to express delays without goroutines or wall-clock timers.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	gen   uint64
	queue taskQueue
}

type task struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of queued continuations.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// After schedules fn to run once the clock has advanced by delay.
// Negative delays are treated as zero.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, &task{at: s.now + delay, seq: s.seq, fn: fn})
}

// Every runs fn each time period elapses until CancelAll is called.
// A non-positive period schedules nothing.
func (s *Scheduler) Every(period time.Duration, fn func()) {
	if period <= 0 {
		return
	}
	gen := s.gen
	var run func()
	run = func() {
		fn()
		if s.gen == gen {
			s.After(period, run)
		}
	}
	s.After(period, run)
}

// CancelAll drops every queued continuation and stops all Every loops.
// Safe to call from inside a running continuation.
func (s *Scheduler) CancelAll() {
	s.gen++
	s.queue = s.queue[:0]
}

// Advance moves the clock forward by d, running every continuation that
// becomes due. Continuations scheduled while advancing run in the same call
// if they fall due before the new time.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	for s.queue.Len() > 0 && s.queue[0].at <= target {
		t := heap.Pop(&s.queue).(*task)
		if t.at > s.now {
			s.now = t.at
		}
		t.fn()
	}
	s.now = target
}

// taskQueue is a min-heap ordered by due time, then sequence.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*task))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
