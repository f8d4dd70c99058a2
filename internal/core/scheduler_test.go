package core

import (
	"testing"
	"time"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(250 * time.Millisecond)
	if got := join(order); got != "ab" {
		t.Fatalf("after 250ms ran %q, expected \"ab\"", got)
	}
	if s.Now() != 250*time.Millisecond {
		t.Errorf("Now() = %v, expected 250ms", s.Now())
	}

	s.Advance(50 * time.Millisecond)
	if got := join(order); got != "abc" {
		t.Errorf("after 300ms ran %q, expected \"abc\"", got)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerTiesAreFIFO(t *testing.T) {
	s := NewScheduler()
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		s.After(time.Second, func() { order = append(order, name) })
	}

	s.Advance(time.Second)
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("tied continuations ran as %v", order)
	}
}

func TestSchedulerClockDuringContinuation(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(400*time.Millisecond, func() { seen = s.Now() })

	s.Advance(time.Second)
	if seen != 400*time.Millisecond {
		t.Errorf("continuation saw Now() = %v, expected 400ms", seen)
	}
}

func TestSchedulerChainedContinuations(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	s.After(100*time.Millisecond, func() {
		at = append(at, s.Now())
		s.After(100*time.Millisecond, func() {
			at = append(at, s.Now())
		})
	})

	s.Advance(time.Second)
	if len(at) != 2 || at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Errorf("chained continuations ran at %v", at)
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(-time.Second, func() { ran = true })

	s.Advance(0)
	if !ran {
		t.Error("negative delay should run on the next Advance")
	}
}

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every(time.Second, func() { count++ })

	s.Advance(3500 * time.Millisecond)
	if count != 3 {
		t.Errorf("Every(1s) ran %d times in 3.5s, expected 3", count)
	}

	s.Every(0, func() { t.Error("non-positive period should never run") })
	s.Advance(time.Second)
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	fired := false

	s.Every(time.Second, func() {
		ticks++
		if ticks == 2 {
			s.CancelAll()
		}
	})
	s.After(5*time.Second, func() { fired = true })

	s.Advance(10 * time.Second)
	if ticks != 2 {
		t.Errorf("Every loop ran %d times, expected to stop at 2", ticks)
	}
	if fired {
		t.Error("continuation queued before CancelAll should not run")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after CancelAll", s.Pending())
	}

	// Scheduling after a cancel works normally
	s.After(time.Second, func() { fired = true })
	s.Advance(time.Second)
	if !fired {
		t.Error("continuation scheduled after CancelAll should run")
	}
}

func join(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}
