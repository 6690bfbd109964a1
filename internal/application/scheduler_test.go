package application

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerFiresPastDeadlineImmediately(t *testing.T) {
	fired := make(chan string, 1)
	sched := NewScheduler(func(name string) { fired <- name })

	sched.Arm("retard", time.Now().Add(-time.Minute))

	select {
	case name := <-fired:
		if name != "retard" {
			t.Fatalf("expected fire for %q, got %q", "retard", name)
		}
	case <-time.After(time.Second):
		t.Fatal("timer with past deadline never fired")
	}
}

func TestSchedulerRearmReplacesTimer(t *testing.T) {
	var fires atomic.Int32
	sched := NewScheduler(func(string) { fires.Add(1) })

	sched.Arm("unique", time.Now().Add(50*time.Millisecond))
	sched.Arm("unique", time.Now().Add(80*time.Millisecond))

	time.Sleep(400 * time.Millisecond)

	if got := fires.Load(); got != 1 {
		t.Fatalf("expected exactly one fire after re-arming, got %d", got)
	}
}

func TestSchedulerRunsTimersIndependently(t *testing.T) {
	fired := make(chan string, 2)
	sched := NewScheduler(func(name string) { fired <- name })

	sched.Arm("a", time.Now().Add(30*time.Millisecond))
	sched.Arm("b", time.Now().Add(60*time.Millisecond))

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case name := <-fired:
			seen[name] = true
		case <-time.After(time.Second):
			t.Fatalf("missing fire, saw %v", seen)
		}
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("expected both timers to fire, saw %v", seen)
	}
}
