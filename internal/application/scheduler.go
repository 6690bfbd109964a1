package application

import (
	"sync"
	"time"
)

// Scheduler arms one delayed task per live lottery: the task sleeps until
// the lottery's end time, then invokes resolve with its name. There is no
// hard cancellation; a lottery deleted or stopped in the meantime makes the
// fire a no-op inside resolve.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	resolve func(name string)
}

func NewScheduler(resolve func(name string)) *Scheduler {
	return &Scheduler{
		timers:  make(map[string]*time.Timer),
		resolve: resolve,
	}
}

// Arm schedules resolution of name at endTime. A past endTime fires
// immediately. Re-arming the same name replaces the previous timer, so at
// most one task is armed per lottery.
func (s *Scheduler) Arm(name string, endTime time.Time) {
	delay := max(time.Duration(0), time.Until(endTime))

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[name]; ok {
		t.Stop()
	}
	s.timers[name] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, name)
		s.mu.Unlock()
		s.resolve(name)
	})
}
