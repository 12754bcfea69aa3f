package reflow

import (
	"sync"
	"time"
)

// schedTimer is the resettable timer handle the scheduler arms. The
// indirection exists so tests can drive passes without sleeping.
type schedTimer interface {
	Stop() bool
	Reset(d time.Duration) bool
}

// timerFactory arms a timer that calls fn once after d.
type timerFactory func(d time.Duration, fn func()) schedTimer

func realTimer(d time.Duration, fn func()) schedTimer {
	return time.AfterFunc(d, fn)
}

// scheduler coalesces reflow requests into at most one pending pass. It
// is a two-state machine: idle, or pending with an armed timer. A
// request while pending resets the timer (debounce) instead of stacking
// a second pass, so no two passes ever overlap.
type scheduler struct {
	mu       sync.Mutex
	pending  bool
	timer    schedTimer
	interval time.Duration
	newTimer timerFactory
	run      func()
}

func newScheduler(interval time.Duration, run func()) *scheduler {
	return &scheduler{
		interval: interval,
		newTimer: realTimer,
		run:      run,
	}
}

// request schedules a pass after the settle interval, or pushes an
// already-pending pass further out.
func (s *scheduler) request() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		s.timer.Reset(s.interval)
		return
	}
	s.pending = true
	s.timer = s.newTimer(s.interval, s.fire)
}

// fire transitions back to idle and runs the pass. The transition happens
// before the pass so a change committed by the pass can schedule the next
// one.
func (s *scheduler) fire() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	run := s.run
	s.mu.Unlock()
	run()
}

// cancel clears any pending schedule. Called on session teardown.
func (s *scheduler) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending && s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
}
