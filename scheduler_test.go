package reflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimer records arms and resets; tests fire the scheduler by hand.
type fakeTimer struct {
	fn     func()
	resets int
	stops  int
}

func (f *fakeTimer) Stop() bool { f.stops++; return true }

func (f *fakeTimer) Reset(_ time.Duration) bool { f.resets++; return true }

// fakeClock hands out fakeTimers and remembers the last one armed.
type fakeClock struct {
	armed []*fakeTimer
}

func (c *fakeClock) factory(_ time.Duration, fn func()) schedTimer {
	t := &fakeTimer{fn: fn}
	c.armed = append(c.armed, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	return c.armed[len(c.armed)-1]
}

func TestSchedulerCoalescesRequests(t *testing.T) {
	runs := 0
	clock := &fakeClock{}
	s := newScheduler(time.Millisecond, func() { runs++ })
	s.newTimer = clock.factory

	s.request()
	s.request()
	s.request()

	require.Len(t, clock.armed, 1, "repeat requests reset the timer, not arm a new one")
	assert.Equal(t, 2, clock.last().resets)
	assert.Equal(t, 0, runs, "nothing runs until the timer fires")

	clock.last().fn()
	assert.Equal(t, 1, runs, "coalesced requests produce one pass")
}

func TestSchedulerIdleAfterFire(t *testing.T) {
	runs := 0
	clock := &fakeClock{}
	s := newScheduler(time.Millisecond, func() { runs++ })
	s.newTimer = clock.factory

	s.request()
	clock.last().fn()
	require.Equal(t, 1, runs)

	// Back to idle: the next request arms a fresh timer.
	s.request()
	assert.Len(t, clock.armed, 2)
	clock.last().fn()
	assert.Equal(t, 2, runs)
}

func TestSchedulerCancel(t *testing.T) {
	runs := 0
	clock := &fakeClock{}
	s := newScheduler(time.Millisecond, func() { runs++ })
	s.newTimer = clock.factory

	s.request()
	s.cancel()
	assert.Equal(t, 1, clock.last().stops)

	// A late fire from an already-stopped timer is a no-op.
	clock.last().fn()
	assert.Equal(t, 0, runs)
}

func TestSchedulerRequestDuringRun(t *testing.T) {
	// A pass that triggers another request (the commit feedback loop) arms
	// a new timer instead of deadlocking or getting lost.
	clock := &fakeClock{}
	var s *scheduler
	runs := 0
	s = newScheduler(time.Millisecond, func() {
		runs++
		if runs == 1 {
			s.request()
		}
	})
	s.newTimer = clock.factory

	s.request()
	clock.armed[0].fn()
	require.Len(t, clock.armed, 2, "pass rescheduled itself")
	clock.armed[1].fn()
	assert.Equal(t, 2, runs)
}
