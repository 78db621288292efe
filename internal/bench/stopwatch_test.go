package bench

import (
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock safe for concurrent use.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStopwatch_StartStop(t *testing.T) {
	clock := newFakeClock()
	sw := newStopwatch(clock.Now)

	if sw.Elapsed() != 0 {
		t.Fatalf("new stopwatch should read zero, got %v", sw.Elapsed())
	}

	sw.Start()
	clock.Advance(300 * time.Millisecond)
	if got := sw.Elapsed(); got != 300*time.Millisecond {
		t.Errorf("running elapsed = %v, want 300ms", got)
	}

	sw.Stop()
	clock.Advance(time.Second)
	if got := sw.Elapsed(); got != 300*time.Millisecond {
		t.Errorf("stopped stopwatch must not advance, got %v", got)
	}

	sw.Start()
	clock.Advance(200 * time.Millisecond)
	sw.Stop()
	if got := sw.Elapsed(); got != 500*time.Millisecond {
		t.Errorf("accumulated elapsed = %v, want 500ms", got)
	}
}

func TestStopwatch_ResetAndRestart(t *testing.T) {
	clock := newFakeClock()
	sw := newStopwatch(clock.Now)

	sw.Start()
	clock.Advance(time.Second)
	sw.Reset()
	if sw.Elapsed() != 0 {
		t.Errorf("reset stopwatch should read zero, got %v", sw.Elapsed())
	}

	clock.Advance(time.Second)
	if sw.Elapsed() != 0 {
		t.Errorf("reset stops the stopwatch, got %v", sw.Elapsed())
	}

	sw.Restart()
	clock.Advance(250 * time.Millisecond)
	if got := sw.Elapsed(); got != 250*time.Millisecond {
		t.Errorf("restart elapsed = %v, want 250ms", got)
	}
}

func TestStopwatch_ElapsedMillisTruncates(t *testing.T) {
	clock := newFakeClock()
	sw := newStopwatch(clock.Now)

	sw.Start()
	clock.Advance(1999 * time.Microsecond)
	if got := sw.ElapsedMillis(); got != time.Millisecond {
		t.Errorf("ElapsedMillis() = %v, want 1ms", got)
	}
}

func TestStopwatch_DoubleStart(t *testing.T) {
	clock := newFakeClock()
	sw := newStopwatch(clock.Now)

	sw.Start()
	clock.Advance(100 * time.Millisecond)
	sw.Start()
	clock.Advance(100 * time.Millisecond)
	if got := sw.Elapsed(); got != 200*time.Millisecond {
		t.Errorf("second Start must not reset the interval, got %v", got)
	}
}
