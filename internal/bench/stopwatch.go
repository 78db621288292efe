package bench

import "time"

// Stopwatch measures elapsed wall-clock time across Start/Stop intervals.
// It is owned by a single goroutine; the zero value is not usable, use
// NewStopwatch.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch returns a stopped stopwatch reading zero.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Start begins or resumes timing. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = s.now()
	s.running = true
}

// Stop pauses timing and keeps the accumulated value.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.started)
	s.running = false
}

// Reset stops the stopwatch and clears the accumulated value.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}

// Restart is Reset followed by Start.
func (s *Stopwatch) Restart() {
	s.Reset()
	s.Start()
}

// Elapsed returns the accumulated time, including the current interval when
// running.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.now().Sub(s.started)
	}
	return s.elapsed
}

// ElapsedMillis returns Elapsed truncated to whole milliseconds.
func (s *Stopwatch) ElapsedMillis() time.Duration {
	return s.Elapsed().Truncate(time.Millisecond)
}
