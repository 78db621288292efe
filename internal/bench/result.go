package bench

import "time"

// Phase holds the timings of one pass over the workload, truncated to whole
// milliseconds.
type Phase struct {
	// Serial is the time spent on the serial-only batch.
	Serial time.Duration
	// Parallelizable is the time spent on the parallelizable batch.
	Parallelizable time.Duration
}

// Total is the wall-clock time of the whole phase.
func (p Phase) Total() time.Duration {
	return p.Serial + p.Parallelizable
}

// Result is everything a single benchmark run produces.
type Result struct {
	Degree   int
	Strategy string

	// SerialRun is s1/s2: both batches executed one item at a time.
	SerialRun Phase
	// ParallelRun is p1/p2: the parallelizable batch spread over Degree workers.
	ParallelRun Phase
}

// Speedup is the serial total divided by the parallel total, computed on
// whole milliseconds. It returns 0 if the parallel phase took no measurable
// time.
func (r Result) Speedup() float64 {
	parallel := r.ParallelRun.Total().Milliseconds()
	if parallel == 0 {
		return 0
	}
	return float64(r.SerialRun.Total().Milliseconds()) / float64(parallel)
}

// ParallelFraction is the share of the serial run spent on the
// parallelizable batch, in [0, 1].
func (r Result) ParallelFraction() float64 {
	total := r.SerialRun.Total()
	if total <= 0 {
		return 0
	}
	return float64(r.SerialRun.Parallelizable) / float64(total)
}

// PredictedSpeedup is the speedup Amdahl's Law allows for the measured
// parallel fraction at Degree workers.
func (r Result) PredictedSpeedup() float64 {
	return AmdahlSpeedup(r.ParallelFraction(), r.Degree)
}

// AmdahlSpeedup returns 1 / ((1 - f) + f/n) for a parallel fraction f and n
// workers. f is clamped to [0, 1] and n to at least 1.
func AmdahlSpeedup(f float64, n int) float64 {
	f = min(max(f, 0), 1)
	n = max(n, 1)
	return 1 / ((1 - f) + f/float64(n))
}
