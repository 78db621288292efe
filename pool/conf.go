package pool

import (
	"runtime"

	"golang.org/x/time/rate"
)

// SchedulingStrategyType selects how Process distributes tasks to goroutines.
type SchedulingStrategyType int

const (
	// SchedulingChannel starts a fixed set of workers that pull tasks from a
	// shared channel. This is the default.
	SchedulingChannel SchedulingStrategyType = iota

	// SchedulingSemaphore starts one goroutine per task and gates execution
	// with a weighted semaphore sized to the worker count.
	SchedulingSemaphore
)

// String returns the flag spelling of the strategy.
func (s SchedulingStrategyType) String() string {
	switch s {
	case SchedulingChannel:
		return "channel"
	case SchedulingSemaphore:
		return "semaphore"
	default:
		return "unknown"
	}
}

// WorkerPoolOption is a functional option for configuring the worker pool.
type WorkerPoolOption func(*workerPoolConfig)

type workerPoolConfig struct {
	workerCount int
	taskBuffer  int
	strategy    SchedulingStrategyType
	rateLimiter *rate.Limiter
	onTaskEnd   func(index int, err error)
}

func createConfig(opts ...WorkerPoolOption) *workerPoolConfig {
	cfg := &workerPoolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		taskBuffer:  -1,
		strategy:    SchedulingChannel,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer < 0 {
		cfg.taskBuffer = cfg.workerCount
	}
	return cfg
}

// WithWorkerCount sets the maximum number of tasks processed at once.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTaskBuffer sets the buffer size for the task channel used by the
// channel strategy. Zero requests an unbuffered channel; negative sizes are
// ignored. If not specified, defaults to the number of workers.
func WithTaskBuffer(size int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if size >= 0 {
			cfg.taskBuffer = size
		}
	}
}

// WithSchedulingStrategy picks the dispatch strategy.
func WithSchedulingStrategy(strategy SchedulingStrategyType) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		switch strategy {
		case SchedulingChannel, SchedulingSemaphore:
			cfg.strategy = strategy
		}
	}
}

// WithRateLimit sets a rate limiter for controlling task dispatch.
// tasksPerSecond specifies the maximum number of tasks started per second.
// burst specifies the maximum number of tasks that can start in a burst.
// If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithOnTaskEnd registers a hook called after every task finishes, with the
// task's index in the input slice and the error it returned (nil on success).
// The hook runs on the worker goroutine and must be safe for concurrent use.
func WithOnTaskEnd(fn func(index int, err error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.onTaskEnd = fn
	}
}
