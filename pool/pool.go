package pool

import (
	"context"
)

// ProcessFunc is the function a pool applies to each task.
type ProcessFunc[T any, R any] func(ctx context.Context, task T) (R, error)

// WorkerPool is a generic bounded worker pool.
// It runs a batch of tasks with at most WorkerCount of them in flight and
// returns once every task has finished.
//
// Type parameters:
//   - T: The input task type
//   - R: The result type
type WorkerPool[T any, R any] struct {
	conf *workerPoolConfig
}

// NewWorkerPool creates a new worker pool with the given options.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0) (number of logical CPUs)
//   - taskBuffer: equal to workerCount
//   - strategy: SchedulingChannel
//
// Example:
//
//	pool := NewWorkerPool[int, string](
//	    WithWorkerCount(4),
//	    WithSchedulingStrategy(SchedulingSemaphore),
//	)
func NewWorkerPool[T any, R any](opts ...WorkerPoolOption) *WorkerPool[T, R] {
	return &WorkerPool[T, R]{
		conf: createConfig(opts...),
	}
}

// WorkerCount reports the configured concurrency bound.
func (wp *WorkerPool[T, R]) WorkerCount() int {
	return wp.conf.workerCount
}

// Strategy reports the configured scheduling strategy.
func (wp *WorkerPool[T, R]) Strategy() SchedulingStrategyType {
	return wp.conf.strategy
}

// Process executes a batch of tasks concurrently using a pool of workers.
// It blocks until all tasks are complete or an error occurs.
//
// Parameters:
//   - ctx: Context for cancellation
//   - tasks: Slice of tasks to process
//   - processFn: Function to process each task
//
// Returns:
//   - results: Slice of results in the same order as input tasks
//   - error: First error encountered, or nil if all tasks succeeded
//
// Example:
//
//	tasks := []int{1, 2, 3, 4, 5}
//	results, err := pool.Process(ctx, tasks, func(ctx context.Context, n int) (string, error) {
//	    return fmt.Sprintf("processed %d", n), nil
//	})
func (wp *WorkerPool[T, R]) Process(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	if len(tasks) == 0 {
		return []R{}, nil
	}

	switch wp.conf.strategy {
	case SchedulingSemaphore:
		return wp.processSemaphore(ctx, tasks, processFn)
	default:
		return wp.processChannel(ctx, tasks, processFn)
	}
}

// ForEach runs every zero-argument function through a pool configured with
// opts and waits for all of them. There is no ordering between calls.
//
// Example:
//
//	err := ForEach(ctx, []func(){work, work, work}, WithWorkerCount(2))
func ForEach[F ~func()](ctx context.Context, fns []F, opts ...WorkerPoolOption) error {
	wp := NewWorkerPool[F, struct{}](opts...)
	_, err := wp.Process(ctx, fns, func(_ context.Context, fn F) (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
	return err
}
