// Package pool provides a small generic worker pool for running a batch of
// independent tasks with a bounded degree of parallelism.
//
// The primary type is WorkerPool[T, R], which processes tasks of type T and
// returns results of type R. Process is a synchronous fan-out/fan-in: it
// returns only after every task has finished (or the first error).
//
// # Basic Usage
//
//	ctx := context.Background()
//	tasks := []int{1, 2, 3, 4}
//	pool := NewWorkerPool[int, int](WithWorkerCount(4))
//	results, err := pool.Process(ctx, tasks, func(ctx context.Context, t int) (int, error) {
//	    return t * 2, nil
//	})
//
// # Zero-argument work
//
// ForEach runs a slice of func() values, which is all a benchmark workload
// needs:
//
//	err := ForEach(ctx, items, WithWorkerCount(degree))
//
// # Scheduling Strategies
//
//   - SchedulingChannel: min(workers, len(tasks)) goroutines drain a task channel
//   - SchedulingSemaphore: one goroutine per task behind a weighted semaphore
//
// Both keep at most WorkerCount tasks running at once. Neither guarantees an
// execution order; results are still returned in input order.
//
// # Configuration Options
//
//   - WithWorkerCount(n): Set the concurrency bound (default: GOMAXPROCS)
//   - WithTaskBuffer(n): Set task channel buffer size (default: worker count)
//   - WithSchedulingStrategy(s): Choose the dispatch strategy
//   - WithRateLimit(tasksPerSecond, burst): Throttle task starts
//   - WithOnTaskEnd(fn): Observe task completion, e.g. for progress bars
//
// # Error Handling
//
// The pool uses fail-fast semantics: when any task returns an error the
// remaining work is cancelled and that error is returned. Panics are recovered
// and returned as errors wrapping ErrWorkerPanic, with a stack trace.
package pool
