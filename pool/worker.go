package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type indexedTask[T any] struct {
	index int
	task  T
}

// processChannel feeds tasks into a buffered channel drained by a fixed set
// of workers. The first failing worker cancels the rest through the errgroup.
func (wp *WorkerPool[T, R]) processChannel(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	g, ctx := errgroup.WithContext(ctx)

	taskChan := make(chan indexedTask[T], wp.conf.taskBuffer)
	results := make([]R, len(tasks))

	numWorkers := min(wp.conf.workerCount, len(tasks))
	for range numWorkers {
		g.Go(func() error {
			return wp.worker(ctx, taskChan, results, processFn)
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for idx, task := range tasks {
			select {
			case taskChan <- indexedTask[T]{index: idx, task: task}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// worker is the core worker loop of the channel strategy.
func (wp *WorkerPool[T, R]) worker(
	ctx context.Context,
	taskChan <-chan indexedTask[T],
	results []R,
	processFn ProcessFunc[T, R],
) error {
	for {
		select {
		case t, ok := <-taskChan:
			if !ok {
				return nil
			}
			if err := wp.runTask(ctx, t, results, processFn); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processSemaphore spawns a goroutine per task; the semaphore keeps at most
// workerCount of them past the gate.
func (wp *WorkerPool[T, R]) processSemaphore(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	sem := semaphore.NewWeighted(int64(wp.conf.workerCount))
	g, gctx := errgroup.WithContext(ctx)
	results := make([]R, len(tasks))

	var acquireErr error
	for idx, task := range tasks {
		if err := sem.Acquire(gctx, 1); err != nil {
			acquireErr = err
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			return wp.runTask(gctx, indexedTask[T]{index: idx, task: task}, results, processFn)
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if acquireErr != nil {
		return results, acquireErr
	}
	return results, nil
}

// runTask applies rate limiting, runs one task with panic recovery and
// stores its result. Each index is written by exactly one goroutine.
func (wp *WorkerPool[T, R]) runTask(
	ctx context.Context,
	t indexedTask[T],
	results []R,
	processFn ProcessFunc[T, R],
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if wp.conf.rateLimiter != nil {
		if err := wp.conf.rateLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	result, err := processWithRecovery(ctx, t.task, processFn)
	if wp.conf.onTaskEnd != nil {
		wp.conf.onTaskEnd(t.index, err)
	}
	if err != nil {
		return err
	}

	results[t.index] = result
	return nil
}
