package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// ErrWorkerPanic is wrapped by the error returned when a task panics.
var ErrWorkerPanic = errors.New("worker panic")

// processWithRecovery executes a task with panic recovery.
// If a panic occurs, it's converted to an error to prevent crashing the worker.
func processWithRecovery[T, R any](
	ctx context.Context,
	task T,
	processFn ProcessFunc[T, R],
) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrWorkerPanic, r, buf[:n])
		}
	}()

	return processFn(ctx, task)
}

// ParseStrategy maps a flag value onto a SchedulingStrategyType.
func ParseStrategy(name string) (SchedulingStrategyType, error) {
	switch name {
	case "", "channel":
		return SchedulingChannel, nil
	case "semaphore":
		return SchedulingSemaphore, nil
	default:
		return SchedulingChannel, fmt.Errorf("unknown scheduling strategy %q (want channel or semaphore)", name)
	}
}
