// Package bench runs the serial and parallel passes of an Amdahl's Law
// benchmark and computes the resulting speedup.
package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/utkarsh5026/amdahl/internal/workload"
	"github.com/utkarsh5026/amdahl/pool"
)

// Runner executes a workload twice: once fully serial, once with the
// parallelizable batch spread over Degree workers.
type Runner struct {
	workload workload.Workload
	degree   int
	strategy pool.SchedulingStrategyType
	poolOpts []pool.WorkerPoolOption
	logger   *zap.Logger
	itemDone func()
	relayInt time.Duration
	newWatch func() *Stopwatch
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithPoolOptions forwards options to the worker pool used by the parallel
// phase. The worker count is always overridden by the degree.
func WithPoolOptions(opts ...pool.WorkerPoolOption) RunnerOption {
	return func(r *Runner) {
		r.poolOpts = append(r.poolOpts, opts...)
	}
}

// WithStrategy selects how the parallel phase dispatches items.
func WithStrategy(strategy pool.SchedulingStrategyType) RunnerOption {
	return func(r *Runner) {
		r.strategy = strategy
		r.poolOpts = append(r.poolOpts, pool.WithSchedulingStrategy(strategy))
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithItemDone registers a callback invoked once per finished work item in
// either phase. Calls are batched onto a separate goroutine so that the
// callback's own cost stays out of the measured timings; every pending call
// has been made by the time the phase returns.
func WithItemDone(fn func()) RunnerOption {
	return func(r *Runner) {
		r.itemDone = fn
	}
}

// NewRunner builds a runner for w at the given degree of parallelism.
// A degree below 1 is treated as 1.
func NewRunner(w workload.Workload, degree int, opts ...RunnerOption) *Runner {
	r := &Runner{
		workload: w,
		degree:   max(degree, 1),
		strategy: pool.SchedulingChannel,
		logger:   zap.NewNop(),
		relayInt: defaultRelayInterval,
		newWatch: NewStopwatch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Degree returns the configured degree of parallelism.
func (r *Runner) Degree() int {
	return r.degree
}

// Run performs the serial phase followed by the parallel phase.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	sw := r.newWatch()

	serial := r.RunSerial(sw)
	parallel, err := r.RunParallel(ctx, sw)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Degree:      r.degree,
		Strategy:    r.strategy.String(),
		SerialRun:   serial,
		ParallelRun: parallel,
	}, nil
}

// RunSerial runs the serial batch then the parallelizable batch, all in
// order on the calling goroutine. The stopwatch is restarted once and not
// reset between the two batches.
func (r *Runner) RunSerial(sw *Stopwatch) Phase {
	r.logger.Debug("serial phase started",
		zap.Int("serialItems", len(r.workload.Serial)),
		zap.Int("parallelizableItems", len(r.workload.Parallelizable)))

	relay := startRelay(r.itemDone, r.relayInt)
	defer relay.close()

	sw.Restart()
	runInOrder(r.workload.Serial, relay)
	s1 := sw.ElapsedMillis()

	runInOrder(r.workload.Parallelizable, relay)
	sw.Stop()
	s2 := sw.ElapsedMillis() - s1

	phase := Phase{Serial: s1, Parallelizable: s2}
	r.logger.Debug("serial phase finished",
		zap.Duration("serialWork", s1),
		zap.Duration("parallelizableWork", s2))
	return phase
}

// RunParallel resets the stopwatch, runs the serial batch in order, then
// hands the parallelizable batch to a worker pool bounded by the degree and
// waits for every item.
func (r *Runner) RunParallel(ctx context.Context, sw *Stopwatch) (Phase, error) {
	r.logger.Debug("parallel phase started", zap.Int("degree", r.degree))

	relay := startRelay(r.itemDone, r.relayInt)
	defer relay.close()

	items := r.workload.Parallelizable
	if relay != nil {
		items = make([]workload.Item, len(r.workload.Parallelizable))
		for i, item := range r.workload.Parallelizable {
			items[i] = track(item, relay)
		}
	}

	sw.Restart()
	runInOrder(r.workload.Serial, relay)
	p1 := sw.ElapsedMillis()

	opts := append(append([]pool.WorkerPoolOption{}, r.poolOpts...), pool.WithWorkerCount(r.degree))
	if err := pool.ForEach(ctx, items, opts...); err != nil {
		sw.Stop()
		return Phase{}, fmt.Errorf("parallel phase: %w", err)
	}

	sw.Stop()
	p2 := sw.ElapsedMillis() - p1

	phase := Phase{Serial: p1, Parallelizable: p2}
	r.logger.Debug("parallel phase finished",
		zap.Duration("serialWork", p1),
		zap.Duration("parallelizableWork", p2))
	return phase, nil
}

func runInOrder(items []workload.Item, relay *progressRelay) {
	if relay == nil {
		workload.RunInOrder(items)
		return
	}
	for _, item := range items {
		item()
		relay.add()
	}
}

func track(item workload.Item, relay *progressRelay) workload.Item {
	return func() {
		item()
		relay.add()
	}
}
