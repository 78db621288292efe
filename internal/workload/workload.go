// Package workload defines the simulated work a benchmark runs.
package workload

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultSerialItems is the number of items that can never run in parallel.
	DefaultSerialItems = 2

	// DefaultParallelItems is the number of items eligible for parallel execution.
	DefaultParallelItems = 8

	// DefaultItemCost is the simulated execution time of every item.
	DefaultItemCost = 500 * time.Millisecond
)

// ErrEmptyWorkload is returned when a workload would contain no items at all.
var ErrEmptyWorkload = errors.New("workload has no items")

// Item is a single unit of work. It takes no input and produces no output.
type Item func()

// Sleep returns an Item that blocks for d.
func Sleep(d time.Duration) Item {
	return func() {
		time.Sleep(d)
	}
}

// Repeat returns n copies of item.
func Repeat(item Item, n int) []Item {
	items := make([]Item, max(n, 0))
	for i := range items {
		items[i] = item
	}
	return items
}

// RunInOrder runs items one after another on the calling goroutine.
func RunInOrder(items []Item) {
	for _, item := range items {
		item()
	}
}

// Workload is the pair of batches measured by the benchmark.
// Serial is the Amdahl serial fraction: it always runs in order.
// Parallelizable may be spread across workers.
type Workload struct {
	Serial         []Item
	Parallelizable []Item
}

// New builds a workload of serialN and parallelN sleeping items, each
// costing cost.
func New(serialN, parallelN int, cost time.Duration) (Workload, error) {
	if serialN < 0 || parallelN < 0 {
		return Workload{}, fmt.Errorf("item counts must be non-negative (serial=%d, parallel=%d)", serialN, parallelN)
	}
	if serialN+parallelN == 0 {
		return Workload{}, ErrEmptyWorkload
	}
	if cost <= 0 {
		return Workload{}, fmt.Errorf("item cost must be positive, got %v", cost)
	}

	item := Sleep(cost)
	return Workload{
		Serial:         Repeat(item, serialN),
		Parallelizable: Repeat(item, parallelN),
	}, nil
}

// Default returns 2 serial and 8 parallelizable items of 500ms.
func Default() Workload {
	w, _ := New(DefaultSerialItems, DefaultParallelItems, DefaultItemCost)
	return w
}

// Size returns the total number of items.
func (w Workload) Size() int {
	return len(w.Serial) + len(w.Parallelizable)
}
