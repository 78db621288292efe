package pool

import "testing"

// strategyConfig defines a test configuration for a scheduling strategy
type strategyConfig struct {
	name string
	opts []WorkerPoolOption
}

// getAllStrategies returns all scheduling strategies to test
func getAllStrategies(workerCount int) []strategyConfig {
	return []strategyConfig{
		{
			name: "Channel",
			opts: []WorkerPoolOption{
				WithWorkerCount(workerCount),
				WithSchedulingStrategy(SchedulingChannel),
			},
		},
		{
			name: "Semaphore",
			opts: []WorkerPoolOption{
				WithWorkerCount(workerCount),
				WithSchedulingStrategy(SchedulingSemaphore),
			},
		},
	}
}

// getAllStrategiesWithOpts returns all scheduling strategies with additional options
func getAllStrategiesWithOpts(workerCount int, additionalOpts ...WorkerPoolOption) []strategyConfig {
	baseStrategies := getAllStrategies(workerCount)
	for i := range baseStrategies {
		baseStrategies[i].opts = append(baseStrategies[i].opts, additionalOpts...)
	}
	return baseStrategies
}

func runStrategyTest(t *testing.T, testFunc func(t *testing.T, s strategyConfig), workerCount int, additionalOpts ...WorkerPoolOption) {
	strategies := getAllStrategiesWithOpts(workerCount, additionalOpts...)

	for _, strategy := range strategies {
		t.Run(strategy.name, func(t *testing.T) {
			testFunc(t, strategy)
		})
	}
}
