// Package config loads benchmark settings from command-line flags and an
// optional TOML file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/utkarsh5026/amdahl/internal/workload"
	"github.com/utkarsh5026/amdahl/pool"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting of a benchmark run.
type Config struct {
	// Degree skips the interactive prompt when positive. It is still
	// subject to the same range fallback as typed input.
	Degree        int           `toml:"degree"`
	SerialItems   int           `toml:"serial_items"`
	ParallelItems int           `toml:"parallel_items"`
	ItemCost      time.Duration `toml:"item_cost"`
	Strategy      string        `toml:"strategy"`
	// RateLimit caps how many parallelizable items start per second; 0
	// disables it. TaskBuffer sizes the channel strategy's queue; a
	// negative value uses the degree.
	RateLimit  float64 `toml:"rate_limit"`
	TaskBuffer int     `toml:"task_buffer"`
	Table         bool          `toml:"table"`
	Progress      bool          `toml:"progress"`
	NoWait        bool          `toml:"no_wait"`
	Verbose       bool          `toml:"verbose"`
}

// Default returns the settings that reproduce the classic demonstration:
// prompt for the degree, 2 serial and 8 parallelizable items of 500ms.
func Default() Config {
	return Config{
		SerialItems:   workload.DefaultSerialItems,
		ParallelItems: workload.DefaultParallelItems,
		ItemCost:      workload.DefaultItemCost,
		Strategy:      pool.SchedulingChannel.String(),
		TaskBuffer:    -1,
	}
}

// Load parses args (without the program name). Values from the file named
// by -config are applied first; flags given explicitly on the command line
// override them.
func Load(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("amdahl", flag.ContinueOnError)
	fs.SetOutput(output)

	path := fs.String("config", "", "Optional TOML file with benchmark settings")
	degree := fs.Int("degree", cfg.Degree, "Degree of parallelism; 0 prompts on stdin")
	serialItems := fs.Int("serial-items", cfg.SerialItems, "Number of work items that always run serially")
	parallelItems := fs.Int("parallel-items", cfg.ParallelItems, "Number of work items eligible for parallel execution")
	itemCost := fs.Duration("item-cost", cfg.ItemCost, "Simulated execution time of each work item")
	strategy := fs.String("strategy", cfg.Strategy, "Parallel dispatch strategy: channel or semaphore")
	rateLimit := fs.Float64("rate", cfg.RateLimit, "Maximum parallelizable items started per second; 0 is unlimited")
	taskBuffer := fs.Int("task-buffer", cfg.TaskBuffer, "Task queue size for the channel strategy; negative uses the degree")
	table := fs.Bool("table", cfg.Table, "Print a breakdown table with the Amdahl prediction")
	progress := fs.Bool("progress", cfg.Progress, "Show a progress bar on stderr (updated outside the timed sections)")
	noWait := fs.Bool("no-wait", cfg.NoWait, "Exit without waiting for a keypress")
	verbose := fs.Bool("v", cfg.Verbose, "Write debug logs to stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}

	if *path != "" {
		if err := cfg.loadFile(*path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "degree":
			cfg.Degree = *degree
		case "serial-items":
			cfg.SerialItems = *serialItems
		case "parallel-items":
			cfg.ParallelItems = *parallelItems
		case "item-cost":
			cfg.ItemCost = *itemCost
		case "strategy":
			cfg.Strategy = *strategy
		case "rate":
			cfg.RateLimit = *rateLimit
		case "task-buffer":
			cfg.TaskBuffer = *taskBuffer
		case "table":
			cfg.Table = *table
		case "progress":
			cfg.Progress = *progress
		case "no-wait":
			cfg.NoWait = *noWait
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidConfig, path, undecoded)
	}
	return nil
}

// Validate checks the workload shape and strategy name. The degree is not
// validated here: out-of-range values fall back to the processor count.
func (c Config) Validate() error {
	if _, err := workload.New(c.SerialItems, c.ParallelItems, c.ItemCost); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := pool.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate must not be negative, got %v", ErrInvalidConfig, c.RateLimit)
	}
	return nil
}

// Workload builds the workload described by the config.
func (c Config) Workload() (workload.Workload, error) {
	return workload.New(c.SerialItems, c.ParallelItems, c.ItemCost)
}

// SchedulingStrategy returns the parsed dispatch strategy.
func (c Config) SchedulingStrategy() pool.SchedulingStrategyType {
	s, _ := pool.ParseStrategy(c.Strategy)
	return s
}

// PoolOptions returns the worker pool tuning for the parallel phase. The
// rate limiter's burst equals degree so the first wave starts together.
func (c Config) PoolOptions(degree int) []pool.WorkerPoolOption {
	opts := []pool.WorkerPoolOption{pool.WithTaskBuffer(c.TaskBuffer)}
	if c.RateLimit > 0 {
		opts = append(opts, pool.WithRateLimit(c.RateLimit, max(degree, 1)))
	}
	return opts
}
