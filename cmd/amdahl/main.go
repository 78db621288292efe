// Command amdahl demonstrates Amdahl's Law by timing a fixed workload run
// serially and then with a chosen degree of parallelism.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/utkarsh5026/amdahl/internal/bench"
	"github.com/utkarsh5026/amdahl/internal/config"
	"github.com/utkarsh5026/amdahl/internal/console"
	"github.com/utkarsh5026/amdahl/internal/cpu"
	"github.com/utkarsh5026/amdahl/internal/logging"
	"github.com/utkarsh5026/amdahl/internal/report"
)

var red = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = red.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger := logging.New(stderr, cfg.Verbose)
	defer func() {
		_ = logger.Sync()
	}()

	w, err := cfg.Workload()
	if err != nil {
		_, _ = red.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	in := bufio.NewReader(stdin)
	processors := cpu.LogicalCount()

	var degree int
	if cfg.Degree != 0 {
		degree = bench.ValidDegree(cfg.Degree, processors)
	} else {
		degree = bench.PromptDegree(in, stdout, processors)
	}

	logger.Debug("benchmark configured",
		zap.Int("processors", processors),
		zap.Int("degree", degree),
		zap.String("strategy", cfg.Strategy),
		zap.Int("serialItems", cfg.SerialItems),
		zap.Int("parallelItems", cfg.ParallelItems),
		zap.Duration("itemCost", cfg.ItemCost),
		zap.Float64("rateLimit", cfg.RateLimit),
		zap.Int("taskBuffer", cfg.TaskBuffer))

	opts := []bench.RunnerOption{
		bench.WithLogger(logger),
		bench.WithStrategy(cfg.SchedulingStrategy()),
		bench.WithPoolOptions(cfg.PoolOptions(degree)...),
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = makeProgressBar(2*w.Size(), stderr)
		opts = append(opts, bench.WithItemDone(func() {
			_ = bar.Add(1)
		}))
	}

	res, err := bench.NewRunner(w, degree, opts...).Run(context.Background())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		_, _ = red.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Debug("benchmark finished",
		zap.Float64("speedup", res.Speedup()),
		zap.Float64("predictedSpeedup", res.PredictedSpeedup()))

	if err := report.Text(stdout, res); err != nil {
		logger.Warn("writing results failed", zap.Error(err))
	}
	if cfg.Table {
		if err := report.Table(stdout, res); err != nil {
			logger.Warn("rendering table failed", zap.Error(err))
		}
	}

	if cfg.NoWait {
		return 0
	}

	_ = report.Exit(stdout)
	if err := console.WaitForKey(stdin, in); err != nil {
		logger.Debug("waiting for key failed", zap.Error(err))
	}
	return 0
}

func makeProgressBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Running work items"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
