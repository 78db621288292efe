package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/utkarsh5026/amdahl/pool"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amdahl.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
	if cfg.SerialItems != 2 || cfg.ParallelItems != 8 || cfg.ItemCost != 500*time.Millisecond {
		t.Errorf("unexpected default workload: %+v", cfg)
	}
	if cfg.Degree != 0 {
		t.Errorf("default must prompt, got degree %d", cfg.Degree)
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{
		"-degree", "3",
		"-serial-items", "1",
		"-parallel-items", "6",
		"-item-cost", "20ms",
		"-strategy", "semaphore",
		"-rate", "40",
		"-task-buffer", "0",
		"-table", "-progress", "-no-wait", "-v",
	}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		Degree:        3,
		SerialItems:   1,
		ParallelItems: 6,
		ItemCost:      20 * time.Millisecond,
		Strategy:      "semaphore",
		RateLimit:     40,
		TaskBuffer:    0,
		Table:         true,
		Progress:      true,
		NoWait:        true,
		Verbose:       true,
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
	if cfg.SchedulingStrategy() != pool.SchedulingSemaphore {
		t.Errorf("SchedulingStrategy() = %v", cfg.SchedulingStrategy())
	}
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeFile(t, `
degree = 2
serial_items = 3
parallel_items = 12
item_cost = "100ms"
strategy = "semaphore"
no_wait = true
rate_limit = 25.5
task_buffer = 16
`)

	cfg, err := Load([]string{"-config", path, "-parallel-items", "4"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Degree != 2 || cfg.SerialItems != 3 || cfg.ItemCost != 100*time.Millisecond {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.ParallelItems != 4 {
		t.Errorf("flag must override file, got parallel_items=%d", cfg.ParallelItems)
	}
	if cfg.RateLimit != 25.5 || cfg.TaskBuffer != 16 {
		t.Errorf("pool tuning not applied: %+v", cfg)
	}
	if cfg.Strategy != "semaphore" || !cfg.NoWait {
		t.Errorf("file values not applied: %+v", cfg)
	}

	w, err := cfg.Workload()
	if err != nil {
		t.Fatalf("Workload() error: %v", err)
	}
	if len(w.Serial) != 3 || len(w.Parallelizable) != 4 {
		t.Errorf("Workload() = %d/%d items", len(w.Serial), len(w.Parallelizable))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"unknown strategy", func(*testing.T) []string { return []string{"-strategy", "lmax"} }},
		{"empty workload", func(*testing.T) []string {
			return []string{"-serial-items", "0", "-parallel-items", "0"}
		}},
		{"negative items", func(*testing.T) []string { return []string{"-serial-items", "-1"} }},
		{"negative rate", func(*testing.T) []string { return []string{"-rate", "-1"} }},
		{"zero cost", func(*testing.T) []string { return []string{"-item-cost", "0s"} }},
		{"positional args", func(*testing.T) []string { return []string{"extra"} }},
		{"missing file", func(*testing.T) []string {
			return []string{"-config", filepath.Join(t.TempDir(), "missing.toml")}
		}},
		{"unknown key", func(t *testing.T) []string {
			return []string{"-config", writeFile(t, "workers = 4\n")}
		}},
		{"bad toml", func(t *testing.T) []string {
			return []string{"-config", writeFile(t, "degree = = 4\n")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args(t), io.Discard)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	if _, err := Load([]string{"-workers", "4"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestConfig_PoolOptions(t *testing.T) {
	cfg := Default()
	if got := len(cfg.PoolOptions(4)); got != 1 {
		t.Errorf("default PoolOptions() = %d options, want 1", got)
	}

	cfg.RateLimit = 10
	if got := len(cfg.PoolOptions(4)); got != 2 {
		t.Errorf("rate-limited PoolOptions() = %d options, want 2", got)
	}
}
