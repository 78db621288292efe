//go:build !linux

package cpu

import "runtime"

// LogicalCount returns the number of logical CPUs usable by the process.
func LogicalCount() int {
	return max(runtime.NumCPU(), 1)
}
