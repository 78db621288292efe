//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// LogicalCount returns the number of logical CPUs this process may run on.
// On Linux that is the size of the scheduler affinity mask, so a process
// started under taskset or a cgroup cpuset sees only its own cores.
func LogicalCount() int {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return max(runtime.NumCPU(), 1)
	}

	if n := mask.Count(); n > 0 {
		return n
	}
	return max(runtime.NumCPU(), 1)
}
