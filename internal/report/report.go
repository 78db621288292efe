// Package report renders benchmark results on the console.
package report

import (
	"fmt"
	"io"

	"github.com/utkarsh5026/amdahl/internal/bench"
)

// ExitPrompt is printed after the results when the program waits for a key.
const ExitPrompt = "Press any key to exit"

// Text writes the three result lines followed by a blank line:
//
//	Serial took  : 5000ms, 1000ms for serial work and 4000ms for parallelizable work
//	Parallel took: 2000ms, 1000ms for serial work and 1000ms for parallelizable work
//	Speedup was 2.50x
func Text(w io.Writer, res bench.Result) error {
	lines := []struct {
		label string
		phase bench.Phase
	}{
		{"Serial took  ", res.SerialRun},
		{"Parallel took", res.ParallelRun},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %dms, %dms for serial work and %dms for parallelizable work\n",
			l.label,
			l.phase.Total().Milliseconds(),
			l.phase.Serial.Milliseconds(),
			l.phase.Parallelizable.Milliseconds(),
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Speedup was %.2fx\n", res.Speedup()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Exit writes the trailing press-any-key line.
func Exit(w io.Writer) error {
	_, err := fmt.Fprintln(w, ExitPrompt)
	return err
}
