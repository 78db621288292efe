package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/utkarsh5026/amdahl/internal/bench"
)

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

// Table writes a phase breakdown table plus observed and predicted speedup.
func Table(w io.Writer, res bench.Result) error {
	printSectionHeader(w, "AMDAHL'S LAW BREAKDOWN",
		fmt.Sprintf("  Degree of parallelism: %d (%s dispatch)", res.Degree, res.Strategy),
		fmt.Sprintf("  Parallel fraction:     %.1f%%", res.ParallelFraction()*100))

	table := tablewriter.NewWriter(w)
	table.Header("Phase", "Serial Work", "Parallelizable Work", "Total", "Share of Serial Run")

	serialTotal := res.SerialRun.Total()
	rows := []struct {
		name  string
		phase bench.Phase
	}{
		{"Serial", res.SerialRun},
		{"Parallel", res.ParallelRun},
	}
	for _, r := range rows {
		if err := table.Append(
			r.name,
			formatDuration(r.phase.Serial),
			formatDuration(r.phase.Parallelizable),
			formatDuration(r.phase.Total()),
			formatShare(r.phase.Total(), serialTotal),
		); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	colorFprintf(w, green, "Observed speedup:  %.2fx\n", res.Speedup())
	colorFprintf(w, yellow, "Amdahl prediction: %.2fx (upper bound %.2fx with unlimited workers)\n",
		res.PredictedSpeedup(), bench.AmdahlSpeedup(res.ParallelFraction(), 1<<30))
	fmt.Fprintln(w)
	return nil
}

func formatShare(part, whole time.Duration) string {
	if whole <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}

func printSectionHeader(w io.Writer, title string, descriptions ...string) {
	fmt.Fprintln(w)
	colorFprintln(w, bold, "═══════════════════════════════════════════════════════════")
	colorFprintln(w, bold, title)
	colorFprintln(w, bold, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		fmt.Fprintln(w, desc)
	}
	fmt.Fprintln(w)
}

func colorFprintln(w io.Writer, c *color.Color, a ...any) {
	_, _ = c.Fprintln(w, a...)
}

func colorFprintf(w io.Writer, c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(w, format, a...)
}
