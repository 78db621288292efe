package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDegree turns operator input into a degree of parallelism in
// [1, processors]. Anything that is not an integer in that range, including
// an empty line, yields processors. No error is ever reported.
func ParseDegree(input string, processors int) int {
	processors = max(processors, 1)

	text := strings.TrimSpace(input)
	if text == "" {
		return processors
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return processors
	}
	return ValidDegree(n, processors)
}

// ValidDegree returns n if it lies in [1, processors] and processors
// otherwise.
func ValidDegree(n, processors int) int {
	processors = max(processors, 1)
	if n < 1 || n > processors {
		return processors
	}
	return n
}

// PromptDegree asks for a degree of parallelism on out and reads one line
// from in. EOF or a read error falls back to processors like any other bad
// input.
func PromptDegree(in *bufio.Reader, out io.Writer, processors int) int {
	processors = max(processors, 1)
	_, _ = fmt.Fprintf(out,
		"Enter the number of processors you want to use (1 to %d, or press <enter> for %d):",
		processors, processors)

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return processors
	}
	return ParseDegree(line, processors)
}
