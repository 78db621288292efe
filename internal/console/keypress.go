// Package console handles the interactive end of a run.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKey blocks until the operator presses a key.
//
// Input already buffered in buffered counts as a keypress. Otherwise, when
// tty is a terminal it is put in raw mode so a single key is enough; when it
// is not (pipes, files, tests) one byte is read from buffered. EOF is treated
// as a keypress.
func WaitForKey(tty *os.File, buffered *bufio.Reader) error {
	if buffered != nil && buffered.Buffered() > 0 {
		_, err := buffered.ReadByte()
		return err
	}

	if tty != nil && IsTerminal(tty) {
		fd := int(tty.Fd())
		state, err := term.MakeRaw(fd)
		if err == nil {
			defer func() {
				_ = term.Restore(fd, state)
			}()
			return readOne(tty)
		}
	}

	if buffered == nil {
		return nil
	}
	return readOne(buffered)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func readOne(r io.Reader) error {
	var b [1]byte
	_, err := r.Read(b[:])
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
