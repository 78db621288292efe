package console

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWaitForKey_BufferedInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("4\nq"))
	if _, err := in.ReadString('\n'); err != nil {
		t.Fatal(err)
	}

	if err := WaitForKey(nil, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Buffered() != 0 {
		t.Errorf("expected the key to be consumed, %d bytes left", in.Buffered())
	}
}

func TestWaitForKey_EOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	if err := WaitForKey(nil, in); err != nil {
		t.Errorf("EOF must count as a keypress, got %v", err)
	}
}

func TestWaitForKey_NonTerminalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Fatal("regular file reported as terminal")
	}
	if err := WaitForKey(f, bufio.NewReader(f)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWaitForKey_NoInput(t *testing.T) {
	if err := WaitForKey(nil, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
