package erronaut_test

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"pkt.systems/erronaut"
)

func newTestConsole(w io.Writer) *erronaut.Console {
	return erronaut.NewConsoleWithOptions(w, erronaut.Options{
		NoColor:          true,
		DisableTimestamp: true,
		Width:            400,
	})
}

// useDefaultConsole points the process-wide console at w for the duration of
// the test. Tests calling it must not run in parallel.
func useDefaultConsole(t *testing.T, w io.Writer) *erronaut.Console {
	t.Helper()
	c := newTestConsole(w)
	prev := erronaut.SetDefault(c)
	t.Cleanup(func() {
		erronaut.SetDefault(prev)
	})
	return c
}

// syncBuffer is a goroutine-safe buffer that signals every write.
type syncBuffer struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes chan struct{}
}

func newSyncBuffer() *syncBuffer {
	return &syncBuffer{writes: make(chan struct{}, 64)}
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	n, err := b.buf.Write(p)
	b.mu.Unlock()
	select {
	case b.writes <- struct{}{}:
	default:
	}
	return n, err
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) waitWrites(t *testing.T, n int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for range n {
		select {
		case <-b.writes:
		case <-deadline:
			t.Fatalf("timed out waiting for %d panel(s), output so far: %q", n, b.String())
		}
	}
}

func panelCount(s string) int {
	return strings.Count(s, "╭")
}

func hasANSI(s string) bool {
	return strings.Contains(s, "\x1b[")
}

// panelLines returns the text inside the panel borders with the padding
// trimmed, one entry per line.
func panelLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimPrefix(line, "│")
		line = strings.TrimSuffix(line, "│")
		out = append(out, strings.TrimSpace(line))
	}
	return out
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
