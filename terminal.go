package erronaut

import (
	"io"

	"pkt.systems/erronaut/internal/istty"
)

type fdWriter interface {
	Fd() uintptr
}

func writerFD(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok {
		return -1
	}
	return int(f.Fd())
}

func isTerminal(w io.Writer) bool {
	return istty.IsTerminal(writerFD(w))
}

// terminalWidth is the column count of w when it is a terminal, or
// fallbackColumns otherwise.
func terminalWidth(w io.Writer) int {
	if cols, ok := istty.Width(writerFD(w)); ok {
		return cols
	}
	return fallbackColumns
}
