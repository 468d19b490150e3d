package erronaut

import (
	"runtime"
	"strconv"
	"strings"
)

const (
	// UnknownLocation is reported when no caller frame can be attributed.
	UnknownLocation = "unknown location"

	erronautModulePath = "pkt.systems/erronaut"
	maxStackDepth      = 32
)

// Frames of these functions never count as the caller of a report: the
// root package and the runtime and standard library plumbing a report can
// travel through (panics, log.Logger, slog). Other packages of this module,
// such as the CLI, are ordinary callers.
var internalFramePrefixes = []string{
	erronautModulePath + ".",
	"runtime.",
	"log.",
	"log/slog.",
	"time.goFunc",
}

// CallerLocation returns a one-line "at <func> (<file>:<line>)" description of
// the first stack frame outside erronaut. It returns UnknownLocation when the
// stack holds no such frame.
func CallerLocation() string {
	pcs := make([]uintptr, maxStackDepth)
	// Skip runtime.Callers and CallerLocation.
	n := runtime.Callers(2, pcs)
	return locationFromPCs(pcs[:n])
}

// capturePCs records the current stack with the given number of frames
// skipped on top of runtime.Callers and capturePCs itself.
func capturePCs(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

func locationFromPCs(pcs []uintptr) string {
	if len(pcs) == 0 {
		return UnknownLocation
	}
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !isInternalFrame(frame.Function) {
			return formatFrame(frame)
		}
		if !more {
			break
		}
	}
	return UnknownLocation
}

func isInternalFrame(function string) bool {
	for _, prefix := range internalFramePrefixes {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}
	return false
}

func formatFrame(frame runtime.Frame) string {
	var b strings.Builder
	b.WriteString("at ")
	b.WriteString(shortFunctionName(frame.Function))
	if frame.File != "" {
		b.WriteString(" (")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteByte(')')
	}
	return b.String()
}

// shortFunctionName drops the import path but keeps the package name, so
// "github.com/acme/app/store.(*DB).Get" becomes "store.(*DB).Get".
func shortFunctionName(name string) string {
	if name == "" {
		return "unknown"
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
