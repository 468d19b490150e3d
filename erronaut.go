package erronaut

import (
	"context"
	"sync/atomic"
	"time"
)

var defaultConsole atomic.Pointer[Console]

// Default returns the process-wide console. It is built from the environment
// (see ConsoleFromEnv) on first use and writes to os.Stdout.
func Default() *Console {
	if c := defaultConsole.Load(); c != nil {
		return c
	}
	c := ConsoleFromEnv()
	if defaultConsole.CompareAndSwap(nil, c) {
		return c
	}
	return defaultConsole.Load()
}

// SetDefault replaces the process-wide console and returns the previous one
// (nil when none was built yet). Passing nil makes the next Default call
// rebuild it from the environment.
func SetDefault(c *Console) *Console {
	return defaultConsole.Swap(c)
}

// Info prints a blue panel on the default console.
func Info(msg string, keyvals ...any) {
	Default().emit(KindInfo, "", Msg(msg, keyvals...), CallerLocation())
}

// Warn prints a yellow panel on the default console.
func Warn(msg string, keyvals ...any) {
	Default().emit(KindWarn, "", Msg(msg, keyvals...), CallerLocation())
}

// Debug prints a green panel on the default console.
func Debug(msg string, keyvals ...any) {
	Default().emit(KindDebug, "", Msg(msg, keyvals...), CallerLocation())
}

// Report prints p as a panel of the given kind on the default console.
func Report(kind Kind, p Payload) {
	Default().emit(kind, "", p, CallerLocation())
}

// ReportError prints err as an error panel on the default console.
func ReportError(err error) {
	Default().ReportError(err)
}

// Format returns the plain-text panel content for p using the default
// console's options.
func Format(kind Kind, p Payload, location string) string {
	return Default().Format(kind, p, location)
}

// Recover reports a panic in progress through the process-wide interceptor
// and panics again with the same value. Defer it directly at the top of main
// and of goroutines you start yourself:
//
//	func main() {
//		defer erronaut.Recover()
//		...
//	}
func Recover() {
	if r := recover(); r != nil {
		current().reportPanic(r)
		panic(r)
	}
}

// Catch prints err once through the process-wide interceptor and returns it.
func Catch(err error) error {
	return current().Catch(err)
}

// Go runs fn on a new goroutine guarded by the process-wide interceptor.
func Go(fn func()) <-chan struct{} {
	return current().Go(fn)
}

// GoErr runs fn on a new goroutine and prints its error as unhandled.
func GoErr(fn func() error) <-chan struct{} {
	return current().GoErr(fn)
}

// Async runs fn on a new goroutine and returns its Task.
func Async(fn func() error) *Task {
	return current().Async(fn)
}

// AfterFunc is time.AfterFunc guarded by the process-wide interceptor.
func AfterFunc(d time.Duration, fn func()) *time.Timer {
	return current().AfterFunc(d, fn)
}

// Every calls fn every d until ctx is done, guarded by the process-wide
// interceptor.
func Every(ctx context.Context, d time.Duration, fn func()) <-chan struct{} {
	return current().Every(ctx, d, fn)
}
