package erronaut

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
)

// PanicPolicy decides what an asynchronous boundary (Go, GoErr, AfterFunc,
// Every) does once a recovered panic has been printed.
type PanicPolicy int8

const (
	// PanicRepanic panics again with the original value, so the runtime's
	// default crash still happens.
	PanicRepanic PanicPolicy = iota
	// PanicContinue swallows the panic. Every keeps ticking.
	PanicContinue
)

// ParsePanicPolicy accepts "repanic", "panic", "crash", "continue", "recover"
// and "swallow" (case insensitive).
func ParsePanicPolicy(value string) (PanicPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "repanic", "panic", "crash":
		return PanicRepanic, true
	case "continue", "recover", "swallow":
		return PanicContinue, true
	default:
		return PanicRepanic, false
	}
}

func (p PanicPolicy) String() string {
	if p == PanicContinue {
		return "continue"
	}
	return "repanic"
}

// Interceptor routes panics and unhandled errors at explicit boundaries
// through a Console. Use Install for the process-wide instance or
// NewInterceptor for one you pass around yourself.
type Interceptor struct {
	console *Console
	policy  PanicPolicy
}

// InstallOption configures an Interceptor.
type InstallOption func(*Interceptor)

// WithConsole pins the console the interceptor prints to. Without it the
// interceptor prints to Default() at report time.
func WithConsole(c *Console) InstallOption {
	return func(i *Interceptor) {
		i.console = c
	}
}

// WithPanicPolicy sets the policy applied at asynchronous boundaries.
func WithPanicPolicy(p PanicPolicy) InstallOption {
	return func(i *Interceptor) {
		i.policy = p
	}
}

// NewInterceptor returns an Interceptor that is not installed process-wide.
func NewInterceptor(opts ...InstallOption) *Interceptor {
	i := &Interceptor{policy: PanicRepanic}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

var (
	installOnce sync.Once
	installed   atomic.Pointer[Interceptor]
)

// Install creates the process-wide interceptor on first call and returns it.
// Later calls return the same instance and ignore their options. The panic
// policy defaults to the ERRONAUT_PANIC_POLICY environment variable, then to
// PanicRepanic.
//
// Package-level boundaries (Recover, Go, New, ...) install lazily, so calling
// Install is only needed to pass options.
func Install(opts ...InstallOption) *Interceptor {
	installOnce.Do(func() {
		base := make([]InstallOption, 0, len(opts)+1)
		if value, ok := lookupEnv(defaultEnvPrefix, "PANIC_POLICY"); ok {
			if policy, ok := ParsePanicPolicy(value); ok {
				base = append(base, WithPanicPolicy(policy))
			}
		}
		installed.Store(NewInterceptor(append(base, opts...)...))
	})
	return installed.Load()
}

// Installed reports whether the process-wide interceptor exists.
func Installed() bool {
	return installed.Load() != nil
}

func current() *Interceptor {
	if i := installed.Load(); i != nil {
		return i
	}
	return Install()
}

// Console returns the console reports go to.
func (i *Interceptor) Console() *Console {
	if i.console != nil {
		return i.console
	}
	return Default()
}

// Policy returns the asynchronous panic policy.
func (i *Interceptor) Policy() PanicPolicy {
	return i.policy
}

// Recover reports a panic in progress and panics again with the same value.
// It must be deferred directly:
//
//	func main() {
//		defer interceptor.Recover()
//		...
//	}
func (i *Interceptor) Recover() {
	if r := recover(); r != nil {
		i.reportPanic(r)
		panic(r)
	}
}

// Catch prints err (once) and returns it unchanged, so it can sit in a
// return statement without changing what the caller sees.
func (i *Interceptor) Catch(err error) error {
	i.report(err, nil)
	return err
}

// Go runs fn on a new goroutine. A panic is printed and then handled per the
// panic policy. The returned channel is closed when the goroutine ends.
func (i *Interceptor) Go(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer i.recoverAsync()
		fn()
	}()
	return done
}

// GoErr runs fn on a new goroutine. Nobody receives its error, so a non-nil
// error is printed as an unhandled rejection attributed to the GoErr call
// site when it carries no location of its own.
func (i *Interceptor) GoErr(fn func() error) <-chan struct{} {
	origin := capturePCs(0)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer i.recoverAsync()
		if err := fn(); err != nil {
			i.report(err, origin)
		}
	}()
	return done
}

func (i *Interceptor) recoverAsync() {
	if r := recover(); r != nil {
		i.reportPanic(r)
		if i.policy == PanicRepanic {
			panic(r)
		}
	}
}

func (i *Interceptor) reportPanic(r any) {
	i.report(Reject(r), nil)
}

// report prints err unless it is, or wraps, an *Error that was printed
// already. origin locates errors that carry no construction site; nil means
// the caller of the boundary. report never panics.
func (i *Interceptor) report(err error, origin []uintptr) {
	if err == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	var e *Error
	if errors.As(err, &e) && !e.printed.CompareAndSwap(false, true) {
		return
	}
	i.Console().reportError(err, origin)
}
