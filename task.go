package erronaut

import "sync/atomic"

// Task is the result of a function started with Async. Attaching a handler
// (Wait or Catch) before the function fails keeps the failure from being
// printed as an unhandled rejection. A handler attached later still receives
// the error.
type Task struct {
	i        *Interceptor
	origin   []uintptr
	done     chan struct{}
	err      error
	handled  atomic.Bool
	reported atomic.Bool
}

// Async runs fn on a new goroutine and returns its Task. A panic in fn
// becomes the task's error instead of crashing the process.
func (i *Interceptor) Async(fn func() error) *Task {
	t := &Task{
		i:      i,
		origin: capturePCs(0),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

func (t *Task) run(fn func() error) {
	defer close(t.done)
	t.err = t.call(fn)
	if t.err != nil && !t.handled.Load() {
		t.report()
	}
}

func (t *Task) call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Reject(r)
		}
	}()
	return fn()
}

func (t *Task) report() {
	if t.reported.CompareAndSwap(false, true) {
		t.i.report(t.err, t.origin)
	}
}

// Done is closed once the task has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its error.
func (t *Task) Wait() error {
	t.handled.Store(true)
	<-t.done
	return t.err
}

// Catch waits for the task. Without handlers a failure is printed once and
// returned. With handlers each one receives the failure and Catch returns
// nil, the failure counting as handled.
func (t *Task) Catch(handlers ...func(error)) error {
	err := t.Wait()
	if err == nil {
		return nil
	}
	if len(handlers) == 0 {
		t.report()
		return err
	}
	for _, h := range handlers {
		if h != nil {
			h(err)
		}
	}
	return nil
}
