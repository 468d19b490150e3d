package erronaut

import (
	"context"
	"time"
)

const minEveryInterval = time.Millisecond

// AfterFunc is time.AfterFunc with panics in fn printed and handled per the
// panic policy.
func (i *Interceptor) AfterFunc(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, func() {
		i.protect(fn)
	})
}

// Every calls fn every d until ctx is done. Panics in fn are printed and
// handled per the panic policy. Intervals below a millisecond are raised to
// one. The returned channel is closed when the loop stops.
func (i *Interceptor) Every(ctx context.Context, d time.Duration, fn func()) <-chan struct{} {
	if ctx == nil {
		ctx = context.Background()
	}
	if d < minEveryInterval {
		d = minEveryInterval
	}
	done := make(chan struct{})
	ticker := time.NewTicker(d)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				i.protect(fn)
			}
		}
	}()
	return done
}

func (i *Interceptor) protect(fn func()) {
	defer i.recoverAsync()
	fn()
}
