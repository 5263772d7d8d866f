// Package debounce provides a generic trailing-edge debouncer: rapid
// triggers collapse into a single callback carrying the latest value.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces Trigger calls and invokes the callback with the most
// recent value once the input has been quiet for the configured delay.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)
	in    chan T

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Debouncer and starts its background loop.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	d := &Debouncer[T]{
		delay: delay,
		fn:    fn,
		in:    make(chan T, 1),
		stop:  make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Trigger records a new value, displacing any value not yet delivered.
// Triggering a stopped debouncer is a no-op.
func (d *Debouncer[T]) Trigger(v T) {
	select {
	case <-d.stop:
		return
	default:
	}

	for {
		select {
		case d.in <- v:
			return
		default:
		}
		// Channel full: drop the superseded value and retry.
		select {
		case <-d.in:
		default:
		}
	}
}

// Stop cancels any pending delivery and waits for a running callback to
// finish. No callback fires after Stop returns. Safe to call more than once.
func (d *Debouncer[T]) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
	d.wg.Wait()
}

func (d *Debouncer[T]) run() {
	defer d.wg.Done()

	timer := time.NewTimer(d.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var (
		pending T
		armed   bool
	)

	for {
		select {
		case v := <-d.in:
			pending = v
			armed = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(d.delay)
		case <-timer.C:
			if armed {
				armed = false
				d.fn(pending)
			}
		case <-d.stop:
			return
		}
	}
}
