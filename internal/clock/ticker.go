package clock

import (
	"sync"
	"time"
)

// Ticker is an owned handle for a recurring task. Whoever arms it must call
// Stop; there is no ambient global schedule.
type Ticker struct {
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Every runs fn every interval until the returned handle is stopped. fn runs
// on a single goroutine; a slow invocation delays the next tick rather than
// overlapping it.
func Every(interval time.Duration, fn func()) *Ticker {
	t := &Ticker{stop: make(chan struct{})}
	t.wg.Add(1)

	go func() {
		defer t.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return t
}

// Stop tears the schedule down and waits for a running invocation to finish.
// After Stop returns, fn will not run again.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		close(t.stop)
	})
	t.wg.Wait()
}
