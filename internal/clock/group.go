package clock

import "sync"

// TickerGroup collects tickers armed from concurrent goroutines so teardown
// cannot miss one. The zero value is ready to use.
type TickerGroup struct {
	mu      sync.Mutex
	stopped bool
	tickers []*Ticker
}

// Add registers a ticker for group teardown. A ticker added after Stop is
// stopped immediately instead of being tracked.
func (g *TickerGroup) Add(t *Ticker) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		t.Stop()
		return
	}
	g.tickers = append(g.tickers, t)
	g.mu.Unlock()
}

// Stop stops every registered ticker and marks the group closed.
func (g *TickerGroup) Stop() {
	g.mu.Lock()
	g.stopped = true
	tickers := g.tickers
	g.tickers = nil
	g.mu.Unlock()

	for _, t := range tickers {
		t.Stop()
	}
}
