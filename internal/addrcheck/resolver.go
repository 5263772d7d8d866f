package addrcheck

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nimbuswallet/walletdash-backend/pkg/debounce"
)

// LookupResult is the outcome of one name resolution.
type LookupResult struct {
	Name  string
	Owner string
	Found bool
	Err   error
}

// Resolver answers the question a local syntactic check cannot: whether a
// QORT address or human-readable name actually exists on the ledger. Input
// is debounced so rapid edits collapse into one remote lookup, and a result
// is only surfaced while it still matches the latest input.
type Resolver struct {
	lookup NameLookup
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	deb    *debounce.Debouncer[string]

	mu      sync.Mutex
	want    string
	pending bool
	latest  *LookupResult
}

// NewResolver builds a resolver debouncing input by delay.
func NewResolver(lookup NameLookup, delay time.Duration, logger *zap.Logger) *Resolver {
	r := &Resolver{
		lookup: lookup,
		logger: logger,
	}
	r.ctx, r.cancel = context.WithCancel(context.Background())
	r.deb = debounce.New(delay, r.fire)
	return r
}

// Submit records a new candidate name. The resolver enters the pending state
// immediately; the remote lookup fires once input has settled.
func (r *Resolver) Submit(name string) {
	name = strings.TrimSpace(name)

	r.mu.Lock()
	r.want = name
	r.pending = true
	r.latest = nil
	r.mu.Unlock()

	r.deb.Trigger(name)
}

// Pending reports whether a lookup for the current input is still in flight
// or waiting on the debounce window.
func (r *Resolver) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Latest returns the result for the current input, if one has arrived.
func (r *Resolver) Latest() (LookupResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest == nil {
		return LookupResult{}, false
	}
	return *r.latest, true
}

// Close stops the debouncer and cancels any in-flight lookup. No state
// changes after Close returns.
func (r *Resolver) Close() {
	r.deb.Stop()
	r.cancel()
}

func (r *Resolver) fire(name string) {
	owner, found, err := r.lookup.NameData(r.ctx, name)
	if err != nil {
		r.logger.Warn("name lookup failed",
			zap.String("name", name),
			zap.Error(err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if name != r.want {
		// Input moved on while the lookup was in flight.
		return
	}
	r.latest = &LookupResult{Name: name, Owner: owner, Found: found, Err: err}
	r.pending = false
}
