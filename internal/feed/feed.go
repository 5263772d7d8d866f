// Package feed keeps the dashboard's view of one coin's wallet fresh: the
// address, the balance and the transaction history, refreshed on a fixed
// cadence and replaced wholesale on every fetch. The client never computes
// balances from history itself; the bridge's answers are the only truth.
package feed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nimbuswallet/walletdash-backend/internal/clock"
	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultFetchCeiling = 3 * time.Minute
)

// Config carries the feed's timing knobs.
type Config struct {
	// PollInterval is the cadence of the recurring balance+history refresh.
	PollInterval time.Duration
	// FetchCeiling bounds balance and history fetches; a fetch that exceeds
	// it resolves to a failure instead of hanging.
	FetchCeiling time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.FetchCeiling <= 0 {
		c.FetchCeiling = defaultFetchCeiling
	}
	return c
}

// Feed owns the wallet snapshot and transaction list for one coin.
type Feed struct {
	client  WalletClient
	coin    model.Coin
	cfg     Config
	metrics FetchMetrics
	logger  *zap.Logger

	mu      sync.Mutex
	snap    model.WalletSnapshot
	entries []model.LedgerEntry
	stale   bool
}

// New builds a feed for one coin. Zero config fields fall back to defaults.
func New(client WalletClient, coin model.Coin, cfg Config, metrics FetchMetrics, logger *zap.Logger) *Feed {
	return &Feed{
		client:  client,
		coin:    coin,
		cfg:     cfg.withDefaults(),
		metrics: metrics,
		logger:  logger,
		snap:    model.WalletSnapshot{Coin: coin},
	}
}

// Activate performs the initial load and arms the recurring refresh. The
// three initial fetches run concurrently and all must settle, successfully
// or not, before the refresh timer is armed. The returned handle owns the
// schedule; the caller must Stop it, after which no refresh runs again.
func (f *Feed) Activate(ctx context.Context) *clock.Ticker {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		f.fetchAddress(ctx)
	}()
	go func() {
		defer wg.Done()
		f.fetchBalance(ctx)
	}()
	go func() {
		defer wg.Done()
		f.fetchTransactions(ctx)
	}()
	wg.Wait()

	f.logger.Info("feed activated",
		zap.String("coin", string(f.coin)),
		zap.Duration("poll_interval", f.cfg.PollInterval))

	return clock.Every(f.cfg.PollInterval, func() {
		f.Refresh(ctx)
	})
}

// Refresh re-fetches balance and transaction history concurrently. The
// address is not re-fetched; it does not change for a wallet. Refreshes are
// idempotent full-replacement reads, so overlapping invocations simply
// resolve last-writer-wins.
func (f *Feed) Refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.fetchBalance(ctx)
	}()
	go func() {
		defer wg.Done()
		f.fetchTransactions(ctx)
	}()
	wg.Wait()
}

// MarkStale flags the balance as suspect until the next successful fetch.
func (f *Feed) MarkStale() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stale = true
}

// Snapshot returns the current wallet snapshot and whether it is stale.
func (f *Feed) Snapshot() (model.WalletSnapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, f.stale
}

// Entries returns a copy of the current transaction list.
func (f *Feed) Entries() []model.LedgerEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.LedgerEntry(nil), f.entries...)
}

// Page derives the display page for the current transaction list.
func (f *Feed) Page(index, rowsPerPage int) Page {
	return BuildPage(f.Entries(), index, rowsPerPage)
}

func (f *Feed) fetchAddress(ctx context.Context) {
	started := time.Now()
	address, err := f.client.UserWallet(ctx, f.coin)
	f.metrics.ObserveFetch("address", err, started)
	if err != nil {
		f.logger.Warn("address fetch failed, keeping empty default",
			zap.String("coin", string(f.coin)),
			zap.Error(err))
		address = ""
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap.Address = address
}

func (f *Feed) fetchBalance(ctx context.Context) {
	started := time.Now()
	balance, err := f.client.WalletBalance(ctx, f.coin, f.cfg.FetchCeiling)
	f.metrics.ObserveFetch("balance", err, started)
	if err != nil {
		f.logger.Warn("balance fetch failed, degrading to zero",
			zap.String("coin", string(f.coin)),
			zap.Error(err))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap.Balance = balance
	if err == nil {
		f.stale = false
	}
}

func (f *Feed) fetchTransactions(ctx context.Context) {
	started := time.Now()
	entries, err := f.client.WalletTransactions(ctx, f.coin, f.cfg.FetchCeiling)
	f.metrics.ObserveFetch("transactions", err, started)
	if err != nil {
		f.logger.Warn("transaction fetch failed, degrading to empty list",
			zap.String("coin", string(f.coin)),
			zap.Error(err))
		entries = nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = entries
}
