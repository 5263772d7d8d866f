package feed

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// WalletClient is the slice of the bridge the feed reads from. Balance
	// and transaction fetches are bounded by timeout; the address fetch is
	// not.
	WalletClient interface {
		UserWallet(ctx context.Context, coin model.Coin) (string, error)
		WalletBalance(ctx context.Context, coin model.Coin, timeout time.Duration) (decimal.Decimal, error)
		WalletTransactions(ctx context.Context, coin model.Coin, timeout time.Duration) ([]model.LedgerEntry, error)
	}

	// FetchMetrics records fetch outcomes and durations.
	FetchMetrics interface {
		ObserveFetch(fetch string, err error, started time.Time)
	}
)
