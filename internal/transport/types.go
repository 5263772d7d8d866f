package transport

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nimbuswallet/walletdash-backend/internal/addrcheck"
	"github.com/nimbuswallet/walletdash-backend/internal/feed"
	"github.com/nimbuswallet/walletdash-backend/internal/fees"
	"github.com/nimbuswallet/walletdash-backend/internal/model"
	"github.com/nimbuswallet/walletdash-backend/internal/notify"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// WalletFeed is the read side of one coin's feed.
	WalletFeed interface {
		Snapshot() (model.WalletSnapshot, bool)
		Page(index, rowsPerPage int) feed.Page
	}

	// SendController drives one coin's send flow.
	SendController interface {
		Begin()
		SetRecipient(raw string) addrcheck.Outcome
		SetAmount(amount decimal.Decimal)
		SetFeeRate(rawFeeRate int64) fees.FeeQuote
		Submit(ctx context.Context) error
	}

	// NameResolver looks up a registered name's owning address.
	NameResolver interface {
		NameData(ctx context.Context, name string) (string, bool, error)
	}

	// NotificationStore lists and dismisses active notifications.
	NotificationStore interface {
		Active() []notify.Notification
		Dismiss(id string) bool
	}
)
