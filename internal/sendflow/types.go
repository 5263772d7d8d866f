package sendflow

import (
	"context"
	"time"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
	"github.com/nimbuswallet/walletdash-backend/internal/notify"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sender submits a composed transaction to the wallet bridge.
	Sender interface {
		SendCoin(ctx context.Context, req model.SendRequest) (string, error)
	}

	// Refresher is the slice of the transaction feed the controller drives
	// during reconciliation.
	Refresher interface {
		MarkStale()
		Refresh(ctx context.Context)
	}

	// Notifier surfaces send outcomes to the user.
	Notifier interface {
		Push(kind notify.Kind, message string) string
	}

	// SubmitMetrics records submission outcomes and reconciliation runs.
	SubmitMetrics interface {
		ObserveSubmit(err error, started time.Time)
		ObserveReconcile(branch string)
	}
)
