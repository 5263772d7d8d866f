package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletSnapshot is the current address and balance for one coin. A refresh
// replaces the whole snapshot; nothing is merged.
type WalletSnapshot struct {
	Coin    Coin
	Address string
	Balance decimal.Decimal
}

// EntrySide is one input or output of a ledger entry. Amount is in the coin's
// smallest unit (1e8 per whole coin).
type EntrySide struct {
	Address  string `json:"address"`
	InWallet bool   `json:"inWallet"`
	Amount   int64  `json:"amount"`
}

// LedgerEntry is one historical transaction as reported by the wallet bridge.
// TotalAmount is signed: positive means funds came in, zero or negative means
// funds left the wallet or were burned as fees. A nil Timestamp means the
// transaction is still unconfirmed.
type LedgerEntry struct {
	TxHash      string      `json:"txHash"`
	Inputs      []EntrySide `json:"inputs"`
	Outputs     []EntrySide `json:"outputs"`
	TotalAmount int64       `json:"totalAmount"`
	FeeAmount   int64       `json:"feeAmount"`
	Timestamp   *time.Time  `json:"timestamp,omitempty"`
}

// Confirmed reports whether the entry has been timestamped by the ledger.
func (e LedgerEntry) Confirmed() bool {
	return e.Timestamp != nil
}

// SendRequest is a composed outbound transaction. It is consumed once by the
// bridge send call and never retried automatically.
type SendRequest struct {
	Coin      Coin
	Recipient string
	Amount    decimal.Decimal
	Fee       decimal.Decimal
}
