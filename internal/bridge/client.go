package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

// Actions consumed from the wallet bridge.
const (
	ActionGetUserWallet    = "GET_USER_WALLET"
	ActionGetWalletBalance = "GET_WALLET_BALANCE"
	ActionGetUserWalletTxs = "GET_USER_WALLET_TRANSACTIONS"
	ActionSendCoin         = "SEND_COIN"
	ActionGetNameData      = "GET_NAME_DATA"
)

// Client provides typed access to the bridge actions the dashboard consumes.
type Client struct {
	inv Invoker
}

// NewClient wraps an Invoker with typed action methods.
func NewClient(inv Invoker) *Client {
	return &Client{inv: inv}
}

type coinParams struct {
	Coin model.Coin `json:"coin"`
}

// UserWallet fetches the wallet address for a coin. The call is unbounded;
// it fails only on transport errors or caller cancellation.
func (c *Client) UserWallet(ctx context.Context, coin model.Coin) (string, error) {
	data, err := c.inv.Invoke(ctx, ActionGetUserWallet, coinParams{Coin: coin}, 0)
	if err != nil {
		return "", err
	}
	var payload struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", &TransportError{Action: ActionGetUserWallet, Err: fmt.Errorf("decode payload: %w", err)}
	}
	return payload.Address, nil
}

// WalletBalance fetches the current balance, bounded by timeout.
func (c *Client) WalletBalance(ctx context.Context, coin model.Coin, timeout time.Duration) (decimal.Decimal, error) {
	data, err := c.inv.Invoke(ctx, ActionGetWalletBalance, coinParams{Coin: coin}, timeout)
	if err != nil {
		return decimal.Zero, err
	}
	balance, err := parseDecimal(data)
	if err != nil {
		return decimal.Zero, &TransportError{Action: ActionGetWalletBalance, Err: fmt.Errorf("decode payload: %w", err)}
	}
	return balance, nil
}

// wireTransaction is the bridge's ledger entry shape; timestamps travel as
// millisecond epochs and are absent for unconfirmed transactions.
type wireTransaction struct {
	TxHash      string            `json:"txHash"`
	Inputs      []model.EntrySide `json:"inputs"`
	Outputs     []model.EntrySide `json:"outputs"`
	TotalAmount int64             `json:"totalAmount"`
	FeeAmount   int64             `json:"feeAmount"`
	Timestamp   *int64            `json:"timestamp,omitempty"`
}

// WalletTransactions fetches the full transaction history, bounded by
// timeout. The returned list replaces any previous one wholesale.
func (c *Client) WalletTransactions(ctx context.Context, coin model.Coin, timeout time.Duration) ([]model.LedgerEntry, error) {
	data, err := c.inv.Invoke(ctx, ActionGetUserWalletTxs, coinParams{Coin: coin}, timeout)
	if err != nil {
		return nil, err
	}
	var wire []wireTransaction
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &TransportError{Action: ActionGetUserWalletTxs, Err: fmt.Errorf("decode payload: %w", err)}
	}
	entries := make([]model.LedgerEntry, 0, len(wire))
	for _, tx := range wire {
		entry := model.LedgerEntry{
			TxHash:      tx.TxHash,
			Inputs:      tx.Inputs,
			Outputs:     tx.Outputs,
			TotalAmount: tx.TotalAmount,
			FeeAmount:   tx.FeeAmount,
		}
		if tx.Timestamp != nil {
			ts := time.UnixMilli(*tx.Timestamp).UTC()
			entry.Timestamp = &ts
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

type sendParams struct {
	Coin      model.Coin `json:"coin"`
	Recipient string     `json:"recipient"`
	Amount    int64      `json:"amount"`
	Fee       int64      `json:"fee"`
}

// SendCoin submits a composed transaction and returns the bridge's
// acceptance acknowledgment. Amounts travel in smallest units, the same
// scale the ledger entries use. The call is unbounded and never retried
// here.
func (c *Client) SendCoin(ctx context.Context, req model.SendRequest) (string, error) {
	amount, err := model.DecimalToUnits(req.Amount)
	if err != nil {
		return "", fmt.Errorf("send amount: %w", err)
	}
	fee, err := model.DecimalToUnits(req.Fee)
	if err != nil {
		return "", fmt.Errorf("send fee: %w", err)
	}
	params := sendParams{
		Coin:      req.Coin,
		Recipient: req.Recipient,
		Amount:    amount,
		Fee:       fee,
	}
	data, err := c.inv.Invoke(ctx, ActionSendCoin, params, 0)
	if err != nil {
		return "", err
	}
	var ack string
	if err := json.Unmarshal(data, &ack); err != nil {
		// Some bridge builds acknowledge with an object; keep the raw text.
		ack = string(data)
	}
	return ack, nil
}

type nameParams struct {
	Name string `json:"name"`
}

// NameData resolves a registered name to its owning address. A null payload
// means the name is unregistered, which is an outcome, not an error.
func (c *Client) NameData(ctx context.Context, name string) (string, bool, error) {
	data, err := c.inv.Invoke(ctx, ActionGetNameData, nameParams{Name: name}, 0)
	if err != nil {
		return "", false, err
	}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	var payload struct {
		Owner string `json:"owner"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", false, &TransportError{Action: ActionGetNameData, Err: fmt.Errorf("decode payload: %w", err)}
	}
	if payload.Owner == "" {
		return "", false, nil
	}
	return payload.Owner, true, nil
}

// parseDecimal accepts a bare JSON number or a quoted decimal string.
func parseDecimal(data json.RawMessage) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return decimal.NewFromString(s)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(n.String())
}
