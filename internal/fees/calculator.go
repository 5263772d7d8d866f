// Package fees derives display fees and max-sendable figures from the raw
// per-kilobyte fee rate reported by the wallet bridge.
package fees

import (
	"github.com/shopspring/decimal"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

// coinDecimals is the fixed display precision shared by all supported coins.
const coinDecimals = 8

// FeeQuote carries the derived cost figures for one coin at one fee rate.
type FeeQuote struct {
	Coin model.Coin
	// PerUnitRate is the raw network fee-rate signal, unchanged.
	PerUnitRate int64
	// RoundedFee is the per-byte-equivalent rate in whole coins, rounded up
	// to 8 decimal places. Rounding is always up: a fee must never be
	// under-quoted.
	RoundedFee decimal.Decimal
	// EstimatedNetworkFee is RoundedFee scaled by the coin's configured
	// multiplier, the cost figure used for max-sendable computation.
	EstimatedNetworkFee decimal.Decimal
}

// Zero reports whether the quote carries no usable fee.
func (q FeeQuote) Zero() bool {
	return q.EstimatedNetworkFee.Sign() <= 0
}

// Calculator converts raw fee-rate signals into FeeQuotes using per-coin
// multipliers supplied by configuration.
type Calculator struct {
	multipliers map[model.Coin]decimal.Decimal
}

// NewCalculator builds a calculator from per-coin fee multipliers.
func NewCalculator(multipliers map[model.Coin]float64) *Calculator {
	c := &Calculator{multipliers: make(map[model.Coin]decimal.Decimal, len(multipliers))}
	for coin, m := range multipliers {
		c.multipliers[coin] = decimal.NewFromFloat(m)
	}
	return c
}

// Quote derives the fee figures for a coin. A zero or negative raw rate
// still yields a well-formed zero quote; submission of zero-fee requests is
// blocked downstream, not here.
func (c *Calculator) Quote(rawFeeRate int64, coin model.Coin) FeeQuote {
	quote := FeeQuote{Coin: coin, PerUnitRate: rawFeeRate}
	if rawFeeRate <= 0 {
		quote.RoundedFee = decimal.Zero
		quote.EstimatedNetworkFee = decimal.Zero
		return quote
	}

	// rate / 1000 (per-kB to per-byte) / 1e8 (smallest units to coins)
	// is exactly rate * 10^-11, rounded up to 8 places.
	quote.RoundedFee = decimal.New(rawFeeRate, -11).RoundUp(coinDecimals)

	multiplier, ok := c.multipliers[coin]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}
	quote.EstimatedNetworkFee = quote.RoundedFee.Mul(multiplier)
	return quote
}

// MaxSendable returns the largest amount spendable from balance once the
// quoted network fee is set aside, floored at zero.
func (q FeeQuote) MaxSendable(balance decimal.Decimal) decimal.Decimal {
	remaining := balance.Sub(q.EstimatedNetworkFee)
	if remaining.Sign() < 0 {
		return decimal.Zero
	}
	return remaining
}
