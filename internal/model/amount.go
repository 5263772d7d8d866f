package model

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// unitsPerCoin is the smallest-unit scale shared by every supported ledger.
const unitsPerCoin = 8

// UnitsToDecimal converts a smallest-unit integer amount to its 8-decimal
// display value. The division by 1e8 is exact, no rounding occurs.
func UnitsToDecimal(units int64) decimal.Decimal {
	return decimal.New(units, -unitsPerCoin)
}

// DecimalToUnits converts an 8-decimal amount back to smallest units,
// rejecting values with more than 8 fractional digits.
func DecimalToUnits(amount decimal.Decimal) (int64, error) {
	scaled := amount.Shift(unitsPerCoin)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", amount, unitsPerCoin)
	}
	return scaled.IntPart(), nil
}

// FloatToUnits converts a user-entered floating point amount to smallest
// units. NaN, infinities and negative values are rejected.
func FloatToUnits(value float64) (int64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return int64(amt), nil
}
