// Package model holds the wallet domain types shared across the service.
package model

// Coin identifies a supported ledger.
type Coin string

const (
	BTC  Coin = "BTC"
	DOGE Coin = "DOGE"
	LTC  Coin = "LTC"
	RVN  Coin = "RVN"
	DGB  Coin = "DGB"
	ARRR Coin = "ARRR"
	QORT Coin = "QORT"
)

// Coins lists every supported coin in display order.
func Coins() []Coin {
	return []Coin{BTC, DOGE, LTC, RVN, DGB, ARRR, QORT}
}

// ParseCoin maps a ticker string onto a Coin, reporting whether it is supported.
func ParseCoin(s string) (Coin, bool) {
	switch Coin(s) {
	case BTC, DOGE, LTC, RVN, DGB, ARRR, QORT:
		return Coin(s), true
	}
	return "", false
}
