// Package addrcheck performs syntactic address validation for every supported
// coin. Checks are purely local: prefix, exact length and alphabet. Checksum
// verification is the wallet bridge's job, not ours.
package addrcheck

import (
	"strings"

	"go.uber.org/zap"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

// Reason classifies why a candidate was rejected. The transport layer maps
// these onto localized messages; no user-facing text is produced here.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonRequired      Reason = "required"
	ReasonInvalidFormat Reason = "invalid-format"
	ReasonTooLong       Reason = "too-long"
	ReasonUnknownCoin   Reason = "unknown-coin"
)

// Outcome is the result of a format check.
type Outcome struct {
	Valid  bool
	Reason Reason
}

func valid() Outcome                { return Outcome{Valid: true} }
func invalid(reason Reason) Outcome { return Outcome{Reason: reason} }

// Checker validates an already-trimmed, non-empty candidate for one coin.
type Checker interface {
	Check(trimmed string) Outcome
}

// Registry dispatches candidates to per-coin checkers. New coins register a
// checker instead of growing a central switch.
type Registry struct {
	logger   *zap.Logger
	checkers map[model.Coin]Checker
}

// NewRegistry builds a registry preloaded with the supported coin formats.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{
		logger:   logger,
		checkers: make(map[model.Coin]Checker),
	}

	r.Register(model.BTC, Forms{
		{Prefix: "1", Length: 34, Alphabet: base58},
		{Prefix: "3", Length: 34, Alphabet: base58},
		{Prefix: "bc1", Length: 42, Alphabet: bech32},
	})
	r.Register(model.DOGE, Forms{
		{Prefix: "D", Length: 34, Alphabet: base58},
	})
	r.Register(model.LTC, Forms{
		{Prefix: "L", Length: 34, Alphabet: base58},
		{Prefix: "M", Length: 34, Alphabet: base58},
		{Prefix: "ltc1", Length: 43, Alphabet: bech32},
	})
	r.Register(model.RVN, Forms{
		{Prefix: "R", Length: 34, Alphabet: base58},
	})
	r.Register(model.DGB, Forms{
		{Prefix: "D", Length: 34, Alphabet: base58},
		{Prefix: "S", Length: 34, Alphabet: base58},
		{Prefix: "dgb1", Length: 43, Alphabet: bech32},
	})
	r.Register(model.ARRR, Forms{
		{Prefix: "zs1", Length: 78, Alphabet: alphanumeric},
	})
	r.Register(model.QORT, MinLength(3))

	return r
}

// Register installs or replaces the checker for a coin.
func (r *Registry) Register(coin model.Coin, c Checker) {
	r.checkers[coin] = c
}

// Check trims the candidate and validates it against the coin's format.
// Empty or all-whitespace input is always rejected as required. An
// unregistered coin is a policy gap: it is rejected and logged, never
// silently accepted.
func (r *Registry) Check(coin model.Coin, raw string) Outcome {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalid(ReasonRequired)
	}
	checker, ok := r.checkers[coin]
	if !ok {
		r.logger.Warn("no address checker registered for coin", zap.String("coin", string(coin)))
		return invalid(ReasonUnknownCoin)
	}
	return checker.Check(trimmed)
}

// Form is one accepted address shape: a literal prefix, an exact total
// length, and the alphabet the characters after the prefix must come from.
type Form struct {
	Prefix   string
	Length   int
	Alphabet Alphabet
}

func (f Form) matches(s string) bool {
	if len(s) != f.Length || !strings.HasPrefix(s, f.Prefix) {
		return false
	}
	return f.Alphabet.contains(s[len(f.Prefix):])
}

// Forms checks a candidate against a set of accepted shapes. Input longer
// than every accepted form reports too-long; any other mismatch reports
// invalid-format.
type Forms []Form

// Check implements Checker.
func (fs Forms) Check(trimmed string) Outcome {
	maxLen := 0
	for _, f := range fs {
		if f.matches(trimmed) {
			return valid()
		}
		if f.Length > maxLen {
			maxLen = f.Length
		}
	}
	if len(trimmed) > maxLen {
		return invalid(ReasonTooLong)
	}
	return invalid(ReasonInvalidFormat)
}

// MinLength accepts any candidate of at least n characters. It is the local
// syntactic floor for ledgers where true validity needs a remote lookup.
type MinLength int

// Check implements Checker.
func (m MinLength) Check(trimmed string) Outcome {
	if len(trimmed) < int(m) {
		return invalid(ReasonInvalidFormat)
	}
	return valid()
}
