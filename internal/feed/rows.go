package feed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

// Direction is the display classification of a row. It is driven solely by
// the sign of the entry's precomputed total, never recomputed from the
// inputs and outputs.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// RowSide is one input or output with its display amount.
type RowSide struct {
	Address  string          `json:"address"`
	InWallet bool            `json:"inWallet"`
	Amount   decimal.Decimal `json:"amount"`
}

// Row is one display row of the transaction table.
type Row struct {
	TxHash      string          `json:"txHash"`
	Inputs      []RowSide       `json:"inputs"`
	Outputs     []RowSide       `json:"outputs"`
	Total       decimal.Decimal `json:"total"`
	Fee         decimal.Decimal `json:"fee"`
	Direction   Direction       `json:"direction"`
	Timestamp   *time.Time      `json:"timestamp,omitempty"`
	Unconfirmed bool            `json:"unconfirmed"`
}

// Page is a derived display slice with padding for a short final page.
type Page struct {
	Index       int   `json:"index"`
	RowsPerPage int   `json:"rowsPerPage"`
	Total       int   `json:"total"`
	Rows        []Row `json:"rows"`
	EmptyRows   int   `json:"emptyRows"`
}

// BuildPage derives the visible page from raw ledger entries.
func BuildPage(entries []model.LedgerEntry, index, rowsPerPage int) Page {
	start, end := Slice(len(entries), index, rowsPerPage)

	rows := make([]Row, 0, end-start)
	for _, e := range entries[start:end] {
		rows = append(rows, buildRow(e))
	}

	return Page{
		Index:       index,
		RowsPerPage: rowsPerPage,
		Total:       len(entries),
		Rows:        rows,
		EmptyRows:   EmptyRows(len(entries), index, rowsPerPage),
	}
}

func buildRow(e model.LedgerEntry) Row {
	direction := DirectionDebit
	if e.TotalAmount > 0 {
		direction = DirectionCredit
	}

	return Row{
		TxHash:      e.TxHash,
		Inputs:      buildSides(e.Inputs),
		Outputs:     buildSides(e.Outputs),
		Total:       model.UnitsToDecimal(e.TotalAmount),
		Fee:         model.UnitsToDecimal(e.FeeAmount),
		Direction:   direction,
		Timestamp:   e.Timestamp,
		Unconfirmed: e.Timestamp == nil,
	}
}

func buildSides(sides []model.EntrySide) []RowSide {
	out := make([]RowSide, 0, len(sides))
	for _, s := range sides {
		out = append(out, RowSide{
			Address:  s.Address,
			InWallet: s.InWallet,
			Amount:   model.UnitsToDecimal(s.Amount),
		})
	}
	return out
}
