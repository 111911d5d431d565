package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Receipt is the read-only summary produced by checkout. Lines keep the
// cart's insertion order; Total is the sum of the line totals.
type Receipt struct {
	ID       string
	Lines    []ReceiptLine
	Total    decimal.Decimal
	IssuedAt time.Time
}
