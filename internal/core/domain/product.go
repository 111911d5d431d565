package domain

import "github.com/shopspring/decimal"

// ProductRef identifies a product by its position in the catalog.
// Refs are assigned at append time and stay stable for the process
// lifetime; products are never removed.
type ProductRef int

type Product struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
}
