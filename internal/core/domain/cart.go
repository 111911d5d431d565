package domain

import "github.com/shopspring/decimal"

// CartEntry is a snapshot of a product taken at reservation time.
// UnitPrice is copied from the catalog and is not affected by later
// catalog changes. Quantity is the amount reserved, not remaining stock.
type CartEntry struct {
	Ref       ProductRef
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Cart holds the entries of one customer session, in insertion order.
// It has no identity beyond the session and is discarded after checkout
// or abandonment.
type Cart struct {
	entries []CartEntry
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(e CartEntry) {
	c.entries = append(c.entries, e)
}

func (c *Cart) Entries() []CartEntry {
	return c.entries
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}
