package port

import (
	"context"

	"github.com/rl1809/retail-store/internal/core/domain"
)

type CatalogRepository interface {
	// ListAll returns every product in insertion order. Menu positions
	// are 1-based indices into this sequence, so the order is stable.
	ListAll(ctx context.Context) ([]domain.Product, error)

	// GetByRef returns the product at ref, or domain.ErrNotFound if the
	// ref is out of range.
	GetByRef(ctx context.Context, ref domain.ProductRef) (domain.Product, error)

	// Append adds a product to the end of the catalog and returns its ref.
	// Record validation is the caller's job; the store accepts what it is given.
	Append(ctx context.Context, p domain.Product) (domain.ProductRef, error)

	// AdjustStock applies delta to the product's stock and returns the new
	// value. Fails with domain.ErrInsufficientStock if the result would be
	// negative, leaving the stock unchanged.
	AdjustStock(ctx context.Context, ref domain.ProductRef, delta int) (int, error)
}
