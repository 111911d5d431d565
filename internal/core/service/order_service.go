package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rl1809/retail-store/internal/core/domain"
	"github.com/rl1809/retail-store/internal/port"
)

// OrderService runs the customer reservation protocol: validate
// availability, debit the catalog, snapshot the product into the cart,
// and turn the finished cart into a receipt.
type OrderService struct {
	catalog port.CatalogRepository
}

func NewOrderService(catalog port.CatalogRepository) *OrderService {
	return &OrderService{catalog: catalog}
}

// Reserve debits quantity units of the product at ref from the catalog
// and appends a snapshot entry to cart. The debit is immediate and
// irrevocable: abandoning the cart does not restore stock.
//
// Fails with domain.ErrInvalidQuantity if quantity is non-positive or
// exceeds the current stock, and with domain.ErrNotFound if ref is out
// of range. On failure neither the catalog nor the cart is touched.
func (s *OrderService) Reserve(ctx context.Context, cart *domain.Cart, ref domain.ProductRef, quantity int) (domain.CartEntry, error) {
	if quantity <= 0 {
		return domain.CartEntry{}, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidQuantity, quantity)
	}

	p, err := s.catalog.GetByRef(ctx, ref)
	if err != nil {
		return domain.CartEntry{}, err
	}
	if quantity > p.Stock {
		return domain.CartEntry{}, fmt.Errorf("%w: requested %d, available %d", domain.ErrInvalidQuantity, quantity, p.Stock)
	}

	if _, err := s.catalog.AdjustStock(ctx, ref, -quantity); err != nil {
		return domain.CartEntry{}, fmt.Errorf("debit stock: %w", err)
	}

	entry := domain.CartEntry{
		Ref:       ref,
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.Price,
		Quantity:  quantity,
	}
	cart.Add(entry)

	return entry, nil
}

// Checkout computes the receipt for the cart. Stock was already debited
// at reservation time, so checkout neither re-validates nor mutates the
// catalog. Fails with domain.ErrEmptyCart if the cart has no entries.
func (s *OrderService) Checkout(cart *domain.Cart) (*domain.Receipt, error) {
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	entries := cart.Entries()
	lines := make([]domain.ReceiptLine, 0, len(entries))
	total := decimal.Zero
	for _, e := range entries {
		lineTotal := e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
		lines = append(lines, domain.ReceiptLine{
			Name:      e.Name,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return &domain.Receipt{
		ID:       uuid.NewString(),
		Lines:    lines,
		Total:    total,
		IssuedAt: time.Now(),
	}, nil
}
