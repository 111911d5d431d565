package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rl1809/retail-store/internal/core/domain"
)

// stubCatalog is an in-test CatalogRepository with the same bounds
// behavior as the real store.
type stubCatalog struct {
	products []domain.Product
}

func newStubCatalog(products ...domain.Product) *stubCatalog {
	return &stubCatalog{products: products}
}

func (s *stubCatalog) ListAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *stubCatalog) GetByRef(_ context.Context, ref domain.ProductRef) (domain.Product, error) {
	if ref < 0 || int(ref) >= len(s.products) {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.products[ref], nil
}

func (s *stubCatalog) Append(_ context.Context, p domain.Product) (domain.ProductRef, error) {
	s.products = append(s.products, p)
	return domain.ProductRef(len(s.products) - 1), nil
}

func (s *stubCatalog) AdjustStock(_ context.Context, ref domain.ProductRef, delta int) (int, error) {
	if ref < 0 || int(ref) >= len(s.products) {
		return 0, domain.ErrNotFound
	}
	if s.products[ref].Stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	s.products[ref].Stock += delta
	return s.products[ref].Stock, nil
}

func money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad money literal %q: %v", s, err)
	}
	return d
}

func TestReserve_Success(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Keyboard", Category: "Peripherals", Price: money(t, "10.00"), Stock: 10})
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	entry, err := svc.Reserve(context.Background(), cart, 0, 3)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if entry.Name != "Keyboard" || entry.Category != "Peripherals" || entry.Quantity != 3 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if !entry.UnitPrice.Equal(money(t, "10.00")) {
		t.Errorf("expected unit price 10.00, got %s", entry.UnitPrice)
	}
	if catalog.products[0].Stock != 7 {
		t.Errorf("expected stock 7, got %d", catalog.products[0].Stock)
	}
	if len(cart.Entries()) != 1 {
		t.Errorf("expected 1 cart entry, got %d", len(cart.Entries()))
	}
}

func TestReserve_ExceedsStock(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Mouse", Price: money(t, "5.50"), Stock: 2})
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	_, err := svc.Reserve(context.Background(), cart, 0, 3)
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got: %v", err)
	}
	if catalog.products[0].Stock != 2 {
		t.Errorf("stock must be unchanged on failure, got %d", catalog.products[0].Stock)
	}
	if !cart.IsEmpty() {
		t.Error("cart must be unchanged on failure")
	}
}

func TestReserve_NonPositiveQuantity(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Mouse", Price: money(t, "5.50"), Stock: 2})
	svc := NewOrderService(catalog)

	for _, qty := range []int{0, -2} {
		_, err := svc.Reserve(context.Background(), domain.NewCart(), 0, qty)
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("qty %d: expected ErrInvalidQuantity, got: %v", qty, err)
		}
	}
	if catalog.products[0].Stock != 2 {
		t.Errorf("stock must be unchanged, got %d", catalog.products[0].Stock)
	}
}

func TestReserve_UnknownRef(t *testing.T) {
	svc := NewOrderService(newStubCatalog(domain.Product{Name: "Mouse", Price: money(t, "5.50"), Stock: 2}))

	_, err := svc.Reserve(context.Background(), domain.NewCart(), 7, 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestReserve_PriceIsSnapshot(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Monitor", Price: money(t, "100.00"), Stock: 5})
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	if _, err := svc.Reserve(context.Background(), cart, 0, 1); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	// A later catalog price change must not reach entries already held.
	catalog.products[0].Price = money(t, "250.00")

	receipt, err := svc.Checkout(cart)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !receipt.Total.Equal(money(t, "100.00")) {
		t.Errorf("expected total 100.00, got %s", receipt.Total)
	}
}

func TestCheckout_Totals(t *testing.T) {
	catalog := newStubCatalog(
		domain.Product{Name: "Keyboard", Category: "Peripherals", Price: money(t, "10.00"), Stock: 5},
		domain.Product{Name: "Mouse", Category: "Peripherals", Price: money(t, "5.50"), Stock: 4},
	)
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	if _, err := svc.Reserve(context.Background(), cart, 0, 2); err != nil {
		t.Fatalf("reserve keyboard: %v", err)
	}
	if _, err := svc.Reserve(context.Background(), cart, 1, 3); err != nil {
		t.Fatalf("reserve mouse: %v", err)
	}

	receipt, err := svc.Checkout(cart)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if receipt.ID == "" {
		t.Error("expected non-empty receipt ID")
	}
	if len(receipt.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(receipt.Lines))
	}
	if receipt.Lines[0].Name != "Keyboard" || receipt.Lines[1].Name != "Mouse" {
		t.Errorf("lines must keep cart insertion order: %+v", receipt.Lines)
	}
	if got := receipt.Lines[0].LineTotal.StringFixed(2); got != "20.00" {
		t.Errorf("expected subtotal 20.00, got %s", got)
	}
	if got := receipt.Lines[1].LineTotal.StringFixed(2); got != "16.50" {
		t.Errorf("expected subtotal 16.50, got %s", got)
	}
	if got := receipt.Total.StringFixed(2); got != "36.50" {
		t.Errorf("expected total 36.50, got %s", got)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := NewOrderService(newStubCatalog())

	receipt, err := svc.Checkout(domain.NewCart())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got: %v", err)
	}
	if receipt != nil {
		t.Error("expected no receipt for an empty cart")
	}
}

func TestCheckout_DoesNotMutateStock(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Keyboard", Price: money(t, "10.00"), Stock: 5})
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	if _, err := svc.Reserve(context.Background(), cart, 0, 2); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	before := catalog.products[0].Stock

	if _, err := svc.Checkout(cart); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if catalog.products[0].Stock != before {
		t.Errorf("checkout must not touch stock: before %d, after %d", before, catalog.products[0].Stock)
	}
}

func TestReserve_RoundTripTotal(t *testing.T) {
	catalog := newStubCatalog(
		domain.Product{Name: "A", Category: "CPU", Price: money(t, "320.00"), Stock: 15},
		domain.Product{Name: "B", Category: "GPU", Price: money(t, "799.99"), Stock: 8},
		domain.Product{Name: "C", Category: "RAM", Price: money(t, "149.99"), Stock: 25},
	)
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	quantities := map[domain.ProductRef]int{0: 2, 1: 1, 2: 4}
	want := decimal.Zero
	for ref, qty := range quantities {
		if _, err := svc.Reserve(context.Background(), cart, ref, qty); err != nil {
			t.Fatalf("reserve ref %d: %v", ref, err)
		}
		want = want.Add(catalog.products[ref].Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	receipt, err := svc.Checkout(cart)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !receipt.Total.Equal(want) {
		t.Errorf("expected total %s, got %s", want, receipt.Total)
	}
}

func TestReserve_AbandonedCartKeepsDebit(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Keyboard", Price: money(t, "10.00"), Stock: 5})
	svc := NewOrderService(catalog)

	cart := domain.NewCart()
	if _, err := svc.Reserve(context.Background(), cart, 0, 2); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	// Drop the cart without checking out: the debit is a one-way
	// commitment and nothing restores the stock.
	cart = nil
	_ = cart
	if catalog.products[0].Stock != 3 {
		t.Errorf("expected stock to stay at 3 after abandonment, got %d", catalog.products[0].Stock)
	}
}

func TestReserve_SequenceNeverNegative(t *testing.T) {
	catalog := newStubCatalog(domain.Product{Name: "Case", Price: money(t, "169.99"), Stock: 6})
	svc := NewOrderService(catalog)
	cart := domain.NewCart()

	granted := 0
	for i := 1; i <= 10; i++ {
		if _, err := svc.Reserve(context.Background(), cart, 0, 2); err == nil {
			granted++
		} else if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("attempt %d: unexpected error: %v", i, err)
		}
		if catalog.products[0].Stock < 0 {
			t.Fatalf("attempt %d: stock went negative: %d", i, catalog.products[0].Stock)
		}
	}

	if granted != 3 {
		t.Errorf("expected exactly 3 grants of 2 units from stock 6, got %d", granted)
	}
	if catalog.products[0].Stock != 0 {
		t.Errorf("expected stock drained to 0, got %d", catalog.products[0].Stock)
	}
}