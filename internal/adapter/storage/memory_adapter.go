package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/rl1809/retail-store/internal/core/domain"
)

// MemoryAdapter is the in-process catalog store: an append-only product
// slice for the process lifetime. A single mutex serializes mutations so
// the never-negative stock invariant survives if the store is ever
// shared between goroutines.
type MemoryAdapter struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryAdapter(seed []domain.Product) *MemoryAdapter {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return &MemoryAdapter{products: products}
}

func (m *MemoryAdapter) ListAll(_ context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryAdapter) GetByRef(_ context.Context, ref domain.ProductRef) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if ref < 0 || int(ref) >= len(m.products) {
		return domain.Product{}, fmt.Errorf("%w: ref %d", domain.ErrNotFound, ref)
	}
	return m.products[ref], nil
}

func (m *MemoryAdapter) Append(_ context.Context, p domain.Product) (domain.ProductRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, p)
	return domain.ProductRef(len(m.products) - 1), nil
}

func (m *MemoryAdapter) AdjustStock(_ context.Context, ref domain.ProductRef, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ref < 0 || int(ref) >= len(m.products) {
		return 0, fmt.Errorf("%w: ref %d", domain.ErrNotFound, ref)
	}

	newStock := m.products[ref].Stock + delta
	if newStock < 0 {
		return 0, fmt.Errorf("%w: stock %d, delta %d", domain.ErrInsufficientStock, m.products[ref].Stock, delta)
	}

	m.products[ref].Stock = newStock
	return newStock, nil
}
