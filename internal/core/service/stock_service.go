package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rl1809/retail-store/internal/core/domain"
	"github.com/rl1809/retail-store/internal/port"
)

// StockService is the staff-only mutation surface. Callers gate access
// through a port.AuthGate; the service itself knows nothing about
// credentials.
type StockService struct {
	catalog port.CatalogRepository
}

func NewStockService(catalog port.CatalogRepository) *StockService {
	return &StockService{catalog: catalog}
}

// Increase adds amount units of stock and returns the new level.
// Fails with domain.ErrInvalidQuantity if amount is non-positive.
func (s *StockService) Increase(ctx context.Context, ref domain.ProductRef, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidQuantity, amount)
	}
	return s.catalog.AdjustStock(ctx, ref, amount)
}

// Decrease removes amount units of stock and returns the new level.
// Fails with domain.ErrInvalidQuantity if amount is non-positive, and
// with domain.ErrInsufficientStock if amount exceeds the current stock;
// there is no partial decrement.
func (s *StockService) Decrease(ctx context.Context, ref domain.ProductRef, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidQuantity, amount)
	}

	p, err := s.catalog.GetByRef(ctx, ref)
	if err != nil {
		return 0, err
	}
	if amount > p.Stock {
		return 0, fmt.Errorf("%w: cannot remove %d, only %d available", domain.ErrInsufficientStock, amount, p.Stock)
	}

	return s.catalog.AdjustStock(ctx, ref, -amount)
}

// AddProduct validates and appends a new product. A category string not
// seen before becomes visible to category queries on the next call; no
// separate registration step exists.
//
// Fails with domain.ErrInvalidProduct if price is non-positive or stock
// is negative; the catalog is left unchanged.
func (s *StockService) AddProduct(ctx context.Context, name, category string, price decimal.Decimal, stock int) (domain.ProductRef, error) {
	if !price.IsPositive() {
		return 0, fmt.Errorf("%w: price must be positive, got %s", domain.ErrInvalidProduct, price)
	}
	if stock < 0 {
		return 0, fmt.Errorf("%w: stock cannot be negative, got %d", domain.ErrInvalidProduct, stock)
	}

	return s.catalog.Append(ctx, domain.Product{
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	})
}
