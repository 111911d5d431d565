package service

import (
	"context"
	"fmt"

	"github.com/rl1809/retail-store/internal/core/domain"
	"github.com/rl1809/retail-store/internal/port"
)

// CatalogService answers read-only catalog queries. The category views
// are recomputed from the store on every call, so they can never go
// stale after a mutation.
type CatalogService struct {
	catalog port.CatalogRepository
}

func NewCatalogService(catalog port.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.ListAll(ctx)
}

// UniqueCategories returns the distinct category strings in first-seen
// order across the product sequence. The order is user-visible in the
// category menu, so it is not sorted.
func (s *CatalogService) UniqueCategories(ctx context.Context) ([]string, error) {
	products, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// ProductsInCategory returns the refs of products whose category matches
// exactly (case-sensitive, no normalization), in insertion order.
func (s *CatalogService) ProductsInCategory(ctx context.Context, category string) ([]domain.ProductRef, error) {
	products, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var refs []domain.ProductRef
	for i, p := range products {
		if p.Category == category {
			refs = append(refs, domain.ProductRef(i))
		}
	}
	return refs, nil
}
