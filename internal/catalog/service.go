package catalog

import (
	"context"
	"fmt"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListProducts returns all products in stored order, or the subsequence whose
// category exactly equals the filter. An unmatched filter yields an empty
// slice, never an error.
func (s *Service) ListProducts(ctx context.Context, category string) ([]Product, error) {
	return s.repo.List(ctx, category)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("product %d: %w", id, httpx.ErrNotFound)
	}
	return s.repo.Get(ctx, id)
}

// ListCategories derives the distinct category values across the catalog,
// preserving first-occurrence order.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
