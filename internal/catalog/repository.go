package catalog

import (
	"context"
	"fmt"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context, category string) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// memoryRepository serves the catalog from an in-process collection that is
// immutable after construction, so reads need no locking.
type memoryRepository struct {
	products []Product
}

// NewMemoryRepository builds a repository over the given products. Insertion
// order is preserved; duplicate identifiers are rejected.
func NewMemoryRepository(products []Product) (Repository, error) {
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product ID %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	owned := make([]Product, len(products))
	copy(owned, products)
	return &memoryRepository{products: owned}, nil
}

func (r *memoryRepository) List(ctx context.Context, category string) ([]Product, error) {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, id int64) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %d: %w", id, httpx.ErrNotFound)
}

func (r *memoryRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{}, len(r.products))
	out := make([]string, 0, len(r.products))
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}
