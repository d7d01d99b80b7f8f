// Package cart implements the storefront add-to-cart echo endpoint.
package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bijou-shop/bijou-api/internal/catalog"
	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

// ProductFinder resolves products for cart lines. *catalog.Service satisfies it.
type ProductFinder interface {
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
}

// Line is one priced cart entry.
type Line struct {
	ProductID int64  `json:"productId"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

// Summary is the cart echo returned to the caller. Totals are in minor
// currency units, computed from the catalog price.
type Summary struct {
	ID    string `json:"id"`
	Items []Line `json:"items"`
	Total int64  `json:"total"`
}

type Service struct {
	products ProductFinder
}

func NewService(products ProductFinder) *Service {
	return &Service{products: products}
}

// Add prices a single cart line against the catalog. Quantity defaults to one
// when omitted; unknown products surface the catalog's not-found error.
func (s *Service) Add(ctx context.Context, productID, quantity int64) (Summary, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return Summary{}, fmt.Errorf("quantity must be positive: %w", httpx.ErrValidation)
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return Summary{}, err
	}

	line := Line{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
		LineTotal: product.Price * quantity,
	}
	return Summary{
		ID:    uuid.NewString(),
		Items: []Line{line},
		Total: line.LineTotal,
	}, nil
}
