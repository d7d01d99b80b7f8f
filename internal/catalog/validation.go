package catalog

import (
	"errors"
	"strings"
)

func validateSeedProduct(p Product) error {
	if p.ID <= 0 {
		return errors.New("product ID must be positive")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("product title is required")
	}
	if p.Price < 0 {
		return errors.New("product price must not be negative")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("product category is required")
	}
	if p.Stock < 0 {
		return errors.New("product stock must not be negative")
	}
	return nil
}
