package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

// seedFS embeds the catalog seed data.
//
//go:embed seed/products.json
var seedFS embed.FS

// LoadSeed parses the embedded catalog seed and resolves relative image paths
// against baseURL. The seed is the only source of catalog data; the service
// holds no write path.
func LoadSeed(baseURL string) ([]Product, error) {
	raw, err := seedFS.ReadFile("seed/products.json")
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	base := strings.TrimRight(baseURL, "/")
	for i := range products {
		if err := validateSeedProduct(products[i]); err != nil {
			return nil, fmt.Errorf("seed product %d: %w", products[i].ID, err)
		}
		if strings.HasPrefix(products[i].Image, "/") {
			products[i].Image = base + products[i].Image
		}
	}
	return products, nil
}
