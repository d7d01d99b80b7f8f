package catalog

// Product represents a catalog entry served by the storefront API.
// Price is expressed in minor currency units (paise).
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Stock       int64  `json:"stock"`
}
