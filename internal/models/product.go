// internal/models/product.go
package models

type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	Stock          int      `json:"stock"`
	CategorySlug   string   `json:"category_slug"`
	CategoryName   string   `json:"category_name"`
	Images         []string `json:"images"`
	Specifications []string `json:"specifications"`
}

type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
}
