// internal/cart/service.go
package cart

import (
	"errors"

	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
)

var (
	// ErrInvalidProduct means the referenced product id does not resolve in
	// the catalog.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrOutOfStock means the requested quantity would exceed the product's
	// available stock. The check is advisory: nothing is reserved, and carts
	// in other sessions are not accounted for.
	ErrOutOfStock = errors.New("out of stock")
)

// Service is the cart engine: an ordered list of cart lines persisted on
// every mutation. Totals are derived by joining lines against the catalog.
type Service struct {
	store   *storage.Store
	catalog *catalog.Service
}

// Line is a cart line resolved against the catalog.
type Line struct {
	models.CartItem
	Product models.Product `json:"product"`
}

func NewService(store *storage.Store, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

// Items returns the raw persisted cart state. Lines referencing products that
// no longer exist are included here; only the derived view filters them.
func (s *Service) Items() []models.CartItem {
	return storage.Get(s.store, storage.KeyCartItems, []models.CartItem{})
}

// Add puts qty units of a product in the cart, merging into an existing line
// when the product is already present. On failure the cart is left unchanged.
func (s *Service) Add(productID string, qty int) error {
	product, ok := s.catalog.Product(productID)
	if !ok {
		return ErrInvalidProduct
	}

	items := s.Items()
	inCart := 0
	for _, item := range items {
		if item.ProductID == productID {
			inCart = item.Quantity
			break
		}
	}
	if inCart+qty > product.Stock {
		return ErrOutOfStock
	}

	merged := false
	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{ProductID: productID, Quantity: qty})
	}

	s.store.Set(storage.KeyCartItems, items)
	return nil
}

// Remove drops the line for productID entirely. Absent lines are a no-op.
func (s *Service) Remove(productID string) {
	items := s.Items()
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.store.Set(storage.KeyCartItems, kept)
}

// SetQuantity overwrites the quantity on the matching line. Stock is not
// re-validated here (only Add validates), and non-positive quantities are not
// rejected at this layer.
func (s *Service) SetQuantity(productID string, qty int) {
	items := s.Items()
	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity = qty
		}
	}
	s.store.Set(storage.KeyCartItems, items)
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.store.Set(storage.KeyCartItems, []models.CartItem{})
}

// Lines is the derived view: raw lines joined with their products. Lines
// whose product no longer resolves are silently dropped from the view but
// remain in raw state until explicitly removed.
func (s *Service) Lines() []Line {
	var lines []Line
	for _, item := range s.Items() {
		product, ok := s.catalog.Product(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, Line{CartItem: item, Product: product})
	}
	return lines
}

// Count sums quantities over resolved lines.
func (s *Service) Count() int {
	count := 0
	for _, line := range s.Lines() {
		count += line.Quantity
	}
	return count
}

// Subtotal sums quantity×price over resolved lines. A single currency is
// assumed; there is no multi-currency aggregation.
func (s *Service) Subtotal() float64 {
	subtotal := 0.0
	for _, line := range s.Lines() {
		subtotal += float64(line.Quantity) * line.Product.Price
	}
	return subtotal
}
