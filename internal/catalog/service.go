// internal/catalog/service.go
package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

// Service is the catalog store: read-mostly product and category data backed
// by the persistence façade. All other components query products through it.
type Service struct {
	store *storage.Store
}

type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=255"`
	Description    string   `json:"description" validate:"required"`
	Price          float64  `json:"price" validate:"required,min=0.01"`
	Currency       string   `json:"currency" validate:"required,len=3"`
	Stock          int      `json:"stock" validate:"min=0"`
	CategorySlug   string   `json:"category_slug" validate:"required,slug"`
	Images         []string `json:"images,omitempty"`
	Specifications []string `json:"specifications,omitempty"`
}

type UpdateProductRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description    *string  `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,min=0.01"`
	Currency       *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Stock          *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	CategorySlug   *string  `json:"category_slug,omitempty" validate:"omitempty,slug"`
	Images         []string `json:"images,omitempty"`
	Specifications []string `json:"specifications,omitempty"`
}

func NewService(store *storage.Store) *Service {
	s := &Service{store: store}
	s.seedIfEmpty()
	return s
}

// seedIfEmpty writes the seed dataset on first boot. The check is only
// "stored product list is empty", not content-aware: deleting every product
// re-seeds the catalog on the next boot.
func (s *Service) seedIfEmpty() {
	if len(s.Products()) > 0 {
		return
	}
	s.store.Set(storage.KeyProducts, seedProducts)
	s.store.Set(storage.KeyCategories, seedCategories)
	logrus.WithFields(logrus.Fields{
		"products":   len(seedProducts),
		"categories": len(seedCategories),
	}).Info("Seeded catalog")
}

// Products returns every product in insertion order.
func (s *Service) Products() []models.Product {
	return storage.Get(s.store, storage.KeyProducts, []models.Product{})
}

// Product looks a product up by id.
func (s *Service) Product(id string) (models.Product, bool) {
	for _, p := range s.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductsByCategory filters by exact slug match, preserving insertion order.
func (s *Service) ProductsByCategory(slug string) []models.Product {
	var matched []models.Product
	for _, p := range s.Products() {
		if p.CategorySlug == slug {
			matched = append(matched, p)
		}
	}
	return matched
}

// featuredCount is the size of the storefront's featured selection.
const featuredCount = 4

// Featured returns the featured selection: the first products in catalog
// order. Featured is a presentation default, not a stored flag.
func (s *Service) Featured() []models.Product {
	products := s.Products()
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	return products
}

func (s *Service) Categories() []models.Category {
	return storage.Get(s.store, storage.KeyCategories, []models.Category{})
}

func (s *Service) CategoryBySlug(slug string) (models.Category, bool) {
	for _, c := range s.Categories() {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

// CreateProduct appends a new product to the catalog. Admin-only at the HTTP
// layer; the engine itself does not check permissions.
func (s *Service) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	categoryName := req.CategorySlug
	if category, ok := s.CategoryBySlug(req.CategorySlug); ok {
		categoryName = category.Name
	}

	product := models.Product{
		ID:             "prod_" + uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		Stock:          req.Stock,
		CategorySlug:   req.CategorySlug,
		CategoryName:   categoryName,
		Images:         req.Images,
		Specifications: req.Specifications,
	}

	s.store.Set(storage.KeyProducts, append(s.Products(), product))
	return &product, nil
}

// UpdateProduct applies a partial update to the matching product. A missing
// id is a no-op.
func (s *Service) UpdateProduct(id string, req *UpdateProductRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	products := s.Products()
	for i, p := range products {
		if p.ID != id {
			continue
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Currency != nil {
			p.Currency = *req.Currency
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.CategorySlug != nil {
			p.CategorySlug = *req.CategorySlug
			if category, ok := s.CategoryBySlug(*req.CategorySlug); ok {
				p.CategoryName = category.Name
			}
		}
		if req.Images != nil {
			p.Images = req.Images
		}
		if req.Specifications != nil {
			p.Specifications = req.Specifications
		}
		products[i] = p
	}
	s.store.Set(storage.KeyProducts, products)
	return nil
}

// DeleteProduct removes the matching product. A missing id is a no-op. Cart
// lines referencing the deleted product are not cleaned up here; they linger
// in raw cart state and are dropped from derived views only.
func (s *Service) DeleteProduct(id string) {
	products := s.Products()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.store.Set(storage.KeyProducts, kept)
}

// DecrementStock lowers a product's stock by qty, floored at zero. Unknown
// product ids are ignored. The order engine calls this on checkout.
func (s *Service) DecrementStock(productID string, qty int) {
	products := s.Products()
	for i, p := range products {
		if p.ID != productID {
			continue
		}
		p.Stock -= qty
		if p.Stock < 0 {
			p.Stock = 0
		}
		products[i] = p
	}
	s.store.Set(storage.KeyProducts, products)
}
