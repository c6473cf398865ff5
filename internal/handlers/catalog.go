// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(cat *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	if slug := c.Query("category"); slug != "" {
		utils.SuccessResponse(c, gin.H{
			"products": h.catalog.ProductsByCategory(slug),
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.catalog.Products(),
	})
}

// GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"products": h.catalog.Featured(),
	})
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalog.Categories(),
	})
}

// GET /categories/:slug
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, ok := h.catalog.CategoryBySlug(c.Param("slug"))
	if !ok {
		utils.NotFoundResponse(c, "category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"category": category,
	})
}

// GET /categories/:slug/products
func (h *CatalogHandler) GetCategoryProducts(c *gin.Context) {
	slug := c.Param("slug")
	if _, ok := h.catalog.CategoryBySlug(slug); !ok {
		utils.NotFoundResponse(c, "category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": h.catalog.ProductsByCategory(slug),
	})
}
