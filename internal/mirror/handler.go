// internal/mirror/handler.go
package mirror

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

type Handler struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=255"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,min=0.01"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category" validate:"required,slug"`
	Stock       int      `json:"stock" validate:"min=0"`
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Migrate creates the mirror schema.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return err
	}
	return db.AutoMigrate(&Product{})
}

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	query := h.db.Model(&Product{}).Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, products)
}

// POST /products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product := Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      pq.StringArray(req.Images),
		Category:    req.Category,
		Stock:       req.Stock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Routes registers the mirror's endpoints on a router group.
func (h *Handler) Routes(r gin.IRouter) {
	r.GET("/products", h.ListProducts)
	r.POST("/products", h.CreateProduct)
}
