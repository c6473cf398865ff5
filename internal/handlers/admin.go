// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/i18n"
	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/order"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

type AdminHandler struct {
	catalog *catalog.Service
	orders  *order.Service
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending paid shipped completed cancelled"`
}

func NewAdminHandler(cat *catalog.Service, orders *order.Service) *AdminHandler {
	return &AdminHandler{catalog: cat, orders: orders}
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalog.CreateProduct(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /admin/products/:id
//
// Updating an unknown id is a no-op by contract, so this always succeeds for
// well-formed input.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.catalog.UpdateProduct(c.Param("id"), &req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	if product, ok := h.catalog.Product(c.Param("id")); ok {
		utils.SuccessResponse(c, gin.H{"product": product})
		return
	}
	utils.SuccessResponse(c, gin.H{"product": nil})
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	h.catalog.DeleteProduct(c.Param("id"))
	utils.SuccessResponse(c, gin.H{
		"deleted": c.Param("id"),
	})
}

// GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"orders": h.orders.List(),
	})
}

// PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	orderID := c.Param("id")
	if _, ok := h.orders.Get(orderID); !ok {
		utils.NotFoundResponse(c, "order")
		return
	}

	h.orders.UpdateStatus(orderID, req.Status)
	updated, _ := h.orders.Get(orderID)
	utils.SuccessResponse(c, gin.H{
		"order": updated,
	})
}
