// internal/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/cart"
	"github.com/maison-aurelle/aurelle-backend/internal/i18n"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

type CartHandler struct {
	carts *cart.Service
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) cartView(c *gin.Context) gin.H {
	return gin.H{
		"items":    h.carts.Lines(),
		"count":    h.carts.Count(),
		"subtotal": h.carts.Subtotal(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.cartView(c))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.carts.Add(req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidProduct):
			utils.ErrorResponse(c, http.StatusNotFound, "INVALID_PRODUCT",
				i18n.T(lang, i18n.KeyCartInvalidProduct), nil)
		case errors.Is(err, cart.ErrOutOfStock):
			utils.ErrorResponse(c, http.StatusConflict, "OUT_OF_STOCK",
				i18n.T(lang, i18n.KeyCartOutOfStock), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, h.cartView(c))
}

// PUT /cart/items/:productId
func (h *CartHandler) SetQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// The engine itself accepts any quantity; the API rejects non-positive
	// values so clients cannot create zero-quantity lines.
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.carts.SetQuantity(c.Param("productId"), req.Quantity)
	utils.SuccessResponse(c, h.cartView(c))
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.carts.Remove(c.Param("productId"))
	utils.SuccessResponse(c, h.cartView(c))
}

// DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.carts.Clear()
	utils.SuccessResponse(c, h.cartView(c))
}
