// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/cart"
	"github.com/maison-aurelle/aurelle-backend/internal/i18n"
	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/order"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

type OrderHandler struct {
	orders          *order.Service
	carts           *cart.Service
	defaultCurrency string
}

func NewOrderHandler(orders *order.Service, carts *cart.Service, defaultCurrency string) *OrderHandler {
	return &OrderHandler{
		orders:          orders,
		carts:           carts,
		defaultCurrency: defaultCurrency,
	}
}

// POST /orders/checkout
//
// Snapshots the resolved cart view into an order, then clears the cart. The
// clear is the handler's job: the order engine itself never touches the cart.
func (h *OrderHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	lines := h.carts.Lines()
	if len(lines) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
		return
	}

	currency := h.defaultCurrency
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Product.Currency != "" {
			currency = line.Product.Currency
		}
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
			Currency:  line.Product.Currency,
		})
	}

	userID, _ := utils.GetUserIDFromContext(c)
	created := h.orders.Create(items, currency, userID)
	h.carts.Clear()

	utils.CreatedResponse(c, gin.H{
		"order": created,
	})
}

// GET /orders
//
// Admins see every order; everyone else sees only orders attributed to the
// active session. Most recent first in both cases.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	all := h.orders.List()

	if isAdmin, exists := c.Get("is_admin"); exists && isAdmin == true {
		utils.SuccessResponse(c, gin.H{"orders": all})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	mine := make([]models.Order, 0)
	for _, o := range all {
		if o.UserID != "" && o.UserID == userID {
			mine = append(mine, o)
		}
	}
	utils.SuccessResponse(c, gin.H{"orders": mine})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, ok := h.orders.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "order")
		return
	}

	if isAdmin, exists := c.Get("is_admin"); !exists || isAdmin != true {
		userID, _ := utils.GetUserIDFromContext(c)
		if o.UserID == "" || o.UserID != userID {
			utils.NotFoundResponse(c, "order")
			return
		}
	}

	utils.SuccessResponse(c, gin.H{"order": o})
}
