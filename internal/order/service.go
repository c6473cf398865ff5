// internal/order/service.go
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
)

// Service converts cart snapshots into immutable order records and advances
// them through the status lifecycle. Items are denormalized at creation time,
// so later catalog edits never rewrite order history.
type Service struct {
	store   *storage.Store
	catalog *catalog.Service
}

func NewService(store *storage.Store, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

// List returns all orders, most recent first.
func (s *Service) List() []models.Order {
	return storage.Get(s.store, storage.KeyOrders, []models.Order{})
}

// Create records a new pending order from snapshot items and decrements the
// referenced products' stock, floored at zero. The order and the stock update
// are two separate writes with no transaction between them. Clearing the cart
// is the caller's responsibility.
func (s *Service) Create(items []models.OrderItem, currency, userID string) *models.Order {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		ID:        "ord_" + uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Subtotal:  subtotal,
		Currency:  currency,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	// Prepend: List keeps the most-recent-first contract.
	s.store.Set(storage.KeyOrders, append([]models.Order{order}, s.List()...))

	for _, item := range items {
		s.catalog.DecrementStock(item.ProductID, item.Quantity)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Items),
		"subtotal": order.Subtotal,
	}).Info("Order created")
	return &order
}

// UpdateStatus overwrites the status on the matching order. There are no
// transition guards: any status may follow any other, which doubles as an
// admin override. A missing order id is a no-op.
func (s *Service) UpdateStatus(orderID string, status models.OrderStatus) {
	orders := s.List()
	for i, o := range orders {
		if o.ID == orderID {
			orders[i].Status = status
		}
	}
	s.store.Set(storage.KeyOrders, orders)
}

// Get looks an order up by id.
func (s *Service) Get(orderID string) (models.Order, bool) {
	for _, o := range s.List() {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
