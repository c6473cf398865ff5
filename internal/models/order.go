// internal/models/order.go
package models

import "time"

// OrderItem is a denormalized snapshot of a product at checkout time. Later
// catalog edits never alter items on an already-created order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Currency  string  `json:"currency"`
}

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId,omitempty"`
	Items     []OrderItem `json:"items"`
	Subtotal  float64     `json:"subtotal"`
	Currency  string      `json:"currency"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
