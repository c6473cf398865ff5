// internal/models/cart.go
package models

// CartItem is one raw cart line. Lines are keyed by ProductID: adding a product
// already in the cart increments its quantity instead of appending a duplicate.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
