// internal/order/service_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/models"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
)

const cuffID = "prod_manchette-eclat" // seeded with stock 5, price 7600

func newTestService(t *testing.T) (*Service, *catalog.Service) {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	cat := catalog.NewService(store)
	return NewService(store, cat), cat
}

func snapshotOf(t *testing.T, cat *catalog.Service, productID string, qty int) []models.OrderItem {
	t.Helper()
	p, ok := cat.Product(productID)
	require.True(t, ok)
	return []models.OrderItem{{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  qty,
		Currency:  p.Currency,
	}}
}

func TestCreateOrder(t *testing.T) {
	svc, cat := newTestService(t)

	created := svc.Create(snapshotOf(t, cat, cuffID, 3), "USD", "user_1")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.Equal(t, 3*7600.0, created.Subtotal)
	assert.Equal(t, "user_1", created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	// Stock decremented: 5 - 3 = 2.
	p, ok := cat.Product(cuffID)
	require.True(t, ok)
	assert.Equal(t, 2, p.Stock)
}

func TestCreateOrderStockFloorsAtZero(t *testing.T) {
	svc, cat := newTestService(t)

	svc.Create(snapshotOf(t, cat, cuffID, 9), "USD", "")

	p, ok := cat.Product(cuffID)
	require.True(t, ok)
	assert.Equal(t, 0, p.Stock)
}

func TestOrderSnapshotIsImmuneToCatalogEdits(t *testing.T) {
	svc, cat := newTestService(t)

	created := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")

	newName := "Renamed Cuff"
	newPrice := 1.0
	require.NoError(t, cat.UpdateProduct(cuffID, &catalog.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	}))

	stored, ok := svc.Get(created.ID)
	require.True(t, ok)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Manchette Éclat", stored.Items[0].Name)
	assert.Equal(t, 7600.0, stored.Items[0].Price)
	assert.Equal(t, 7600.0, stored.Subtotal)
}

func TestListIsMostRecentFirst(t *testing.T) {
	svc, cat := newTestService(t)

	first := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")
	second := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")
	third := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")

	orders := svc.List()
	require.Len(t, orders, 3)
	assert.Equal(t, third.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.Equal(t, first.ID, orders[2].ID)

	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, cat := newTestService(t)

	created := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")
	svc.UpdateStatus(created.ID, models.OrderStatusShipped)

	stored, ok := svc.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
	// Everything else unchanged.
	assert.Equal(t, created.Subtotal, stored.Subtotal)
	assert.Equal(t, created.Items, stored.Items)
}

func TestUpdateStatusHasNoTransitionGuards(t *testing.T) {
	svc, cat := newTestService(t)

	created := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")

	// Any status can follow any other, including leaving cancelled.
	svc.UpdateStatus(created.ID, models.OrderStatusCancelled)
	svc.UpdateStatus(created.ID, models.OrderStatusPaid)

	stored, _ := svc.Get(created.ID)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)
}

func TestUpdateStatusMissingOrderIsNoOp(t *testing.T) {
	svc, cat := newTestService(t)

	created := svc.Create(snapshotOf(t, cat, cuffID, 1), "USD", "")
	svc.UpdateStatus("ord_missing", models.OrderStatusCompleted)

	stored, _ := svc.Get(created.ID)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}
