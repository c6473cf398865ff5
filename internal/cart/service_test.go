// internal/cart/service_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
)

// The seeded Lumière Rivière necklace has stock 2; the Comtesse watch stock 8.
const (
	necklaceID = "prod_lumiere-riviere"
	watchID    = "prod_comtesse-automatic"
)

func newTestCart(t *testing.T) (*Service, *catalog.Service) {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	cat := catalog.NewService(store)
	return NewService(store, cat), cat
}

func TestAddMergesIntoExistingLine(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(watchID, 3))
	require.NoError(t, carts.Add(watchID, 2))

	items := carts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, watchID, items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddInvalidProduct(t *testing.T) {
	carts, _ := newTestCart(t)

	err := carts.Add("prod_missing", 1)
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.Empty(t, carts.Items())
}

func TestAddBeyondStockFailsAndLeavesCartUnchanged(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(necklaceID, 2))

	err := carts.Add(necklaceID, 1) // 2+1 > stock of 2
	assert.ErrorIs(t, err, ErrOutOfStock)

	items := carts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddExactlyAtStockSucceeds(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(necklaceID, 2))
	assert.Equal(t, 2, carts.Count())
}

func TestRemove(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(watchID, 1))
	carts.Remove(watchID)
	assert.Empty(t, carts.Items())

	// Removing an absent line is a no-op.
	assert.NotPanics(t, func() { carts.Remove("prod_missing") })
}

func TestSetQuantityDoesNotRevalidateStock(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(necklaceID, 1))
	carts.SetQuantity(necklaceID, 50) // well beyond stock; only Add validates

	items := carts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Quantity)
}

func TestSetQuantityAllowsNonPositiveValues(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(watchID, 2))
	carts.SetQuantity(watchID, 0)

	items := carts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Quantity)
}

func TestClear(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(watchID, 1))
	require.NoError(t, carts.Add(necklaceID, 1))
	carts.Clear()

	assert.Empty(t, carts.Items())
	assert.Zero(t, carts.Count())
	assert.Zero(t, carts.Subtotal())
}

func TestDerivedViewDropsDanglingLinesButRawStateKeepsThem(t *testing.T) {
	carts, cat := newTestCart(t)

	require.NoError(t, carts.Add(watchID, 1))
	require.NoError(t, carts.Add(necklaceID, 1))

	cat.DeleteProduct(necklaceID)

	// The derived view only shows lines that still resolve.
	lines := carts.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, watchID, lines[0].ProductID)

	// Raw state still holds both lines until explicitly removed.
	assert.Len(t, carts.Items(), 2)

	// Count and subtotal follow the view, not the raw state.
	assert.Equal(t, 1, carts.Count())
	assert.Equal(t, 12400.0, carts.Subtotal())
}

func TestCountAndSubtotal(t *testing.T) {
	carts, _ := newTestCart(t)

	require.NoError(t, carts.Add(watchID, 2))    // 2 × 12400
	require.NoError(t, carts.Add(necklaceID, 1)) // 1 × 24000

	assert.Equal(t, 3, carts.Count())
	assert.Equal(t, 2*12400.0+24000.0, carts.Subtotal())
}

func TestCartPersistsAcrossServiceInstances(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	cat := catalog.NewService(store)

	first := NewService(store, cat)
	require.NoError(t, first.Add(watchID, 2))

	second := NewService(store, cat)
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}
