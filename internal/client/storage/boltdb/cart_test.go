package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/internal/models"
)

func testCartItem(productID string, quantity int) *models.CartItem {
	return &models.CartItem{
		ID:            uuid.NewString(),
		ProductID:     productID,
		Type:          models.ItemTypeProduct,
		Name:          "Test Product",
		Category:      "snacks",
		Price:         150,
		DiscountPrice: 120,
		Quantity:      quantity,
		AddedAt:       time.Now(),
	}
}

func TestCart_SaveAndGet(t *testing.T) {
	store := createTestStorage(t)
	cart := store.Cart()
	ctx := context.Background()

	item := testCartItem("p-1", 2)
	require.NoError(t, cart.SaveItem(ctx, item))

	got, err := cart.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "p-1", got.ProductID)
	assert.Equal(t, 2, got.Quantity)
	assert.InDelta(t, 120, got.EffectivePrice(), 0.001)
}

func TestCart_GetItem_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.Cart().GetItem(context.Background(), "missing-id")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestCart_SaveItem_UpdateInPlace(t *testing.T) {
	store := createTestStorage(t)
	cart := store.Cart()
	ctx := context.Background()

	first := testCartItem("p-1", 1)
	second := testCartItem("p-2", 1)
	require.NoError(t, cart.SaveItem(ctx, first))
	require.NoError(t, cart.SaveItem(ctx, second))

	// Перезапись существующей позиции не двигает ее в конец
	first.Quantity = 5
	require.NoError(t, cart.SaveItem(ctx, first))

	items, err := cart.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestCart_FindByKey(t *testing.T) {
	store := createTestStorage(t)
	cart := store.Cart()
	ctx := context.Background()

	item := testCartItem("p-1", 2)
	require.NoError(t, cart.SaveItem(ctx, item))

	got, err := cart.FindByKey(ctx, models.ItemKey{ProductID: "p-1", Type: models.ItemTypeProduct})
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	// Тот же товар, но другой тип — другая позиция
	_, err = cart.FindByKey(ctx, models.ItemKey{ProductID: "p-1", Type: models.ItemTypeCombo})
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestCart_ListItems_InsertionOrder(t *testing.T) {
	store := createTestStorage(t)
	cart := store.Cart()
	ctx := context.Background()

	ids := make([]string, 0, 10)
	for range 10 {
		item := testCartItem(uuid.NewString(), 1)
		require.NoError(t, cart.SaveItem(ctx, item))
		ids = append(ids, item.ID)
	}

	items, err := cart.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 10)
	for i, item := range items {
		assert.Equal(t, ids[i], item.ID)
	}
}

func TestCart_DeleteItem(t *testing.T) {
	store := createTestStorage(t)
	cart := store.Cart()
	ctx := context.Background()

	item := testCartItem("p-1", 1)
	require.NoError(t, cart.SaveItem(ctx, item))
	require.NoError(t, cart.DeleteItem(ctx, item.ID))

	_, err := cart.GetItem(ctx, item.ID)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	// Повторное удаление — уже ошибка
	err = cart.DeleteItem(ctx, item.ID)
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestCart_Clear(t *testing.T) {
	store := createTestStorage(t)
	cart := store.Cart()
	ctx := context.Background()

	require.NoError(t, cart.SaveItem(ctx, testCartItem("p-1", 1)))
	require.NoError(t, cart.SaveItem(ctx, testCartItem("p-2", 1)))

	require.NoError(t, cart.Clear(ctx))

	items, err := cart.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// После чистки bucket снова готов к записи
	require.NoError(t, cart.SaveItem(ctx, testCartItem("p-3", 1)))
	items, err = cart.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCart_IndependentFromWishlist(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Cart().SaveItem(ctx, testCartItem("p-1", 1)))

	// Корзина и избранное живут в разных buckets
	items, err := store.Wishlist().ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
