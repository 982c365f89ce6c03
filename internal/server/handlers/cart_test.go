package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/internal/server/storage"
	"github.com/iudanet/gophshop/pkg/api"
)

// recordingCartStorage возвращает мок, который только записывает вызовы
func recordingCartStorage(items []models.ServerCartItem) *storage.CartStorageMock {
	return &storage.CartStorageMock{
		AddItemFunc: func(ctx context.Context, userID string, item models.ServerCartItem) error {
			return nil
		},
		SetQuantityFunc: func(ctx context.Context, userID string, item models.ServerCartItem) error {
			return nil
		},
		RemoveItemFunc: func(ctx context.Context, userID, productID string, itemType models.ItemType) error {
			return nil
		},
		ListItemsFunc: func(ctx context.Context, userID string) ([]models.ServerCartItem, error) {
			return items, nil
		},
	}
}

// cartRequest выполняет запрос к cart handler от имени пользователя u-1
func cartRequest(t *testing.T, h *CartHandler, method string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1/cart", reader)
	ctx := context.WithValue(req.Context(), UserIDKey, "u-1")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestCartHandler_Add(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodPost, api.CartItemRequest{
		ProductID: "p-1",
		Type:      "product",
		Name:      "Oat Cookies",
		Price:     120,
		Quantity:  2,
	})

	require.Equal(t, http.StatusNoContent, rec.Code)

	calls := carts.AddItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "u-1", calls[0].UserID)
	assert.Equal(t, "p-1", calls[0].Item.ProductID)
	assert.Equal(t, models.ItemTypeProduct, calls[0].Item.Type)
	assert.Equal(t, "Oat Cookies", calls[0].Item.Name)
	assert.Equal(t, 2, calls[0].Item.Quantity)
}

func TestCartHandler_Add_RejectsZeroQuantity(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodPost, api.CartItemRequest{
		ProductID: "p-1",
		Type:      "product",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, carts.AddItemCalls())
}

func TestCartHandler_Add_RejectsUnknownType(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodPost, api.CartItemRequest{
		ProductID: "p-1",
		Type:      "bundle",
		Quantity:  1,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, carts.AddItemCalls())
}

func TestCartHandler_Update_SetsQuantity(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodPut, api.CartItemRequest{
		ProductID: "p-1",
		Type:      "product",
		Quantity:  7,
	})

	require.Equal(t, http.StatusNoContent, rec.Code)

	calls := carts.SetQuantityCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 7, calls[0].Item.Quantity)
	assert.Empty(t, carts.RemoveItemCalls())
}

func TestCartHandler_Update_ZeroQuantityRemoves(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodPut, api.CartItemRequest{
		ProductID: "p-1",
		Type:      "product",
		Quantity:  0,
	})

	require.Equal(t, http.StatusNoContent, rec.Code)

	// Ноль означает удаление позиции
	calls := carts.RemoveItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "p-1", calls[0].ProductID)
	assert.Empty(t, carts.SetQuantityCalls())
}

func TestCartHandler_Remove(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodDelete, api.CartItemRequest{
		ProductID: "p-1",
		Type:      "combo",
	})

	require.Equal(t, http.StatusNoContent, rec.Code)

	calls := carts.RemoveItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.ItemTypeCombo, calls[0].ItemType)
}

func TestCartHandler_List(t *testing.T) {
	carts := recordingCartStorage([]models.ServerCartItem{
		{ProductID: "p-1", Type: models.ItemTypeProduct, Name: "Oat Cookies", Price: 120, Quantity: 2},
		{ProductID: "p-2", Type: models.ItemTypeProduct, Name: "Green Tea", Price: 50, Quantity: 1},
	})
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodGet, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.CartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "p-1", resp.Items[0].ProductID)
	assert.InDelta(t, 290.0, resp.Total, 0.001)
}

func TestCartHandler_Unauthorized(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	// Запрос без user_id в контексте (middleware не отработал)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_MethodNotAllowed(t *testing.T) {
	carts := recordingCartStorage(nil)
	h := NewCartHandler(testLogger(), carts)

	rec := cartRequest(t, h, http.MethodPatch, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
