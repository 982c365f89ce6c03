package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItem_Key(t *testing.T) {
	item := CartItem{ProductID: "p-1", Type: ItemTypeCombo}
	assert.Equal(t, ItemKey{ProductID: "p-1", Type: ItemTypeCombo}, item.Key())
}

func TestCartItem_Limit(t *testing.T) {
	assert.Equal(t, 5, CartItem{MaxQuantity: 5}.Limit())
	// Без явного лимита действует дефолтный потолок
	assert.Equal(t, DefaultMaxQuantity, CartItem{}.Limit())
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"discount applies", 100, 80, 80},
		{"no discount", 100, 0, 100},
		{"discount above price ignored", 100, 120, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CartItem{Price: tt.price, DiscountPrice: tt.discount}
			assert.InDelta(t, tt.want, item.EffectivePrice(), 0.001)

			snap := ProductSnapshot{Price: tt.price, DiscountPrice: tt.discount}
			assert.InDelta(t, tt.want, snap.EffectivePrice(), 0.001)
		})
	}
}

func TestCartItem_Snapshot(t *testing.T) {
	item := CartItem{
		ID:            "item-1",
		ProductID:     "p-1",
		Type:          ItemTypeProduct,
		Name:          "Test Product",
		Price:         100,
		DiscountPrice: 80,
		MaxQuantity:   10,
		Quantity:      3,
	}

	snap := item.Snapshot()
	assert.Equal(t, "p-1", snap.ProductID)
	assert.Equal(t, 10, snap.MaxQuantity)
	// Снимок описывает товар, а не позицию: количества в нем нет
	assert.Equal(t, "Test Product", snap.Name)
}
