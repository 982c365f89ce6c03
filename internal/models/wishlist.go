package models

import "time"

// WishlistItem представляет позицию локального избранного.
// Та же форма что и CartItem, но без количественной семантики.
type WishlistItem struct {
	AddedAt       time.Time `json:"added_at"`
	ID            string    `json:"id"` // локальный идентификатор (UUID)
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	Type          ItemType  `json:"type"`
	Price         float64   `json:"price"`
	DiscountPrice float64   `json:"discount_price"`
}

// Key возвращает ключ уникальности позиции
func (i WishlistItem) Key() ItemKey {
	return ItemKey{ProductID: i.ProductID, Type: i.Type}
}

// Snapshot восстанавливает денормализованный снимок товара из позиции
func (i WishlistItem) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID:     i.ProductID,
		Type:          i.Type,
		Name:          i.Name,
		ImageURL:      i.ImageURL,
		Category:      i.Category,
		Price:         i.Price,
		DiscountPrice: i.DiscountPrice,
	}
}
